package cli

import (
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/attrread/internal/cell"
	"github.com/vvka-141/attrread/internal/config"
	"github.com/vvka-141/attrread/internal/files/filesystem"
	"github.com/vvka-141/attrread/internal/logging"
	"github.com/vvka-141/attrread/internal/processor"
	"github.com/vvka-141/attrread/internal/report"
	"github.com/vvka-141/attrread/internal/table"
)

type readFlags struct {
	configPath     string
	envFiles       []string
	column         string
	delimiter      string
	sheet          string
	missingMarkers []string
	pandasNA       bool
	keepGoing      bool
	output         string
}

func newReadCmd() *cobra.Command {
	flags := &readFlags{}

	cmd := &cobra.Command{
		Use:   "read [input_path]",
		Short: "Parse the attribute column of a CSV or XLSX file",
		Long: `Read loads the input table (default data/business.csv), prints its attribute
column, then reports every row whose attribute cell is missing and parses the
others as dictionary literals.

A cell that is present but not a valid mapping literal stops the run with exit
code 13 after the rows before it have been reported. With --keep-going every
row is processed and the failures are listed before exiting with code 13.

Settings are resolved in this order (later wins): built-in defaults,
attrread.yaml, .env / ATTRREAD_* environment variables, command line flags.`,
		Example: `  attrread read
  attrread read exports/shops.csv --column attrs
  attrread read shops.xlsx --sheet Businesses -o json
  attrread read data.tsv --delimiter '\t' --pandas-na --keep-going`,
		Args: OptionalInputPath,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "Config file (default ./attrread.yaml when present)")
	f.StringSliceVar(&flags.envFiles, "env-file", nil, "Env files to load (default ./.env when present)")
	f.StringVarP(&flags.column, "column", "c", "", "Name of the attribute column (default \"attributes\")")
	f.StringVarP(&flags.delimiter, "delimiter", "d", "", "CSV field delimiter (default \",\")")
	f.StringVar(&flags.sheet, "sheet", "", "XLSX sheet name (default first sheet)")
	f.StringArrayVar(&flags.missingMarkers, "missing-marker", nil, "Additional cell value treated as missing (repeatable)")
	f.BoolVar(&flags.pandasNA, "pandas-na", false, "Treat pandas' default NA strings (including empty cells) as missing")
	f.BoolVar(&flags.keepGoing, "keep-going", false, "Record unparseable rows and continue instead of stopping")
	f.StringVarP(&flags.output, "output", "o", "", "Output format: text, json or yaml (default \"text\")")

	return cmd
}

func runRead(cmd *cobra.Command, args []string, flags *readFlags) error {
	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	cfg, err := config.Resolve(flags.configPath, flags.envFiles...)
	if err != nil {
		return err
	}
	applyReadFlags(cmd, args, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	styled := false
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		styled = report.ShouldStyle(f)
	}
	renderer, err := report.New(format, styled)
	if err != nil {
		return err
	}

	markers := slices.Clone(cfg.MissingMarkers)
	if cfg.PandasNA {
		markers = append(markers, cell.PandasMarkers...)
	}

	logger.Verbose("Reading column %q from %s", cfg.Column, cfg.Input)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := processor.Run(ctx, filesystem.NewOSFileSystem(), cfg.Input,
		table.Options{Delimiter: cfg.DelimiterRune(), Sheet: cfg.Sheet},
		processor.Options{
			Column:         cfg.Column,
			MissingMarkers: markers,
			KeepGoing:      cfg.KeepGoing,
			Logger:         logger,
		})

	// a failed run still reports the rows handled before the failure
	if res != nil {
		if err := renderer.Render(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		for _, d := range res.Failed {
			logger.Error("line %d: %s", d.Line, d.Message)
		}
	}
	return runErr
}

// applyReadFlags overlays explicitly set flags on cfg.
func applyReadFlags(cmd *cobra.Command, args []string, flags *readFlags, cfg *config.Config) {
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	f := cmd.Flags()
	if f.Changed("column") {
		cfg.Column = flags.column
	}
	if f.Changed("delimiter") {
		cfg.Delimiter = unescapeDelimiter(flags.delimiter)
	}
	if f.Changed("sheet") {
		cfg.Sheet = flags.sheet
	}
	if f.Changed("missing-marker") {
		cfg.MissingMarkers = flags.missingMarkers
	}
	if f.Changed("pandas-na") {
		cfg.PandasNA = flags.pandasNA
	}
	if f.Changed("keep-going") {
		cfg.KeepGoing = flags.keepGoing
	}
	if f.Changed("output") {
		cfg.Output = flags.output
	}
}

// unescapeDelimiter lets shells pass a tab as the two characters `\t`.
func unescapeDelimiter(s string) string {
	if s == `\t` {
		return "\t"
	}
	return s
}
