package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/attrread/pkg/attrread"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "attrread.yaml"

	// EnvPrefix prefixes every environment override, e.g. ATTRREAD_COLUMN.
	EnvPrefix = "ATTRREAD"

	// DefaultEnvFile is loaded when present; its absence is not an error.
	DefaultEnvFile = ".env"
)

// Config holds every setting of a read run.
type Config struct {
	Input          string   `yaml:"input" envconfig:"INPUT"`
	Column         string   `yaml:"column" envconfig:"COLUMN"`
	Delimiter      string   `yaml:"delimiter" envconfig:"DELIMITER"`
	Sheet          string   `yaml:"sheet,omitempty" envconfig:"SHEET"`
	MissingMarkers []string `yaml:"missing_markers,omitempty" envconfig:"MISSING_MARKERS"`
	PandasNA       bool     `yaml:"pandas_na" envconfig:"PANDAS_NA"`
	KeepGoing      bool     `yaml:"keep_going" envconfig:"KEEP_GOING"`
	Output         string   `yaml:"output" envconfig:"OUTPUT"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		Input:     attrread.DefaultInputPath,
		Column:    attrread.DefaultColumn,
		Delimiter: ",",
		Output:    "text",
	}
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Keys absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", attrread.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Resolve builds the effective configuration: defaults, then the yaml file,
// then the environment (after loading env files). An empty configPath looks
// for ConfigFileName in the working directory and tolerates its absence; an
// explicit path must exist. With no envFiles, DefaultEnvFile is loaded if it
// exists.
//
// The result is not validated: callers overlay command line flags first and
// then call Validate.
func Resolve(configPath string, envFiles ...string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = ConfigFileName
	}

	cfg, err := LoadFile(configPath)
	switch {
	case errors.Is(err, ErrConfigNotFound) && !explicit:
		cfg = Default()
	case errors.Is(err, ErrConfigNotFound):
		return nil, fmt.Errorf("%w: %s: %w", attrread.ErrInvalidConfig, configPath, err)
	case err != nil:
		return nil, err
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", attrread.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		files = []string{DefaultEnvFile}
	}
	// godotenv never overrides variables already present in the environment.
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("%w: loading env file: %w", attrread.ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks that the settings can drive a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("%w: input path is empty", attrread.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Column) == "" {
		return fmt.Errorf("%w: column name is empty", attrread.ErrInvalidConfig)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter must be a single character, got %q", attrread.ErrInvalidConfig, c.Delimiter)
	}
	switch r := c.DelimiterRune(); r {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("%w: invalid delimiter %q", attrread.ErrInvalidConfig, c.Delimiter)
	}
	switch strings.ToLower(strings.TrimSpace(c.Output)) {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown output format %q (want text, json or yaml)", attrread.ErrInvalidConfig, c.Output)
	}
	return nil
}

// DelimiterRune returns the first rune of Delimiter, or ',' when empty.
func (c *Config) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
