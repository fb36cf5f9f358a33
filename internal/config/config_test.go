package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/attrread/pkg/attrread"
)

// chdir switches into a fresh directory so the implicit attrread.yaml and
// .env lookups see nothing unexpected.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data/business.csv", cfg.Input)
	assert.Equal(t, "attributes", cfg.Column)
	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.KeepGoing)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `input: exports/shops.csv
column: attrs
delimiter: ";"
sheet: Businesses
missing_markers:
  - "N/A"
  - "-"
pandas_na: true
keep_going: true
output: json
`
	writeFile(t, filepath.Join(dir, ConfigFileName), content)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "exports/shops.csv", cfg.Input)
	assert.Equal(t, "attrs", cfg.Column)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, "Businesses", cfg.Sheet)
	assert.Equal(t, []string{"N/A", "-"}, cfg.MissingMarkers)
	assert.True(t, cfg.PandasNA)
	assert.True(t, cfg.KeepGoing)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFileName), "column: attrs\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "attrs", cfg.Column)
	assert.Equal(t, attrread.DefaultInputPath, cfg.Input)
	assert.Equal(t, "text", cfg.Output)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFileName), "{{invalid")

	cfg, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, attrread.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ConfigFileName), "")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolve_NoFiles(t *testing.T) {
	chdir(t)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolve_ImplicitConfigFile(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, ConfigFileName), "output: yaml\n")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
}

func TestResolve_ExplicitConfigMissing(t *testing.T) {
	dir := chdir(t)

	_, err := Resolve(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, attrread.ErrInvalidConfig))
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "column: from_file\noutput: json\n")

	t.Setenv("ATTRREAD_COLUMN", "from_env")
	t.Setenv("ATTRREAD_KEEP_GOING", "true")
	t.Setenv("ATTRREAD_MISSING_MARKERS", "NA,null")

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Column)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.KeepGoing)
	assert.Equal(t, []string{"NA", "null"}, cfg.MissingMarkers)
}

func TestResolve_DotEnv(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, DefaultEnvFile), "ATTRREAD_INPUT=from_dotenv.csv\n")
	// t.Setenv registers cleanup of the variable godotenv is about to set
	t.Setenv("ATTRREAD_INPUT", "")
	require.NoError(t, os.Unsetenv("ATTRREAD_INPUT"))

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv.csv", cfg.Input)
}

func TestResolve_ExplicitEnvFileMissing(t *testing.T) {
	dir := chdir(t)

	_, err := Resolve("", filepath.Join(dir, "missing.env"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, attrread.ErrInvalidConfig))
}

func TestResolve_InvalidEnvValue(t *testing.T) {
	chdir(t)
	t.Setenv("ATTRREAD_KEEP_GOING", "maybe")

	_, err := Resolve("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, attrread.ErrInvalidConfig))
}

func TestResolve_LeavesValidationToCaller(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, ConfigFileName), "delimiter: ';;'\n")
	t.Setenv("ATTRREAD_OUTPUT", "xml")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, ";;", cfg.Delimiter)
	assert.Equal(t, "xml", cfg.Output)
	assert.True(t, errors.Is(cfg.Validate(), attrread.ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"tab delimiter", func(c *Config) { c.Delimiter = "\t" }, false},
		{"uppercase output", func(c *Config) { c.Output = "JSON" }, false},
		{"empty input", func(c *Config) { c.Input = " " }, true},
		{"empty column", func(c *Config) { c.Column = "" }, true},
		{"empty delimiter", func(c *Config) { c.Delimiter = "" }, true},
		{"long delimiter", func(c *Config) { c.Delimiter = ";;" }, true},
		{"quote delimiter", func(c *Config) { c.Delimiter = `"` }, true},
		{"newline delimiter", func(c *Config) { c.Delimiter = "\n" }, true},
		{"unknown output", func(c *Config) { c.Output = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, attrread.ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
