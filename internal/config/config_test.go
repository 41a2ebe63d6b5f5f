package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *GlobalConfig {
	cfg := NewDefaultGlobalConfig()
	cfg.WarehouseConfig.Project = "my-project"
	cfg.WarehouseConfig.Dataset = "my_dataset"
	cfg.WarehouseConfig.InputTable = "customers"
	cfg.WarehouseConfig.OutputTable = "customers_masked"
	cfg.WarehouseConfig.ChunkSize = 500
	return cfg
}

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultChunkSize, cfg.WarehouseConfig.ChunkSize)
	assert.Equal(t, DefaultPlaceholder, cfg.RedactionConfig.Placeholder)
	assert.Equal(t, DefaultDLPLocation, cfg.RedactionConfig.Location)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.NotEmpty(t, cfg.RedactionConfig.InfoTypes)
	assert.Equal(t, []string{"column_1", "column_2", "column_3", "column_4"}, cfg.RedactionConfig.FieldsToRedact)
}

func TestLoadGlobalConfig_NoFile(t *testing.T) {
	// Run from an empty directory so no ambient config.yaml is picked up.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := LoadGlobalConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultChunkSize, cfg.WarehouseConfig.ChunkSize)
}

func TestLoadGlobalConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGlobalConfig_YAML(t *testing.T) {
	content := `
warehouse_config:
  project: my-project
  dataset: my_dataset
  input_table: customers
  output_table: customers_masked
  chunk_size: 250
redaction_config:
  placeholder: "[REDACTED]"
  fields_to_redact: [name, email]
log_config:
  log_level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "my-project", cfg.WarehouseConfig.Project)
	assert.Equal(t, 250, cfg.WarehouseConfig.ChunkSize)
	assert.Equal(t, "[REDACTED]", cfg.RedactionConfig.Placeholder)
	assert.Equal(t, []string{"name", "email"}, cfg.RedactionConfig.FieldsToRedact)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	// Untouched sections keep their defaults.
	assert.NotEmpty(t, cfg.RedactionConfig.InfoTypes)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	content := `{"warehouse_config": {"project": "p", "dataset": "d", "input_table": "in", "output_table": "out", "chunk_size": 10}}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "p", cfg.WarehouseConfig.Project)
	assert.Equal(t, 10, cfg.WarehouseConfig.ChunkSize)
}

func TestStagingTableName(t *testing.T) {
	wc := WarehouseConfig{InputTable: "customers"}
	assert.Equal(t, "customers_staging", wc.StagingTableName())

	wc.StagingTable = "scratch"
	assert.Equal(t, "scratch", wc.StagingTableName())
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, ValidateConfig(validTestConfig()))
}

func TestValidateConfig_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GlobalConfig)
	}{
		{"missing project", func(c *GlobalConfig) { c.WarehouseConfig.Project = "" }},
		{"missing dataset", func(c *GlobalConfig) { c.WarehouseConfig.Dataset = "" }},
		{"missing input table", func(c *GlobalConfig) { c.WarehouseConfig.InputTable = "" }},
		{"missing output table", func(c *GlobalConfig) { c.WarehouseConfig.OutputTable = "" }},
		{"zero chunk size", func(c *GlobalConfig) { c.WarehouseConfig.ChunkSize = 0 }},
		{"negative chunk size", func(c *GlobalConfig) { c.WarehouseConfig.ChunkSize = -5 }},
		{"bad table charset", func(c *GlobalConfig) { c.WarehouseConfig.InputTable = "cust omers" }},
		{"bad log level", func(c *GlobalConfig) { c.LogConfig.LogLevel = "verbose" }},
		{"bad log format", func(c *GlobalConfig) { c.LogConfig.LogFormat = "xml" }},
		{"staging equals output", func(c *GlobalConfig) { c.WarehouseConfig.StagingTable = c.WarehouseConfig.OutputTable }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}
