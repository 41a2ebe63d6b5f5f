package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablewash/tablewash/internal/config"
)

func TestLoggerBuilder_Default(t *testing.T) {
	builder := NewLoggerBuilder()
	logger, err := builder.Build()
	require.NoError(t, err)
	require.NotNil(t, logger)

	cfg := logger.GetConfig()
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.Equal(t, FormatConsole, cfg.Format)
	assert.True(t, cfg.EnableConsole)
	assert.False(t, cfg.EnableFile)
}

func TestNew_DefaultLogConfig(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	_, err := New(cfg)
	require.NoError(t, err)
}

func TestConfigConverter(t *testing.T) {
	converter := NewConfigConverter()

	loggerCfg, err := converter.ConvertConfig(config.LogConfig{
		LogLevel:  "debug",
		LogFormat: "json",
		LogFile:   "run.log",
	})
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, loggerCfg.Level)
	assert.Equal(t, FormatJSON, loggerCfg.Format)
	assert.True(t, loggerCfg.EnableFile)
	assert.Equal(t, 100, loggerCfg.MaxSizeMB)
	assert.Equal(t, 3, loggerCfg.MaxBackups)
}

func TestConfigConverter_UnknownLevelFallsBack(t *testing.T) {
	converter := NewConfigConverter()
	loggerCfg, err := converter.ConvertConfig(config.LogConfig{LogLevel: "shout"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, loggerCfg.Level)
}

func TestLogFormatParser(t *testing.T) {
	parser := NewLogFormatParser()
	assert.Equal(t, FormatJSON, parser.ParseFormat("json"))
	assert.Equal(t, FormatText, parser.ParseFormat("TEXT"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("console"))
	assert.Equal(t, FormatConsole, parser.ParseFormat("unknown"))
}

func TestWriterFactory_RunSubdirectory(t *testing.T) {
	factory := NewWriterFactory()

	path := factory.buildLogPath(LoggerConfig{
		FilePath:   "/var/log/tablewash/tablewash.log",
		UseSubdirs: true,
		RunID:      "20240101-120000",
	})
	assert.Equal(t, "/var/log/tablewash/runs/20240101-120000/tablewash.log", path)

	path = factory.buildLogPath(LoggerConfig{
		FilePath:   "/var/log/tablewash/tablewash.log",
		UseSubdirs: true,
	})
	assert.Equal(t, "/var/log/tablewash/tablewash.log", path)
}
