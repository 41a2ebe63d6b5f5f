package config

const (
	// Warehouse Defaults
	DefaultChunkSize          = 1000
	DefaultStagingTableSuffix = "_staging"

	// Redaction Defaults
	DefaultPlaceholder = "################"
	DefaultDLPLocation = "global"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Config file lookup
	ConfigPathEnvVar = "TABLEWASH_CONFIG_PATH"
)
