package config

const (
	// Parser Defaults
	DefaultParserDecodeQuery        = false
	DefaultParserForceHostDetection = false
	DefaultParserQueryDuplicates    = "last"
	DefaultParserMaxQueryKeys       = 1000

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Config file lookup
	ConfigPathEnvVar      = "LEGACYURL_CONFIG_PATH"
	DefaultConfigFileName = "legacyurl"
	maxConfigFileSize     = 1024 * 1024
)
