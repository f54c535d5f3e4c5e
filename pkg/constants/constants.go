package constants

const (
	// ConfigName is the config file name without extension.
	ConfigName = "config"

	// ConfigFormat is the config file format read by viper.
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. GLOWDESK_DATABASE_HOST overrides database.host.
	EnvPrefix = "GLOWDESK"
)
