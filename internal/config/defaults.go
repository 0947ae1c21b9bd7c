package config

const (
	defaultConfigPath = "~/.config/mqctl/config.toml"
	projectConfigName = "mqctl.toml"

	envConfig    = "MQCTL_CONFIG"
	envLogLevel  = "MQCTL_LOG_LEVEL"
	envLogFormat = "MQCTL_LOG_FORMAT"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
	defaultLogColor  = "auto"
	defaultMode      = "0755"
	defaultPriority  = 16384
	defaultOutput    = "text"

	// priorityLimit is MQ_PRIO_MAX on Linux.
	priorityLimit = 32768
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Color:  defaultLogColor,
		},
		Defaults: Defaults{
			Mode:     defaultMode,
			Block:    true,
			Priority: defaultPriority,
			Output:   defaultOutput,
		},
		mode: 0o755,
	}
}
