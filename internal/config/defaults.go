package config

import "time"

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:         "", // Resolved from XDG data dir at load time
			QueryTimeout: 5 * time.Second,
		},
		Window: WindowConfig{
			DoubleClickMaximizes:  false,
			ResizeHandlersEnabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
