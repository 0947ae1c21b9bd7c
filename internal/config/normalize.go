package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeLogging()
	c.normalizeDefaults()
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv(envLogFormat); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Color = strings.ToLower(strings.TrimSpace(c.Logging.Color))
	if c.Logging.Color == "" {
		c.Logging.Color = defaultLogColor
	}
}

func (c *Config) normalizeDefaults() {
	c.Defaults.Mode = strings.TrimSpace(c.Defaults.Mode)
	if c.Defaults.Mode == "" {
		c.Defaults.Mode = defaultMode
	}
	c.Defaults.Output = strings.ToLower(strings.TrimSpace(c.Defaults.Output))
	if c.Defaults.Output == "" {
		c.Defaults.Output = defaultOutput
	}
}
