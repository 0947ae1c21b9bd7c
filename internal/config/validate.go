package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateDefaults(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("logging.color: unsupported value %q (use auto, always or never)", c.Logging.Color)
	}
	return nil
}

func (c *Config) validateDefaults() error {
	mode, err := strconv.ParseUint(strings.TrimPrefix(c.Defaults.Mode, "0o"), 8, 32)
	if err != nil || mode == 0 || mode >= 0o10000 {
		return fmt.Errorf("defaults.mode: %q is not an octal permission value", c.Defaults.Mode)
	}
	c.mode = uint32(mode)

	if c.Defaults.Priority < 0 || c.Defaults.Priority >= priorityLimit {
		return fmt.Errorf("defaults.priority must be between 0 and %d", priorityLimit-1)
	}
	switch c.Defaults.Output {
	case "text", "table", "json":
	default:
		return fmt.Errorf("defaults.output: unsupported value %q (use text, table or json)", c.Defaults.Output)
	}
	return nil
}
