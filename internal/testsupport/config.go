package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"mqctl/internal/config"
)

// ConfigOption customizes the generated configuration file.
type ConfigOption func(*config.Config)

// WriteConfig encodes the default configuration, adjusted by opts, into a
// fresh temp directory and points MQCTL_CONFIG at it. It returns the path.
func WriteConfig(t testing.TB, opts ...ConfigOption) string {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "mqctl.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MQCTL_CONFIG", path)
	return path
}

// WithMode sets the default creation mode, an octal string.
func WithMode(mode string) ConfigOption {
	return func(c *config.Config) { c.Defaults.Mode = mode }
}

// WithOutput sets the default output format.
func WithOutput(format string) ConfigOption {
	return func(c *config.Config) { c.Defaults.Output = format }
}

// WithBlock sets the default blocking mode.
func WithBlock(block bool) ConfigOption {
	return func(c *config.Config) { c.Defaults.Block = block }
}

// WithPriority sets the default send priority.
func WithPriority(priority int) ConfigOption {
	return func(c *config.Config) { c.Defaults.Priority = priority }
}

// WithLogging sets the diagnostic format and level.
func WithLogging(format, level string) ConfigOption {
	return func(c *config.Config) {
		c.Logging.Format = format
		c.Logging.Level = level
	}
}
