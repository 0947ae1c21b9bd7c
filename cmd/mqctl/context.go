package main

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mqctl/internal/config"
	"mqctl/internal/logging"
	"mqctl/internal/mqueue"
	"mqctl/internal/options"
	"mqctl/internal/preflight"
)

type commandContext struct {
	service    mqueue.Service
	identities options.IdentityResolver
	paths      preflight.Paths

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(svc mqueue.Service, ids options.IdentityResolver) *commandContext {
	return &commandContext{service: svc, identities: ids, paths: preflight.DefaultPaths()}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load("")
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger writes diagnostics to the command's error stream. Every record
// carries the invocation id so JSON consumers can group one batch.
func (c *commandContext) logger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Color:  cfg.Logging.Color,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return logger.With(logging.String(logging.FieldInvocation, uuid.NewString())), nil
}

func requestDefaults(cfg *config.Config) options.Defaults {
	d := options.BuiltinDefaults()
	if mode := cfg.ModeBits(); mode != 0 {
		d.Mode = mode
	}
	d.Block = cfg.Defaults.Block
	if cfg.Defaults.Priority >= 0 {
		d.Priority = uint(cfg.Defaults.Priority)
	}
	if cfg.Defaults.Output != "" {
		d.Output = cfg.Defaults.Output
	}
	return d
}
