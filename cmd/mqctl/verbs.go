package main

import (
	"syscall"

	"github.com/spf13/cobra"

	"mqctl/internal/batch"
	"mqctl/internal/options"
)

type verb struct {
	name    string
	aliases []string
	args    string
	short   string
	table   func(*options.Request, options.IdentityResolver) options.Table
	run     func(*batch.Executor, *options.Request) batch.Outcome
}

var verbs = []verb{
	{
		name:    "create",
		aliases: []string{"attr"},
		args:    "-q <queue> -s <maxsize> -d <maxdepth> [-m <mode>] [-b <block>] [-u <uid>] [-g <gid>]",
		short:   "Create queues or converge existing ones to the given owner and mode",
		table:   options.CreateTable,
		run:     (*batch.Executor).Create,
	},
	{
		name:    "info",
		aliases: []string{"cat"},
		args:    "-q <queue> [-o text|table|json]",
		short:   "Show queue attributes",
		table: func(req *options.Request, _ options.IdentityResolver) options.Table {
			return options.InfoTable(req)
		},
		run: (*batch.Executor).Info,
	},
	{
		name:  "send",
		args:  "-q <queue> -c <content> [-p <priority>] [-b <block>]",
		short: "Send every content payload to every queue",
		table: func(req *options.Request, _ options.IdentityResolver) options.Table {
			return options.SendTable(req)
		},
		run: (*batch.Executor).Send,
	},
	{
		name:    "recv",
		aliases: []string{"receive"},
		args:    "-q <queue> [-b <block>] [-o text|table|json]",
		short:   "Receive one message from a queue",
		table: func(req *options.Request, _ options.IdentityResolver) options.Table {
			return options.ReceiveTable(req)
		},
		run: (*batch.Executor).Receive,
	},
	{
		name:    "unlink",
		aliases: []string{"rm"},
		args:    "-q <queue>",
		short:   "Remove queues",
		table: func(req *options.Request, _ options.IdentityResolver) options.Table {
			return options.UnlinkTable(req)
		},
		run: (*batch.Executor).Unlink,
	},
}

func newVerbCommand(ctx *commandContext, v verb) *cobra.Command {
	return &cobra.Command{
		Use:                v.name + " " + v.args,
		Aliases:            v.aliases,
		Short:              v.short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runVerb(cmd, args, v)
		},
	}
}

func (c *commandContext) runVerb(cmd *cobra.Command, args []string, v verb) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.logger(cmd, cfg)
	if err != nil {
		return err
	}

	req := options.NewRequest(requestDefaults(cfg))
	table := v.table(req, c.identities)
	options.Dispatch(args, table, logger)
	if !options.ValidateAll(table, logger) {
		return statusError{code: int(syscall.EINVAL)}
	}

	reporter := newReporter(req.Output, cmd.OutOrStdout())
	outcome := v.run(batch.New(c.service, reporter, logger), req)
	if err := reporter.Flush(); err != nil {
		return err
	}
	if code := outcome.Code(); code != 0 {
		return statusError{code: code}
	}
	return nil
}
