package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mqctl/internal/mqueue"
	"mqctl/internal/options"
)

const usageText = `usage:
	mqctl [rm|info|recv] -q <queue>
	mqctl create -q <queue> -s <maxsize> -d <maxdepth> [ -m <mode> ] [ -b <block> ] [-u <uid> ] [ -g <gid> ]
	mqctl send -q <queue> -c <content> [-p <priority> ]`

func newRootCommand() *cobra.Command {
	return newRootCommandWith(newCommandContext(mqueue.NewPOSIX(), options.SystemIdentities{}))
}

func newRootCommandWith(ctx *commandContext) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:           "mqctl",
		Short:         "Inspect and manipulate POSIX message queues",
		Long:          usageText,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown verb [%s]", args[0])
			}
			return cmd.Help()
		},
	}

	for _, v := range verbs {
		rootCmd.AddCommand(newVerbCommand(ctx, v))
	}
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
