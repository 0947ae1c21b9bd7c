package main

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"

	"mqctl/internal/options"
	"mqctl/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the host supports POSIX message queues and show kernel limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := options.OutputText
			if output != "" {
				parsed, err := options.ParseOutput(output)
				if err != nil {
					return err
				}
				format = parsed
			}

			results := preflight.RunAll(ctx.paths)
			out := cmd.OutOrStdout()
			switch format {
			case options.OutputJSON:
				if err := writeJSON(out, results); err != nil {
					return err
				}
			case options.OutputTable:
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Name, passLabel(r.Passed), r.Detail})
				}
				fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			default:
				for _, r := range results {
					fmt.Fprintf(out, "%s: %s %s\n", r.Name, passLabel(r.Passed), r.Detail)
				}
			}

			if preflight.Failed(results) {
				return statusError{code: int(syscall.ENOENT)}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: text, table or json")
	return cmd
}

func passLabel(passed bool) string {
	if passed {
		return "ok"
	}
	return "FAIL"
}
