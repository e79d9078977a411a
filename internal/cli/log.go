package cli

import (
	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/output"
	"simgit.dev/simgit/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show commit history from head to the root, newest first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			ctx.Splog.Page(output.FormatLog(r.Log()))
			return nil
		},
	}
}
