package cli

import (
	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/output"
	"simgit.dev/simgit/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show staged files and unstaged working-directory files",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			ctx.Splog.Page(output.FormatStatus(r.CurrentBranch(), r.Detached(), r.Status()))
			return nil
		},
	}
}
