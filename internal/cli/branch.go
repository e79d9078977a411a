package cli

import (
	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/output"
	"simgit.dev/simgit/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "branch [name]",
		Short: "List branches or create a new branch at the current head",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				ctx.Splog.Page(output.FormatBranches(r.ListBranches(), r.CurrentBranch()))
				return nil
			}

			name := args[0]
			if err := r.Branch(name); err != nil {
				return err
			}
			ctx.Splog.Info("Created branch %q", name)
			return nil
		},
	}
}
