package cli

import (
	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(ctx *runtime.Context) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "checkout [-b] <branch> | <commit-id>",
		Short: "Switch branches or move head to a commit",
		Long: `Switch to a branch, or detach head at a commit.

The target is resolved as a branch name first and falls back to a commit id.
With -b, the branch is created at the current head and then checked out.
Checkout refuses to run while changes are staged; commit them first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			target := args[0]

			if create {
				if err := r.Branch(target); err != nil {
					return err
				}
				if err := r.Checkout(target); err != nil {
					return err
				}
				ctx.Splog.Info("Switched to a new branch %q", target)
				return nil
			}

			if r.HasBranch(target) {
				if err := r.Checkout(target); err != nil {
					return err
				}
				ctx.Splog.Info("Switched to branch %q", target)
				return nil
			}

			if err := r.CheckoutCommit(target); err != nil {
				return err
			}
			ctx.Splog.Info("HEAD is now at %s", target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&create, "branch", "b", false, "Create the branch before switching to it")

	return cmd
}
