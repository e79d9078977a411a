package cli

import (
	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/runtime"
)

// newReposCmd creates the repos command group
func newReposCmd(ctx *runtime.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Manage the repositories known to this session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered repositories",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			names := ctx.Manager.List()
			if len(names) == 0 {
				ctx.Splog.Info("No repositories registered")
				return nil
			}
			for _, name := range names {
				ctx.Splog.Info("%s", name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "switch <name>",
		Short: "Select the repository commands operate on",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := ctx.Manager.Switch(args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("Switched to repository %q", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a repository from the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := ctx.Manager.Delete(args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("Deleted repository %q", args[0])
			return nil
		},
	})

	return cmd
}
