package cli

import (
	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "init <name> <path>",
		Short: "Create a new repository and select it",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			ctx.Manager.Create(name, path)
			ctx.Splog.Info("Initialized empty repository %q at %q", name, path)
			return nil
		},
	}
}
