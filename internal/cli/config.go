package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/runtime"
)

// newConfigCmd creates the config command group. It is never gated so a
// disabled command can always be turned back on.
func newConfigCmd(ctx *runtime.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Enable or disable top-level commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enable <command>",
		Short: "Enable a command",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := ctx.Config.Enable(args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("Enabled command %q", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable <command>",
		Short: "Disable a command",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := ctx.Config.Disable(args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("Disabled command %q", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List enabled commands",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx.Splog.Info("Enabled commands: %s", strings.Join(ctx.Config.EnabledCommands(), ", "))
			return nil
		},
	})

	return cmd
}
