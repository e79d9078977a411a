// Package cli defines the cobra command tree. Commands parse arguments,
// pull the target repository from the registry and render results; all
// repository semantics live in internal/repo.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/runtime"
)

// ungated commands must always run so a disabled gate can be undone.
var ungated = map[string]bool{
	"config":     true,
	"shell":      true,
	"help":       true,
	"completion": true,
}

// NewRootCmd creates the root cobra command
func NewRootCmd(ctx *runtime.Context, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "simgit",
		Short:   "Simgit simulates a git repository with a pull request workflow",
		Long: `Simgit simulates a git repository entirely in memory: staging, commits,
branches, checkout and a lightweight pull request queue.

State lives for the duration of one session; use 'simgit shell' (or run
simgit with no arguments) for an interactive session.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			name := topLevelName(cmd)
			if name == "" || ungated[name] {
				return nil
			}
			if !ctx.Config.IsEnabled(name) {
				return fmt.Errorf("command %q is disabled", name)
			}
			return nil
		},
	}

	// Add subcommands
	rootCmd.AddCommand(newInitCmd(ctx))
	rootCmd.AddCommand(newAddCmd(ctx))
	rootCmd.AddCommand(newCommitCmd(ctx))
	rootCmd.AddCommand(newBranchCmd(ctx))
	rootCmd.AddCommand(newCheckoutCmd(ctx))
	rootCmd.AddCommand(newStatusCmd(ctx))
	rootCmd.AddCommand(newLogCmd(ctx))
	rootCmd.AddCommand(newPRCmd(ctx))
	rootCmd.AddCommand(newReposCmd(ctx))
	rootCmd.AddCommand(newConfigCmd(ctx))
	rootCmd.AddCommand(newShellCmd(ctx, version))

	return rootCmd
}

// topLevelName returns the name of the top-level command an invocation
// belongs to, so the gate applies to command groups as a whole.
func topLevelName(cmd *cobra.Command) string {
	if !cmd.HasParent() {
		return ""
	}
	for cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}
