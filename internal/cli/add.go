package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/runtime"
)

// newAddCmd creates the add command
func newAddCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>...",
		Short: "Add file contents to the staging area",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}

			for _, path := range args {
				content, err := ctx.ReadFile(path)
				if err != nil {
					return fmt.Errorf("file %q not found: %w", path, err)
				}
				r.Add(path, string(content))
				ctx.Splog.Info("Added %s to staging area", path)
			}
			return nil
		},
	}
}
