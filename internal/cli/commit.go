package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd(ctx *runtime.Context) *cobra.Command {
	var (
		message string
		author  string
	)

	cmd := &cobra.Command{
		Use:   "commit -m <message>",
		Short: "Record staged changes as a new commit",
		RunE: func(_ *cobra.Command, _ []string) error {
			if message == "" {
				return errors.New("commit message required (use -m)")
			}

			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}

			who := author
			if who == "" {
				who = ctx.Author
			}
			id, err := r.Commit(message, who)
			if err != nil {
				return err
			}
			ctx.Splog.Info("Created commit %s", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().StringVar(&author, "author", "", "Override the commit author")

	return cmd
}
