package cli

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"simgit.dev/simgit/internal/output"
	"simgit.dev/simgit/internal/runtime"
)

// newPRCmd creates the pr command group
func newPRCmd(ctx *runtime.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Create and manage pull requests",
	}

	cmd.AddCommand(newPRCreateCmd(ctx))
	cmd.AddCommand(newPRStatusCmd(ctx))
	cmd.AddCommand(newPRReviewCmd(ctx))
	cmd.AddCommand(newPRApproveCmd(ctx))
	cmd.AddCommand(newPRRejectCmd(ctx))
	cmd.AddCommand(newPRCancelCmd(ctx))
	cmd.AddCommand(newPRListCmd(ctx))
	cmd.AddCommand(newPRNextCmd(ctx))
	cmd.AddCommand(newPRTagCmd(ctx))
	cmd.AddCommand(newPRClearCmd(ctx))

	return cmd
}

// newPRCreateCmd creates the pr create command
func newPRCreateCmd(ctx *runtime.Context) *cobra.Command {
	var (
		source      string
		target      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Open a pull request from a source branch to a target branch",
		Long: `Open a pull request proposing the commits unique to the source branch.

The source defaults to the current branch. When run interactively, a missing
title or description is prompted for.`,
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}

			if source == "" {
				source = r.CurrentBranch()
			}

			title := strings.Join(args, " ")
			if title == "" {
				if runtime.IsNonInteractive() || !output.Styled() {
					return errors.New("pull request title required")
				}
				if err := survey.AskOne(&survey.Input{Message: "Title:"}, &title, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
			}
			if description == "" && !runtime.IsNonInteractive() && output.Styled() {
				if err := survey.AskOne(&survey.Multiline{Message: "Description:"}, &description); err != nil {
					return err
				}
			}

			id, err := r.CreatePullRequest(title, description, source, target, ctx.Author)
			if err != nil {
				return err
			}
			ctx.Splog.Info("Created pull request %s", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Source branch (defaults to the current branch)")
	cmd.Flags().StringVarP(&target, "target", "t", "main", "Target branch")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Pull request description")

	return cmd
}

// newPRStatusCmd creates the pr status command
func newPRStatusCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "status <pr-id>",
		Short: "Show the full detail of a pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			pr, err := r.GetPullRequest(args[0])
			if err != nil {
				return err
			}
			ctx.Splog.Page(output.FormatPullRequest(pr))
			return nil
		},
	}
}

// newPRReviewCmd creates the pr review command
func newPRReviewCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "review <pr-id> <reviewer>",
		Short: "Add a reviewer to an open pull request",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			if err := r.ReviewPullRequest(args[0], args[1]); err != nil {
				return err
			}
			ctx.Splog.Info("Added reviewer %s to pull request %s", args[1], args[0])
			return nil
		},
	}
}

// newPRApproveCmd creates the pr approve command
func newPRApproveCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <pr-id>",
		Short: "Approve an open pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			if err := r.ApprovePullRequest(args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("Approved pull request %s", args[0])
			return nil
		},
	}
}

// newPRRejectCmd creates the pr reject command
func newPRRejectCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <pr-id>",
		Short: "Reject an open pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			if err := r.RejectPullRequest(args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("Rejected pull request %s", args[0])
			return nil
		},
	}
}

// newPRCancelCmd creates the pr cancel command
func newPRCancelCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <pr-id>",
		Short: "Cancel an open pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			if err := r.CancelPullRequest(args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("Cancelled pull request %s", args[0])
			return nil
		},
	}
}

// newPRListCmd creates the pr list command
func newPRListCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all pull requests in arrival order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			ctx.Splog.Page(output.FormatPullRequestList(r.PullRequests()))
			return nil
		},
	}
}

// newPRNextCmd creates the pr next command
func newPRNextCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the oldest pull request still tracked",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			pr, ok := r.NextPullRequest()
			if !ok {
				ctx.Splog.Info("No pull requests in queue")
				return nil
			}
			ctx.Splog.Page(output.FormatNextPullRequest(pr))
			return nil
		},
	}
}

// newPRTagCmd creates the pr tag command
func newPRTagCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <pr-id> <tag>",
		Short: "Add a tag to a pull request in any status",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			if err := r.TagPullRequest(args[0], args[1]); err != nil {
				return err
			}
			ctx.Splog.Info("Added tag %q to pull request %s", args[1], args[0])
			return nil
		},
	}
}

// newPRClearCmd creates the pr clear command
func newPRClearCmd(ctx *runtime.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all pull requests (id numbering continues)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			r, err := requireRepo(ctx)
			if err != nil {
				return err
			}
			r.ClearPullRequests()
			ctx.Splog.Info("Cleared all pull requests")
			return nil
		},
	}
}
