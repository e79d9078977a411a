package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"simgit.dev/simgit/internal/repo"
)

// FormatStatus renders the status report for a branch.
func FormatStatus(branch string, detached bool, rows []repo.FileStatus) string {
	var b strings.Builder
	if detached {
		fmt.Fprintf(&b, "HEAD detached, was on branch %s\n", render(branchStyle, branch))
	} else {
		fmt.Fprintf(&b, "On branch %s\n", render(branchStyle, branch))
	}

	if len(rows) == 0 {
		b.WriteString("Nothing to commit, working tree clean\n")
		return b.String()
	}

	b.WriteString("\nChanges not staged for commit:\n")
	for _, row := range rows {
		label := string(row.State)
		switch row.State {
		case repo.StateAdded, repo.StateNew:
			label = render(addedStyle, label)
		case repo.StateModified:
			label = render(changedStyle, label)
		case repo.StateDeleted:
			label = render(closedStyle, label)
		}
		fmt.Fprintf(&b, "  %s: %s\n", label, row.Path)
	}
	return b.String()
}

// FormatLog renders commit history, newest first.
func FormatLog(history []repo.Commit) string {
	if len(history) == 0 {
		return "No commits yet\n"
	}

	var b strings.Builder
	for _, c := range history {
		fmt.Fprintf(&b, "commit %s\n", render(commitStyle, c.ID))
		fmt.Fprintf(&b, "Author: %s\n", c.Author)
		fmt.Fprintf(&b, "Date:   %s\n", c.Timestamp.Format(time.RFC1123))
		fmt.Fprintf(&b, "Branch: %s\n", c.Branch)
		fmt.Fprintf(&b, "\n    %s\n\n", c.Message)
	}
	return b.String()
}

// FormatBranches renders the branch list with the current branch marked.
func FormatBranches(names []string, current string) string {
	var b strings.Builder
	for _, name := range names {
		if name == current {
			fmt.Fprintf(&b, "* %s\n", render(branchStyle, name))
		} else {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	return b.String()
}

// FormatPullRequestList renders a one-line-per-PR summary in arrival order.
func FormatPullRequestList(prs []repo.PullRequest) string {
	if len(prs) == 0 {
		return "No pull requests found\n"
	}

	var b strings.Builder
	b.WriteString("Pull Requests:\n")
	for _, pr := range prs {
		fmt.Fprintf(&b, "  %s: %s (%s)\n", render(commitStyle, pr.ID), pr.Title, renderStatus(pr.Status))
		fmt.Fprintf(&b, "    %s -> %s\n", pr.SourceBranch, pr.TargetBranch)
	}
	return b.String()
}

// FormatPullRequest renders the full detail view of one pull request.
func FormatPullRequest(pr repo.PullRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pull Request: %s\n", render(commitStyle, pr.ID))
	fmt.Fprintf(&b, "Title:    %s\n", pr.Title)
	fmt.Fprintf(&b, "Status:   %s\n", renderStatus(pr.Status))
	fmt.Fprintf(&b, "Author:   %s\n", pr.Author)
	fmt.Fprintf(&b, "Created:  %s\n", pr.CreatedAt.Format(time.RFC1123))
	fmt.Fprintf(&b, "Source:   %s\n", pr.SourceBranch)
	fmt.Fprintf(&b, "Target:   %s\n", pr.TargetBranch)
	fmt.Fprintf(&b, "Reviewers: %s\n", joinSet(pr.Reviewers))
	fmt.Fprintf(&b, "Tags:      %s\n", joinSet(pr.Tags))
	fmt.Fprintf(&b, "Modified:  %s\n", joinSet(pr.ModifiedFiles))
	if pr.ClosedAt != nil {
		fmt.Fprintf(&b, "Closed:    %s\n", pr.ClosedAt.Format(time.RFC1123))
	}
	fmt.Fprintf(&b, "Description:\n%s\n", pr.Description)
	return b.String()
}

// FormatNextPullRequest renders the front-of-queue summary.
func FormatNextPullRequest(pr repo.PullRequest) string {
	var b strings.Builder
	b.WriteString("Next Pull Request:\n")
	fmt.Fprintf(&b, "  ID:     %s\n", render(commitStyle, pr.ID))
	fmt.Fprintf(&b, "  Title:  %s\n", pr.Title)
	fmt.Fprintf(&b, "  Status: %s\n", renderStatus(pr.Status))
	fmt.Fprintf(&b, "  %s -> %s\n", pr.SourceBranch, pr.TargetBranch)
	return b.String()
}

func renderStatus(status repo.PRStatus) string {
	switch status {
	case repo.PROpen:
		return render(addedStyle, string(status))
	case repo.PRApproved, repo.PRMerged:
		return render(branchStyle, string(status))
	default:
		return render(closedStyle, string(status))
	}
}

// joinSet renders a set as a sorted comma-separated list, "none" when empty.
func joinSet(set map[string]struct{}) string {
	if len(set) == 0 {
		return render(dimStyle, "none")
	}
	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)
	return strings.Join(items, ", ")
}
