package repo

import (
	"maps"
	"slices"
	"time"
)

// FileState describes the disposition of a file relative to the last commit.
type FileState string

const (
	// StateAdded indicates a file staged for the first time
	StateAdded FileState = "added"
	// StateModified indicates a staged file whose content differs from the head commit
	StateModified FileState = "modified"
	// StateDeleted indicates a file staged for removal
	StateDeleted FileState = "deleted"
	// StateNew indicates a working-directory file that has not been staged
	StateNew FileState = "new"
)

// PRStatus is the lifecycle status of a pull request.
type PRStatus string

const (
	// PROpen is the initial status; the only status that accepts transitions
	PROpen PRStatus = "open"
	// PRApproved is a terminal status set by approve
	PRApproved PRStatus = "approved"
	// PRRejected is a terminal status set by reject
	PRRejected PRStatus = "rejected"
	// PRCancelled is a terminal status set by cancel
	PRCancelled PRStatus = "cancelled"
	// PRMerged is defined for completeness; no operation in this core produces it
	PRMerged PRStatus = "merged"
)

// Commit is a node in the commit graph. Commits are immutable once stored;
// the graph only hands out copies.
type Commit struct {
	ID        string
	Message   string
	Author    string
	Timestamp time.Time
	Parent    string // empty for a root commit
	Changes   map[string]string
	Branch    string // branch that was current when the commit was created
}

func (c *Commit) clone() Commit {
	out := *c
	out.Changes = maps.Clone(c.Changes)
	return out
}

// StagedFile is a pending change in the staging area.
type StagedFile struct {
	Path       string
	Content    string
	State      FileState
	Checksum   string
	LastCommit string // last commit that touched this path, empty if none
}

// FileStatus is one row of the status report.
type FileStatus struct {
	Path    string
	State   FileState
	Content string
}

// PullRequest is a proposal to bring the commits unique to a source branch
// into a target branch. The commit list and file set are captured at
// creation time and never recomputed.
type PullRequest struct {
	ID            string
	Title         string
	Description   string
	Author        string
	CreatedAt     time.Time
	SourceBranch  string
	TargetBranch  string
	CommitIDs     []string
	ModifiedFiles map[string]struct{}
	Reviewers     map[string]struct{}
	Tags          map[string]struct{}
	Status        PRStatus
	ClosedAt      *time.Time
	MergedAt      *time.Time
}

func (pr *PullRequest) clone() PullRequest {
	out := *pr
	out.CommitIDs = slices.Clone(pr.CommitIDs)
	out.ModifiedFiles = maps.Clone(pr.ModifiedFiles)
	out.Reviewers = maps.Clone(pr.Reviewers)
	out.Tags = maps.Clone(pr.Tags)
	return out
}
