// Package errors provides sentinel errors and custom error types for the simgit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists indicates that a branch with the same name already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrCommitNotFound indicates that a commit does not exist
	ErrCommitNotFound = errors.New("commit not found")

	// ErrDuplicateCommit indicates that a commit id collided with an existing one
	ErrDuplicateCommit = errors.New("duplicate commit")

	// ErrNothingStaged indicates that a commit was attempted with an empty staging area
	ErrNothingStaged = errors.New("nothing staged")

	// ErrUncommittedChanges indicates that staged work would be discarded by a checkout
	ErrUncommittedChanges = errors.New("uncommitted changes")

	// ErrPullRequestNotFound indicates that a pull request id is unknown
	ErrPullRequestNotFound = errors.New("pull request not found")

	// ErrPullRequestNotOpen indicates an operation that requires an open pull request
	ErrPullRequestNotOpen = errors.New("pull request not open")

	// ErrNoChanges indicates that a pull request would contain no commits
	ErrNoChanges = errors.New("no changes to merge")

	// ErrRepositoryNotFound indicates that a repository name is unknown to the registry
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrNoRepository indicates that no repository is currently selected
	ErrNoRepository = errors.New("no repository selected")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchExistsError represents an error when creating a branch that already exists
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// CommitNotFoundError represents an error when a commit id is unknown
type CommitNotFoundError struct {
	CommitID string
}

func (e *CommitNotFoundError) Error() string {
	return fmt.Sprintf("commit %s not found", e.CommitID)
}

// Is returns true if the target error is ErrCommitNotFound
func (e *CommitNotFoundError) Is(target error) bool {
	return target == ErrCommitNotFound
}

// NewCommitNotFoundError creates a new CommitNotFoundError
func NewCommitNotFoundError(commitID string) *CommitNotFoundError {
	return &CommitNotFoundError{CommitID: commitID}
}

// DuplicateCommitError represents a commit id collision. The graph rejects
// the write instead of overwriting the existing commit.
type DuplicateCommitError struct {
	CommitID string
}

func (e *DuplicateCommitError) Error() string {
	return fmt.Sprintf("commit %s already exists", e.CommitID)
}

// Is returns true if the target error is ErrDuplicateCommit
func (e *DuplicateCommitError) Is(target error) bool {
	return target == ErrDuplicateCommit
}

// NewDuplicateCommitError creates a new DuplicateCommitError
func NewDuplicateCommitError(commitID string) *DuplicateCommitError {
	return &DuplicateCommitError{CommitID: commitID}
}

// PullRequestNotFoundError represents an error when a pull request id is unknown
type PullRequestNotFoundError struct {
	ID string
}

func (e *PullRequestNotFoundError) Error() string {
	return fmt.Sprintf("pull request %s not found", e.ID)
}

// Is returns true if the target error is ErrPullRequestNotFound
func (e *PullRequestNotFoundError) Is(target error) bool {
	return target == ErrPullRequestNotFound
}

// NewPullRequestNotFoundError creates a new PullRequestNotFoundError
func NewPullRequestNotFoundError(id string) *PullRequestNotFoundError {
	return &PullRequestNotFoundError{ID: id}
}

// PullRequestNotOpenError represents an operation on a pull request that has
// already reached a terminal status.
type PullRequestNotOpenError struct {
	ID     string
	Status string
}

func (e *PullRequestNotOpenError) Error() string {
	return fmt.Sprintf("pull request %s is not open (status: %s)", e.ID, e.Status)
}

// Is returns true if the target error is ErrPullRequestNotOpen
func (e *PullRequestNotOpenError) Is(target error) bool {
	return target == ErrPullRequestNotOpen
}

// NewPullRequestNotOpenError creates a new PullRequestNotOpenError
func NewPullRequestNotOpenError(id, status string) *PullRequestNotOpenError {
	return &PullRequestNotOpenError{ID: id, Status: status}
}

// RepositoryNotFoundError represents an unknown repository name in the registry
type RepositoryNotFoundError struct {
	Name string
}

func (e *RepositoryNotFoundError) Error() string {
	return fmt.Sprintf("repository %s not found", e.Name)
}

// Is returns true if the target error is ErrRepositoryNotFound
func (e *RepositoryNotFoundError) Is(target error) bool {
	return target == ErrRepositoryNotFound
}

// NewRepositoryNotFoundError creates a new RepositoryNotFoundError
func NewRepositoryNotFoundError(name string) *RepositoryNotFoundError {
	return &RepositoryNotFoundError{Name: name}
}
