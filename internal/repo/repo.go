package repo

import (
	"maps"
	"sort"
	"sync"
	"time"

	"simgit.dev/simgit/internal/errors"
)

// DefaultBranch is the branch every new repository starts on.
const DefaultBranch = "main"

// Repository is the in-memory repository aggregate. It exclusively owns its
// commit graph, branch directory, staging area, working directory and pull
// request queue. All operations are safe for concurrent use: mutators hold
// the write lock, readers the read lock.
type Repository struct {
	mu sync.RWMutex

	name string
	path string

	commits       map[string]*Commit
	branches      map[string]string // branch name -> commit id ("" = no commits yet)
	currentBranch string
	head          string // "" when no commit is checked out
	detached      bool
	workdir       map[string]string
	staging       *StagingArea
	prs           prQueue

	now func() time.Time
}

// Option configures a Repository at construction time.
type Option func(*Repository)

// WithClock overrides the timestamp source. Used by tests that need
// deterministic commit ids.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// New creates an empty repository with a single branch pointing at no commit.
func New(name, path string, opts ...Option) *Repository {
	r := &Repository{
		name:          name,
		path:          path,
		commits:       make(map[string]*Commit),
		branches:      map[string]string{DefaultBranch: ""},
		currentBranch: DefaultBranch,
		workdir:       make(map[string]string),
		staging:       NewStagingArea(),
		prs:           newPRQueue(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the repository name.
func (r *Repository) Name() string {
	return r.name
}

// Path returns the repository path.
func (r *Repository) Path() string {
	return r.path
}

// CurrentBranch returns the name of the checked-out branch. The name is
// still meaningful in detached-head mode; it is simply not advanced by
// commits made there.
func (r *Repository) CurrentBranch() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentBranch
}

// Head returns the current head commit id, or "" before the first commit.
func (r *Repository) Head() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.head
}

// Detached reports whether the repository is in detached-head mode.
func (r *Repository) Detached() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.detached
}

// Add stages path with the given content, replacing any prior staged entry
// for the same path. The disposition is modified when the head commit holds
// different content for the path, added otherwise. Staging is never a no-op:
// re-adding unchanged content still produces a fresh entry.
func (r *Repository) Add(path, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workdir[path] = content

	state := StateAdded
	lastCommit := ""
	if r.head != "" {
		if c, ok := r.commits[r.head]; ok {
			if old, tracked := c.Changes[path]; tracked {
				if old != content {
					state = StateModified
				}
				lastCommit = r.head
			}
		}
	}

	r.staging.Stage(StagedFile{
		Path:       path,
		Content:    content,
		State:      state,
		Checksum:   Checksum(content),
		LastCommit: lastCommit,
	})
}

// Commit records the staged change set as a new commit and advances head.
// The current branch pointer follows head unless the repository is detached.
// Staging is cleared on success.
func (r *Repository) Commit(message, author string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.staging.Len() == 0 {
		return "", errors.ErrNothingStaged
	}

	changes := make(map[string]string, r.staging.Len())
	for _, f := range r.staging.Snapshot() {
		changes[f.Path] = f.Content
	}

	ts := r.now()
	id := commitID(message, author, r.head, ts, changes)
	if _, exists := r.commits[id]; exists {
		return "", errors.NewDuplicateCommitError(id)
	}

	r.commits[id] = &Commit{
		ID:        id,
		Message:   message,
		Author:    author,
		Timestamp: ts,
		Parent:    r.head,
		Changes:   changes,
		Branch:    r.currentBranch,
	}
	r.head = id
	if !r.detached {
		r.branches[r.currentBranch] = id
	}
	r.staging.Clear()

	return id, nil
}

// Branch creates a new branch pointing at the current head. The head may be
// empty on a fresh repository; the branch then has no commits yet.
func (r *Repository) Branch(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.branches[name]; exists {
		return errors.NewBranchExistsError(name)
	}
	r.branches[name] = r.head
	return nil
}

// HasBranch reports whether name exists in the branch directory.
func (r *Repository) HasBranch(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.branches[name]
	return ok
}

// ListBranches returns all branch names in lexicographic order.
func (r *Repository) ListBranches() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.branches))
	for name := range r.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Checkout switches to branchName, rebuilding the working directory from
// the commit the branch points at. It refuses to run while changes are
// staged so staged work is never silently discarded.
func (r *Repository) Checkout(branchName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, exists := r.branches[branchName]
	if !exists {
		return errors.NewBranchNotFoundError(branchName)
	}
	if r.staging.Len() > 0 {
		return errors.ErrUncommittedChanges
	}

	r.currentBranch = branchName
	r.head = target
	r.detached = false
	r.rebuildWorkdir()
	r.staging.Clear()
	return nil
}

// CheckoutCommit moves head to an arbitrary commit and enters detached-head
// mode. No branch pointer changes. Like Checkout, it refuses to discard
// staged work.
func (r *Repository) CheckoutCommit(commitID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commits[commitID]; !exists {
		return errors.NewCommitNotFoundError(commitID)
	}
	if r.staging.Len() > 0 {
		return errors.ErrUncommittedChanges
	}

	r.head = commitID
	r.detached = true
	r.rebuildWorkdir()
	r.staging.Clear()
	return nil
}

// rebuildWorkdir resets the working directory to the head commit's change
// set, or empties it when head points at nothing. Caller holds the lock.
func (r *Repository) rebuildWorkdir() {
	if c, ok := r.commits[r.head]; r.head != "" && ok {
		r.workdir = maps.Clone(c.Changes)
		return
	}
	r.workdir = make(map[string]string)
}

// Status reports staged files in staging order followed by working-directory
// files that are not staged, marked new. Files unchanged since the last
// commit and never re-staged do not appear; this is a staging report, not a
// diff against the head tree.
func (r *Repository) Status() []FileStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []FileStatus
	for _, f := range r.staging.Snapshot() {
		out = append(out, FileStatus{Path: f.Path, State: f.State, Content: f.Content})
	}

	rest := make([]string, 0, len(r.workdir))
	for path := range r.workdir {
		if !r.staging.Contains(path) {
			rest = append(rest, path)
		}
	}
	sort.Strings(rest)
	for _, path := range rest {
		out = append(out, FileStatus{Path: path, State: StateNew, Content: r.workdir[path]})
	}
	return out
}

// Log walks parent links from head to the root and returns commits newest
// first. The walk is cycle-guarded so a corrupted graph terminates instead
// of hanging.
func (r *Repository) Log() []Commit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var history []Commit
	seen := make(map[string]bool)
	for id := r.head; id != ""; {
		if seen[id] {
			break
		}
		seen[id] = true
		c, ok := r.commits[id]
		if !ok {
			break
		}
		history = append(history, c.clone())
		id = c.Parent
	}
	return history
}

// GetCommit returns a copy of the commit with the given id.
func (r *Repository) GetCommit(id string) (Commit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.commits[id]
	if !ok {
		return Commit{}, errors.NewCommitNotFoundError(id)
	}
	return c.clone(), nil
}

// branchCommitIDs walks a branch pointer to the root and returns the commit
// ids newest first. Caller holds at least the read lock.
func (r *Repository) branchCommitIDs(branchName string) []string {
	var ids []string
	seen := make(map[string]bool)
	for id := r.branches[branchName]; id != ""; {
		if seen[id] {
			break
		}
		seen[id] = true
		ids = append(ids, id)
		c, ok := r.commits[id]
		if !ok {
			break
		}
		id = c.Parent
	}
	return ids
}
