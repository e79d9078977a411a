package repo

import (
	"fmt"

	"simgit.dev/simgit/internal/errors"
)

// prQueue tracks pull requests in arrival order with a fast id index.
// The counter is monotonic for the life of the repository; Clear never
// resets it, so ids stay unique across clears.
type prQueue struct {
	counter int
	order   []*PullRequest
	byID    map[string]*PullRequest
}

func newPRQueue() prQueue {
	return prQueue{byID: make(map[string]*PullRequest)}
}

// openPR returns the pull request for id if it exists and is still open.
func (q *prQueue) openPR(id string) (*PullRequest, error) {
	pr, ok := q.byID[id]
	if !ok {
		return nil, errors.NewPullRequestNotFoundError(id)
	}
	if pr.Status != PROpen {
		return nil, errors.NewPullRequestNotOpenError(id, string(pr.Status))
	}
	return pr, nil
}

// CreatePullRequest opens a pull request proposing the commits unique to
// sourceBranch relative to targetBranch. Both branches must exist and the
// source must contribute at least one commit the target does not reach.
// The unique-commit list and touched-file set are captured now and never
// recomputed, even if the branches move later.
func (r *Repository) CreatePullRequest(title, description, sourceBranch, targetBranch, author string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.branches[sourceBranch]; !ok {
		return "", errors.NewBranchNotFoundError(sourceBranch)
	}
	if _, ok := r.branches[targetBranch]; !ok {
		return "", errors.NewBranchNotFoundError(targetBranch)
	}

	sourceIDs := r.branchCommitIDs(sourceBranch)
	targetIDs := r.branchCommitIDs(targetBranch)
	onTarget := make(map[string]bool, len(targetIDs))
	for _, id := range targetIDs {
		onTarget[id] = true
	}

	var unique []string
	for _, id := range sourceIDs {
		if !onTarget[id] {
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return "", errors.ErrNoChanges
	}

	modified := make(map[string]struct{})
	for _, id := range unique {
		for path := range r.commits[id].Changes {
			modified[path] = struct{}{}
		}
	}

	r.prs.counter++
	id := fmt.Sprintf("PR-%d", r.prs.counter)
	pr := &PullRequest{
		ID:            id,
		Title:         title,
		Description:   description,
		Author:        author,
		CreatedAt:     r.now(),
		SourceBranch:  sourceBranch,
		TargetBranch:  targetBranch,
		CommitIDs:     unique,
		ModifiedFiles: modified,
		Reviewers:     make(map[string]struct{}),
		Tags:          make(map[string]struct{}),
		Status:        PROpen,
	}
	r.prs.order = append(r.prs.order, pr)
	r.prs.byID[id] = pr

	return id, nil
}

// GetPullRequest returns a copy of the pull request with the given id.
func (r *Repository) GetPullRequest(id string) (PullRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pr, ok := r.prs.byID[id]
	if !ok {
		return PullRequest{}, errors.NewPullRequestNotFoundError(id)
	}
	return pr.clone(), nil
}

// ReviewPullRequest adds reviewer to an open pull request. Reviewers form a
// set; adding the same identity twice is a no-op.
func (r *Repository) ReviewPullRequest(id, reviewer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pr, err := r.prs.openPR(id)
	if err != nil {
		return err
	}
	pr.Reviewers[reviewer] = struct{}{}
	return nil
}

// ApprovePullRequest moves an open pull request to approved.
func (r *Repository) ApprovePullRequest(id string) error {
	return r.closePullRequest(id, PRApproved)
}

// RejectPullRequest moves an open pull request to rejected.
func (r *Repository) RejectPullRequest(id string) error {
	return r.closePullRequest(id, PRRejected)
}

// CancelPullRequest moves an open pull request to cancelled.
func (r *Repository) CancelPullRequest(id string) error {
	return r.closePullRequest(id, PRCancelled)
}

// closePullRequest applies one of the terminal statuses and records the
// closing time. Each pull request transitions at most once.
func (r *Repository) closePullRequest(id string, status PRStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pr, err := r.prs.openPR(id)
	if err != nil {
		return err
	}
	pr.Status = status
	closed := r.now()
	pr.ClosedAt = &closed
	return nil
}

// TagPullRequest adds tag to the pull request's tag set. Unlike the status
// transitions, tagging is allowed in any status.
func (r *Repository) TagPullRequest(id, tag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pr, ok := r.prs.byID[id]
	if !ok {
		return errors.NewPullRequestNotFoundError(id)
	}
	pr.Tags[tag] = struct{}{}
	return nil
}

// PullRequests returns copies of all pull requests in arrival order.
func (r *Repository) PullRequests() []PullRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]PullRequest, 0, len(r.prs.order))
	for _, pr := range r.prs.order {
		out = append(out, pr.clone())
	}
	return out
}

// NextPullRequest returns, without removing, the oldest pull request still
// tracked. Resolved pull requests stay at the front until cleared.
func (r *Repository) NextPullRequest() (PullRequest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.prs.order) == 0 {
		return PullRequest{}, false
	}
	return r.prs.order[0].clone(), true
}

// ClearPullRequests removes all pull requests. The id counter is not reset,
// keeping ids unique across clears.
func (r *Repository) ClearPullRequests() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prs.order = nil
	r.prs.byID = make(map[string]*PullRequest)
}
