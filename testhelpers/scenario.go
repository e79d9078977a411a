// Package testhelpers provides a high-level test scenario with a terse,
// chainable API for driving a repository through multi-step flows.
package testhelpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"simgit.dev/simgit/internal/repo"
)

// Clock is a deterministic time source. Every call advances it by one
// second so consecutive commits get distinct ids.
type Clock struct {
	t time.Time
}

// NewClock creates a clock starting at a fixed instant.
func NewClock() *Clock {
	return &Clock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the next tick.
func (c *Clock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

// Scenario wraps a repository with helpers that fail the test on error, so
// test bodies read as the flow under test plus its assertions.
type Scenario struct {
	T     *testing.T
	Repo  *repo.Repository
	Clock *Clock
}

// NewScenario creates a fresh repository on a deterministic clock.
func NewScenario(t *testing.T) *Scenario {
	t.Helper()
	clock := NewClock()
	return &Scenario{
		T:     t,
		Repo:  repo.New("test", "/tmp/test", repo.WithClock(clock.Now)),
		Clock: clock,
	}
}

// Stage stages path with content.
func (s *Scenario) Stage(path, content string) *Scenario {
	s.T.Helper()
	s.Repo.Add(path, content)
	return s
}

// Commit commits the staged changes and records nothing; use CommitID when
// the id matters.
func (s *Scenario) Commit(message string) *Scenario {
	s.T.Helper()
	s.CommitID(message)
	return s
}

// CommitID commits the staged changes and returns the new commit id.
func (s *Scenario) CommitID(message string) string {
	s.T.Helper()
	id, err := s.Repo.Commit(message, "test@example.com")
	require.NoError(s.T, err)
	return id
}

// CreateBranch creates a branch at the current head.
func (s *Scenario) CreateBranch(name string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Repo.Branch(name))
	return s
}

// Checkout switches to a branch.
func (s *Scenario) Checkout(name string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Repo.Checkout(name))
	return s
}

// ChangeAndCommit stages one file and commits it in a single step.
func (s *Scenario) ChangeAndCommit(path, content, message string) *Scenario {
	s.T.Helper()
	return s.Stage(path, content).Commit(message)
}

// CreatePR opens a pull request and returns its id.
func (s *Scenario) CreatePR(title, source, target string) string {
	s.T.Helper()
	id, err := s.Repo.CreatePullRequest(title, "", source, target, "test@example.com")
	require.NoError(s.T, err)
	return id
}
