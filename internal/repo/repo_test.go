package repo_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"simgit.dev/simgit/internal/errors"
	"simgit.dev/simgit/internal/repo"
	"simgit.dev/simgit/testhelpers"
)

func TestAdd(t *testing.T) {
	t.Run("first stage of a path is added", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.Stage("a.txt", "1")

		status := s.Repo.Status()
		require.Len(t, status, 1)
		require.Equal(t, repo.StateAdded, status[0].State)
	})

	t.Run("staging over a changed head file is modified", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.ChangeAndCommit("a.txt", "1", "first")
		s.Stage("a.txt", "2")

		status := s.Repo.Status()
		require.Equal(t, repo.StateModified, status[0].State)
		require.Equal(t, "2", status[0].Content)
	})

	t.Run("re-adding unchanged content still stages a fresh entry", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.ChangeAndCommit("a.txt", "1", "first")
		s.Stage("a.txt", "1")

		status := s.Repo.Status()
		require.Len(t, status, 1)
		require.Equal(t, repo.StateAdded, status[0].State)
	})

	t.Run("re-staging a path replaces the prior entry", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.Stage("a.txt", "1").Stage("a.txt", "2")

		status := s.Repo.Status()
		require.Len(t, status, 1)
		require.Equal(t, "2", status[0].Content)
	})
}

func TestCommit(t *testing.T) {
	t.Run("advances head and the current branch pointer", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		id := s.Stage("a.txt", "1").CommitID("first")

		require.Equal(t, id, s.Repo.Head())
		history := s.Repo.Log()
		require.Len(t, history, 1)
		require.Equal(t, id, history[0].ID)
		require.Empty(t, history[0].Parent)
		require.Equal(t, repo.DefaultBranch, history[0].Branch)
	})

	t.Run("clears staging", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.ChangeAndCommit("a.txt", "1", "first")

		// a.txt remains in the working directory, unstaged.
		status := s.Repo.Status()
		require.Len(t, status, 1)
		require.Equal(t, repo.StateNew, status[0].State)
	})

	t.Run("fails on empty staging without mutating anything", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		_, err := s.Repo.Commit("empty", "test@example.com")
		require.ErrorIs(t, err, errors.ErrNothingStaged)
		require.Empty(t, s.Repo.Head())
		require.Empty(t, s.Repo.Log())
	})

	t.Run("snapshot contains only staged paths", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.ChangeAndCommit("a.txt", "1", "first")
		id := s.Stage("b.txt", "2").CommitID("second")

		c, err := s.Repo.GetCommit(id)
		require.NoError(t, err)
		require.Equal(t, map[string]string{"b.txt": "2"}, c.Changes)
	})

	t.Run("identical inputs at the same instant are rejected as duplicates", func(t *testing.T) {
		fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		r := repo.New("test", "/tmp/test", repo.WithClock(func() time.Time { return fixed }))

		r.Add("a.txt", "1")
		base, err := r.Commit("first", "test@example.com")
		require.NoError(t, err)

		// Two branches rooted at the same commit, committing the same
		// change at the same instant, derive the same id.
		require.NoError(t, r.Branch("left"))
		require.NoError(t, r.Checkout("left"))
		r.Add("b.txt", "2")
		_, err = r.Commit("second", "test@example.com")
		require.NoError(t, err)

		require.NoError(t, r.Checkout(repo.DefaultBranch))
		require.Equal(t, base, r.Head())
		require.NoError(t, r.Branch("right"))
		require.NoError(t, r.Checkout("right"))
		r.Add("b.txt", "2")
		_, err = r.Commit("second", "test@example.com")
		require.ErrorIs(t, err, errors.ErrDuplicateCommit)
	})

	t.Run("deterministic ids under a fixed clock", func(t *testing.T) {
		fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		newRepo := func() *repo.Repository {
			return repo.New("test", "/tmp/test", repo.WithClock(func() time.Time { return fixed }))
		}

		r1 := newRepo()
		r1.Add("a.txt", "1")
		id1, err := r1.Commit("first", "test@example.com")
		require.NoError(t, err)

		r2 := newRepo()
		r2.Add("a.txt", "1")
		id2, err := r2.Commit("first", "test@example.com")
		require.NoError(t, err)

		require.Equal(t, id1, id2)
	})
}

func TestBranch(t *testing.T) {
	t.Run("captures the current head", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		first := s.Stage("a.txt", "1").CommitID("first")
		s.CreateBranch("feature")
		s.ChangeAndCommit("a.txt", "2", "second")

		// The branch stays where it was created.
		s.Checkout("feature")
		require.Equal(t, first, s.Repo.Head())
		require.Empty(t, s.Repo.Status())
	})

	t.Run("may point at no commit on a fresh repository", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.CreateBranch("feature").Checkout("feature")
		require.Empty(t, s.Repo.Head())
		require.Empty(t, s.Repo.Log())
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.CreateBranch("feature")
		require.ErrorIs(t, s.Repo.Branch("feature"), errors.ErrBranchExists)
	})

	t.Run("lists names in order with the default present", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.CreateBranch("zeta").CreateBranch("alpha")
		require.Equal(t, []string{"alpha", "main", "zeta"}, s.Repo.ListBranches())
	})
}

func TestCheckout(t *testing.T) {
	t.Run("rebuilds the working directory from the branch commit", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.ChangeAndCommit("a.txt", "1", "first")
		s.CreateBranch("feature").Checkout("feature")
		s.ChangeAndCommit("a.txt", "2", "second")

		s.Checkout(repo.DefaultBranch)
		status := s.Repo.Status()
		require.Len(t, status, 1)
		require.Equal(t, "1", status[0].Content)
	})

	t.Run("empties the working directory for a commitless branch", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.CreateBranch("feature")
		s.ChangeAndCommit("a.txt", "1", "first")

		s.Checkout("feature")
		require.Empty(t, s.Repo.Status())
		require.Empty(t, s.Repo.Head())
	})

	t.Run("fails for an unknown branch", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		require.ErrorIs(t, s.Repo.Checkout("nope"), errors.ErrBranchNotFound)
	})

	t.Run("refuses to discard staged changes", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.CreateBranch("feature")
		s.Stage("a.txt", "1")

		require.ErrorIs(t, s.Repo.Checkout("feature"), errors.ErrUncommittedChanges)

		// The staged entry survives the refused checkout.
		require.Equal(t, repo.DefaultBranch, s.Repo.CurrentBranch())
		status := s.Repo.Status()
		require.Len(t, status, 1)
		require.Equal(t, repo.StateAdded, status[0].State)
	})
}

func TestCheckoutCommit(t *testing.T) {
	t.Run("detaches head without moving branch pointers", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		first := s.Stage("a.txt", "1").CommitID("first")
		second := s.ChangeAndCommit("a.txt", "2", "second").Repo.Head()

		require.NoError(t, s.Repo.CheckoutCommit(first))
		require.True(t, s.Repo.Detached())
		require.Equal(t, first, s.Repo.Head())

		// Commits made while detached do not advance the branch.
		s.ChangeAndCommit("b.txt", "3", "detached work")
		s.Checkout(repo.DefaultBranch)
		require.False(t, s.Repo.Detached())
		require.Equal(t, second, s.Repo.Head())
	})

	t.Run("fails for an unknown commit", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		require.ErrorIs(t, s.Repo.CheckoutCommit("nope"), errors.ErrCommitNotFound)
	})

	t.Run("refuses to discard staged changes", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		first := s.Stage("a.txt", "1").CommitID("first")
		s.Stage("b.txt", "2")
		require.ErrorIs(t, s.Repo.CheckoutCommit(first), errors.ErrUncommittedChanges)
	})
}

func TestStatus(t *testing.T) {
	t.Run("staged rows precede unstaged working files", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.ChangeAndCommit("old.txt", "0", "first")
		s.Stage("new.txt", "1")

		status := s.Repo.Status()
		require.Len(t, status, 2)
		require.Equal(t, "new.txt", status[0].Path)
		require.Equal(t, repo.StateAdded, status[0].State)
		require.Equal(t, "old.txt", status[1].Path)
		require.Equal(t, repo.StateNew, status[1].State)
	})

	t.Run("empty on a fresh repository", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		require.Empty(t, s.Repo.Status())
	})
}

func TestLog(t *testing.T) {
	t.Run("walks parent links newest first", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		first := s.Stage("a.txt", "1").CommitID("first")
		second := s.Stage("a.txt", "2").CommitID("second")
		third := s.Stage("a.txt", "3").CommitID("third")

		history := s.Repo.Log()
		require.Len(t, history, 3)
		require.Equal(t, []string{third, second, first}, []string{history[0].ID, history[1].ID, history[2].ID})
		require.Equal(t, second, history[0].Parent)
		require.Equal(t, first, history[1].Parent)
		require.Empty(t, history[2].Parent)
	})

	t.Run("step count equals lineage depth per branch", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.ChangeAndCommit("a.txt", "1", "one").
			ChangeAndCommit("a.txt", "2", "two")
		s.CreateBranch("feature").Checkout("feature")
		s.ChangeAndCommit("a.txt", "3", "three")

		require.Len(t, s.Repo.Log(), 3)
		s.Checkout(repo.DefaultBranch)
		require.Len(t, s.Repo.Log(), 2)
	})

	t.Run("handed-out commits are copies", func(t *testing.T) {
		s := testhelpers.NewScenario(t)
		s.ChangeAndCommit("a.txt", "1", "first")

		s.Repo.Log()[0].Changes["a.txt"] = "mutated"
		require.Equal(t, "1", s.Repo.Log()[0].Changes["a.txt"])
	})
}

// The end-to-end flow: feature branch work ends up in a pull request whose
// unique commits and touched files are exactly the feature-branch delta.
func TestFeatureBranchFlow(t *testing.T) {
	s := testhelpers.NewScenario(t)
	s.ChangeAndCommit("a.txt", "1", "first")
	s.CreateBranch("feature").Checkout("feature")
	second := s.Stage("a.txt", "2").CommitID("second")

	id, err := s.Repo.CreatePullRequest("update a", "bump content", "feature", repo.DefaultBranch, "dev@example.com")
	require.NoError(t, err)

	pr, err := s.Repo.GetPullRequest(id)
	require.NoError(t, err)
	require.Equal(t, []string{second}, pr.CommitIDs)
	require.Equal(t, map[string]struct{}{"a.txt": {}}, pr.ModifiedFiles)
	require.Equal(t, "feature", pr.SourceBranch)
	require.Equal(t, repo.DefaultBranch, pr.TargetBranch)
}

func TestErrorKindsAreDistinguishable(t *testing.T) {
	s := testhelpers.NewScenario(t)

	err := s.Repo.Checkout("missing")
	var notFound *errors.BranchNotFoundError
	require.True(t, stderrors.As(err, &notFound))
	require.Equal(t, "missing", notFound.BranchName)
}
