package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		require.Equal(t, Checksum("hello"), Checksum("hello"))
	})

	t.Run("differs for different content", func(t *testing.T) {
		require.NotEqual(t, Checksum("hello"), Checksum("hello "))
	})
}

func TestCommitID(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	changes := map[string]string{"a.txt": "1", "b.txt": "2"}

	base := commitID("first", "dev@example.com", "", ts, changes)

	t.Run("identical inputs produce identical ids", func(t *testing.T) {
		require.Equal(t, base, commitID("first", "dev@example.com", "", ts, map[string]string{"b.txt": "2", "a.txt": "1"}))
	})

	t.Run("changing any input changes the id", func(t *testing.T) {
		require.NotEqual(t, base, commitID("second", "dev@example.com", "", ts, changes))
		require.NotEqual(t, base, commitID("first", "other@example.com", "", ts, changes))
		require.NotEqual(t, base, commitID("first", "dev@example.com", "parent", ts, changes))
		require.NotEqual(t, base, commitID("first", "dev@example.com", "", ts.Add(time.Nanosecond), changes))
		require.NotEqual(t, base, commitID("first", "dev@example.com", "", ts, map[string]string{"a.txt": "1", "b.txt": "3"}))
	})
}
