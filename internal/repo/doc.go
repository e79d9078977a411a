// Package repo implements the in-memory repository state machine.
//
// It is the core of simgit, responsible for:
//   - The append-only commit graph and its parent links
//   - The staging area and working directory snapshot
//   - Branch pointers, checkout and detached-head state
//   - The pull request lifecycle and arrival queue
//
// A Repository is the unit of mutual exclusion: mutating operations take a
// write lock, reads take a read lock. Nothing outside this package holds a
// reference into the repository's maps.
package repo
