package repo

import "slices"

// StagingArea is an ordered, duplicate-free collection of pending file
// changes keyed by path. Re-staging a path replaces the prior entry and
// moves it to the back of the order.
type StagingArea struct {
	entries []StagedFile
	index   map[string]int
}

// NewStagingArea creates an empty staging area.
func NewStagingArea() *StagingArea {
	return &StagingArea{index: make(map[string]int)}
}

// Stage inserts or replaces the entry for file.Path.
func (s *StagingArea) Stage(file StagedFile) {
	if i, ok := s.index[file.Path]; ok {
		s.entries = slices.Delete(s.entries, i, i+1)
		for j := i; j < len(s.entries); j++ {
			s.index[s.entries[j].Path] = j
		}
	}
	s.index[file.Path] = len(s.entries)
	s.entries = append(s.entries, file)
}

// Snapshot returns a copy of all staged entries in staging order.
func (s *StagingArea) Snapshot() []StagedFile {
	return slices.Clone(s.entries)
}

// Contains reports whether path is currently staged.
func (s *StagingArea) Contains(path string) bool {
	_, ok := s.index[path]
	return ok
}

// Len returns the number of staged entries.
func (s *StagingArea) Len() int {
	return len(s.entries)
}

// Clear empties the staging area.
func (s *StagingArea) Clear() {
	s.entries = nil
	s.index = make(map[string]int)
}
