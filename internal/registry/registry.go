// Package registry tracks the repositories known to a session and which one
// commands operate on when no explicit target is given.
package registry

import (
	"sync"

	"simgit.dev/simgit/internal/errors"
	"simgit.dev/simgit/internal/repo"
)

// Manager owns an ordered collection of repositories plus the current
// selection. Creating a repository selects it.
type Manager struct {
	mu      sync.Mutex
	repos   []*repo.Repository
	current *repo.Repository
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{}
}

// Create registers a new repository and makes it the current selection.
func (m *Manager) Create(name, path string, opts ...repo.Option) *repo.Repository {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := repo.New(name, path, opts...)
	m.repos = append(m.repos, r)
	m.current = r
	return r
}

// Current returns the selected repository, or ErrNoRepository when the
// session has none selected.
func (m *Manager) Current() (*repo.Repository, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, errors.ErrNoRepository
	}
	return m.current, nil
}

// Switch selects the repository with the given name.
func (m *Manager) Switch(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.repos {
		if r.Name() == name {
			m.current = r
			return nil
		}
	}
	return errors.NewRepositoryNotFoundError(name)
}

// List returns the registered repository names in registration order.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.repos))
	for _, r := range m.repos {
		names = append(names, r.Name())
	}
	return names
}

// Delete removes the repository with the given name. Deleting the current
// selection leaves the session with no repository selected.
func (m *Manager) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.repos {
		if r.Name() == name {
			m.repos = append(m.repos[:i], m.repos[i+1:]...)
			if m.current == r {
				m.current = nil
			}
			return nil
		}
	}
	return errors.NewRepositoryNotFoundError(name)
}
