// Package runtime provides a context type that holds the registry, config
// and logger for use throughout the application. This avoids passing
// multiple parameters.
package runtime

import (
	"os"

	"simgit.dev/simgit/internal/config"
	"simgit.dev/simgit/internal/output"
	"simgit.dev/simgit/internal/registry"
)

// FileReader supplies file content to the add command. It is the only point
// where the CLI touches the filesystem on behalf of a repository.
type FileReader func(path string) ([]byte, error)

// Context provides access to the repository registry, the command gate and
// output for commands.
type Context struct {
	Manager  *registry.Manager
	Config   *config.Config
	Splog    *output.Splog
	ReadFile FileReader

	// Author is the identity recorded on commits and pull requests.
	Author string
}

// NewContext creates a context with a fresh registry and the given config.
func NewContext(cfg *config.Config) *Context {
	return &Context{
		Manager:  registry.NewManager(),
		Config:   cfg,
		Splog:    output.NewSplog(),
		ReadFile: os.ReadFile,
		Author:   defaultAuthor(),
	}
}

// IsNonInteractive reports whether prompts should be suppressed.
func IsNonInteractive() bool {
	return os.Getenv("SIMGIT_NON_INTERACTIVE") != ""
}

func defaultAuthor() string {
	if author := os.Getenv("SIMGIT_AUTHOR"); author != "" {
		return author
	}
	return "user@example.com"
}
