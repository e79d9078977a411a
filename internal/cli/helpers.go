package cli

import (
	"simgit.dev/simgit/internal/repo"
	"simgit.dev/simgit/internal/runtime"
)

// requireRepo returns the currently selected repository or the registry's
// no-selection error for the caller to surface.
func requireRepo(ctx *runtime.Context) (*repo.Repository, error) {
	return ctx.Manager.Current()
}
