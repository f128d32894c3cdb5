// Shared helpers for pivot CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/pivot/internal/i3"
	"github.com/mesh-intelligence/pivot/internal/sqlite"
	"github.com/mesh-intelligence/pivot/pkg/types"
)

// openRepository resolves the database path, creates its parent directory
// if needed, and opens the repository. The caller must defer Close.
func openRepository() (*sqlite.Repository, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	repo, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return repo, nil
}

// newWindowHost returns the window host for the current session.
func newWindowHost() types.WindowHost {
	return i3.New()
}

// currentProject resolves the project owning the currently focused
// workspace. Fails when the focused workspace is not managed by pivot.
func currentProject(repo *sqlite.Repository, host types.WindowHost) (*types.Project, error) {
	name, err := host.ActiveWorkspaceName()
	if err != nil {
		return nil, err
	}
	project, _, err := repo.GetViewForDisplayName(name)
	if err != nil {
		return nil, fmt.Errorf("focused workspace %q is not managed by pivot: %w", name, err)
	}
	return project, nil
}

// targetProject resolves --project when given, the focused workspace's
// project otherwise.
func targetProject(repo *sqlite.Repository, host types.WindowHost, projectFlag string) (*types.Project, error) {
	if projectFlag != "" {
		return repo.GetProjectByName(projectFlag)
	}
	return currentProject(repo, host)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// focusView commits view as its project's active view and focuses the
// corresponding workspace on the host.
func focusView(repo *sqlite.Repository, host types.WindowHost, project *types.Project, view *types.View) error {
	if _, err := repo.SetActiveViewForProject(project, view); err != nil {
		return err
	}
	displayName, err := repo.GetWindowManagerDisplayName(view)
	if err != nil {
		return err
	}
	return host.Focus(displayName)
}
