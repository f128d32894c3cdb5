// Package integration exercises the repository end to end against a real
// database file, the way a sequence of CLI invocations would.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pivot/internal/sqlite"
	"github.com/mesh-intelligence/pivot/pkg/types"
)

func TestAdminPinLifecycle(t *testing.T) {
	repo, err := sqlite.Open(filepath.Join(t.TempDir(), "pivot.db"))
	require.NoError(t, err)
	defer repo.Close()

	// Create project "admin"; it gets a default view "view" at position 0.
	projectID, err := repo.AddProject("admin")
	require.NoError(t, err)
	project, err := repo.GetProjectByID(projectID)
	require.NoError(t, err)
	view, err := repo.GetActiveViewForProject(project)
	require.NoError(t, err)
	assert.Equal(t, "view", view.Name)
	assert.Equal(t, int64(0), view.Position)

	// The host sees it as "admin#view".
	displayName, err := repo.GetWindowManagerDisplayName(view)
	require.NoError(t, err)
	assert.Equal(t, "admin#view", displayName)

	// Pin it to "g" and recall it.
	require.NoError(t, repo.SetPin("g", view))
	recalled, err := repo.GetViewForPinKey("g")
	require.NoError(t, err)
	assert.Equal(t, view.ID, recalled.ID)

	// Clear the pin; lookup now misses.
	require.NoError(t, repo.ClearPin("g"))
	_, err = repo.GetViewForPinKey("g")
	assert.ErrorIs(t, err, types.ErrPinNotFound)
}

func TestDevViewAppendLifecycle(t *testing.T) {
	repo, err := sqlite.Open(filepath.Join(t.TempDir(), "pivot.db"))
	require.NoError(t, err)
	defer repo.Close()

	projectID, err := repo.AddProject("dev")
	require.NoError(t, err)
	project, err := repo.GetProjectByID(projectID)
	require.NoError(t, err)

	// Appending "b" lands at position 1 and takes over as active view.
	added, err := repo.AddViewToProject(project, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), added.Position)

	active, err := repo.GetActiveViewForProject(project)
	require.NoError(t, err)
	assert.Equal(t, "b", active.Name)

	// Cycling forward from "b" wraps to "view", and back again.
	next, err := repo.GetNextViewForProject(project)
	require.NoError(t, err)
	assert.Equal(t, "view", next.Name)

	_, err = repo.SetActiveViewForProject(project, next)
	require.NoError(t, err)

	prev, err := repo.GetPrevViewForProject(project)
	require.NoError(t, err)
	assert.Equal(t, "b", prev.Name)
}

func TestStateSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pivot.db")

	repo, err := sqlite.Open(dbPath)
	require.NoError(t, err)

	projectID, err := repo.AddProject("ref")
	require.NoError(t, err)
	project, err := repo.GetProjectByID(projectID)
	require.NoError(t, err)
	view, err := repo.AddViewToProject(project, "papers")
	require.NoError(t, err)
	require.NoError(t, repo.SetPin("d", view))
	require.NoError(t, repo.Close())

	// A fresh invocation sees the same hierarchy and pins.
	repo, err = sqlite.Open(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	gotProject, gotView, err := repo.GetViewForDisplayName("ref#papers")
	require.NoError(t, err)
	assert.Equal(t, projectID, gotProject.ID)
	assert.Equal(t, view.ID, gotView.ID)

	recalled, err := repo.GetViewForPinKey("d")
	require.NoError(t, err)
	assert.Equal(t, view.ID, recalled.ID)

	key, err := repo.GetPinKeyForView(recalled)
	require.NoError(t, err)
	assert.Equal(t, "d", key)
}
