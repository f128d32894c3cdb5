package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pivot/pkg/types"
)

// setupRepository opens a repository on a fresh database file and schedules
// its close.
func setupRepository(t *testing.T) *Repository {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "pivot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pivot.db")

	r, err := Open(path)
	require.NoError(t, err)

	projectID, err := r.AddProject("admin")
	require.NoError(t, err)
	require.NoError(t, r.Close())

	// Reopening must recreate nothing and destroy nothing.
	r, err = Open(path)
	require.NoError(t, err)
	defer r.Close()

	project, err := r.GetProjectByID(projectID)
	require.NoError(t, err)
	assert.Equal(t, "admin", project.Name)

	view, err := r.GetActiveViewForProject(project)
	require.NoError(t, err)
	assert.Equal(t, "view", view.Name)
}

func TestCloseIsIdempotent(t *testing.T) {
	r, err := Open(filepath.Join(t.TempDir(), "pivot.db"))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{name: "unique violation", msg: "constraint failed: UNIQUE constraint failed: projects.name (2067)", want: types.ErrDuplicateName},
		{name: "foreign key violation", msg: "constraint failed: FOREIGN KEY constraint failed (787)", want: types.ErrConstraintViolation},
		{name: "busy", msg: "database is locked (5) (SQLITE_BUSY)", want: types.ErrStoreUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(errors.New(tt.msg))
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unrecognized errors pass through", func(t *testing.T) {
		err := errors.New("disk I/O error")
		assert.Equal(t, err, classify(err))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, classify(nil))
	})
}
