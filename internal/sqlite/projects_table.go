// Projects table accessor: creation, lookup, and listing.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/pivot/pkg/types"
)

// AddProject creates a project plus its default view at position 0 and
// points active_view_id at that view. All three writes run in one
// transaction; a failure on any step (typically a duplicate name) rolls the
// whole thing back, leaving no partial project behind.
func (r *Repository) AddProject(name string) (int64, error) {
	if err := types.ValidateName(name); err != nil {
		return 0, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, classify(err)
	}
	defer tx.Rollback()

	// Placeholder active pointer; the deferred foreign key lets the real
	// view id land before commit.
	res, err := tx.Exec(
		"INSERT INTO projects (name, active_view_id) VALUES (?, ?)",
		name, 0,
	)
	if err != nil {
		return 0, fmt.Errorf("insert project %q: %w", name, classify(err))
	}
	projectID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	res, err = tx.Exec(
		"INSERT INTO views (name, project_id, position) VALUES (?, ?, 0)",
		defaultViewName, projectID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert default view: %w", classify(err))
	}
	viewID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(
		"UPDATE projects SET active_view_id = ? WHERE id = ?",
		viewID, projectID,
	); err != nil {
		return 0, fmt.Errorf("set active view: %w", classify(err))
	}

	if err := tx.Commit(); err != nil {
		return 0, classify(err)
	}
	return projectID, nil
}

// GetProjectByID resolves a project id.
func (r *Repository) GetProjectByID(id int64) (*types.Project, error) {
	row := r.db.QueryRow(
		"SELECT id, name, active_view_id FROM projects WHERE id = ?", id,
	)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %d: %w", id, types.ErrProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, classify(err))
	}
	return project, nil
}

// GetProjectByName resolves a project name.
func (r *Repository) GetProjectByName(name string) (*types.Project, error) {
	row := r.db.QueryRow(
		"SELECT id, name, active_view_id FROM projects WHERE name = ?", name,
	)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %q: %w", name, types.ErrProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project %q: %w", name, classify(err))
	}
	return project, nil
}

// ListProjects returns all projects ordered by creation id ascending.
func (r *Repository) ListProjects() ([]*types.Project, error) {
	rows, err := r.db.Query(
		"SELECT id, name, active_view_id FROM projects ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", classify(err))
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.ActiveViewID); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", classify(err))
	}
	return projects, nil
}

// rowScanner is the subset of *sql.Row and *sql.Rows the scan helpers need.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*types.Project, error) {
	var p types.Project
	if err := row.Scan(&p.ID, &p.Name, &p.ActiveViewID); err != nil {
		return nil, err
	}
	return &p, nil
}
