// Views table accessor: append, active-view management, ordered navigation,
// and display-name resolution.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/pivot/pkg/types"
)

// AddViewToProject appends a view at max(position)+1 and makes it the
// project's active view. The read-max, insert, and active-pointer update
// share one transaction, whose write lock serializes concurrent appends to
// the same project.
func (r *Repository) AddViewToProject(project *types.Project, name string) (*types.View, error) {
	if err := types.ValidateName(name); err != nil {
		return nil, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow("SELECT 1 FROM projects WHERE id = ?", project.ID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %d: %w", project.ID, types.ErrProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("check project %d: %w", project.ID, classify(err))
	}

	var position int64
	err = tx.QueryRow(
		"SELECT COALESCE(MAX(position) + 1, 0) FROM views WHERE project_id = ?",
		project.ID,
	).Scan(&position)
	if err != nil {
		return nil, fmt.Errorf("next position: %w", classify(err))
	}

	res, err := tx.Exec(
		"INSERT INTO views (name, project_id, position) VALUES (?, ?, ?)",
		name, project.ID, position,
	)
	if err != nil {
		return nil, fmt.Errorf("insert view %q: %w", name, classify(err))
	}
	viewID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		"UPDATE projects SET active_view_id = ? WHERE id = ?",
		viewID, project.ID,
	); err != nil {
		return nil, fmt.Errorf("set active view: %w", classify(err))
	}

	if err := tx.Commit(); err != nil {
		return nil, classify(err)
	}

	project.ActiveViewID = viewID
	return &types.View{
		ID:        viewID,
		Name:      name,
		ProjectID: project.ID,
		Position:  position,
	}, nil
}

// GetActiveViewForProject resolves the project's active view pointer.
// A missing row means the store is corrupted; surfaced as ErrNoActiveView.
func (r *Repository) GetActiveViewForProject(project *types.Project) (*types.View, error) {
	row := r.db.QueryRow(
		"SELECT id, name, project_id, position FROM views WHERE id = ?",
		project.ActiveViewID,
	)
	view, err := scanView(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %q: %w", project.Name, types.ErrNoActiveView)
	}
	if err != nil {
		return nil, fmt.Errorf("get active view: %w", classify(err))
	}
	return view, nil
}

// SetActiveViewForProject makes view the project's active view. Every view
// switch funnels through here, so the active-view invariant cannot be
// broken from outside: a view belonging to a different project is rejected
// before any write.
func (r *Repository) SetActiveViewForProject(project *types.Project, view *types.View) (*types.View, error) {
	if view.ProjectID != project.ID {
		return nil, fmt.Errorf("view %q belongs to project %d, not %d: %w",
			view.Name, view.ProjectID, project.ID, types.ErrViewNotInProject)
	}

	res, err := r.db.Exec(
		"UPDATE projects SET active_view_id = ? WHERE id = ?",
		view.ID, project.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("set active view: %w", classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("project %d: %w", project.ID, types.ErrProjectNotFound)
	}

	project.ActiveViewID = view.ID
	return view, nil
}

// GetNextViewForProject returns the view with the smallest position above
// the active one, wrapping to the lowest position at the end of the cycle.
// Read-only; the caller commits via SetActiveViewForProject.
func (r *Repository) GetNextViewForProject(project *types.Project) (*types.View, error) {
	active, err := r.GetActiveViewForProject(project)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(
		`SELECT id, name, project_id, position FROM views
         WHERE project_id = ? AND position > ?
         ORDER BY position ASC LIMIT 1`,
		project.ID, active.Position,
	)
	view, err := scanView(row)
	if err == sql.ErrNoRows {
		return r.viewAtEdge(project, "ASC")
	}
	if err != nil {
		return nil, fmt.Errorf("next view: %w", classify(err))
	}
	return view, nil
}

// GetPrevViewForProject returns the view with the largest position below
// the active one, wrapping to the highest position at the start of the
// cycle. Read-only; the caller commits via SetActiveViewForProject.
func (r *Repository) GetPrevViewForProject(project *types.Project) (*types.View, error) {
	active, err := r.GetActiveViewForProject(project)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(
		`SELECT id, name, project_id, position FROM views
         WHERE project_id = ? AND position < ?
         ORDER BY position DESC LIMIT 1`,
		project.ID, active.Position,
	)
	view, err := scanView(row)
	if err == sql.ErrNoRows {
		return r.viewAtEdge(project, "DESC")
	}
	if err != nil {
		return nil, fmt.Errorf("prev view: %w", classify(err))
	}
	return view, nil
}

// viewAtEdge returns the view at the lowest (ASC) or highest (DESC)
// position of a project, for the wrap-around case of the cycle.
func (r *Repository) viewAtEdge(project *types.Project, order string) (*types.View, error) {
	row := r.db.QueryRow(
		"SELECT id, name, project_id, position FROM views WHERE project_id = ? ORDER BY position "+order+" LIMIT 1",
		project.ID,
	)
	view, err := scanView(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %q: %w", project.Name, types.ErrNoViewsInProject)
	}
	if err != nil {
		return nil, fmt.Errorf("wrap view: %w", classify(err))
	}
	return view, nil
}

// GetViewByName resolves a view by name within a project.
func (r *Repository) GetViewByName(project *types.Project, name string) (*types.View, error) {
	row := r.db.QueryRow(
		"SELECT id, name, project_id, position FROM views WHERE project_id = ? AND name = ?",
		project.ID, name,
	)
	view, err := scanView(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("view %q in project %q: %w", name, project.Name, types.ErrViewNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get view %q: %w", name, classify(err))
	}
	return view, nil
}

// ListViewsForProject returns the project's views in position order.
func (r *Repository) ListViewsForProject(project *types.Project) ([]*types.View, error) {
	rows, err := r.db.Query(
		"SELECT id, name, project_id, position FROM views WHERE project_id = ? ORDER BY position ASC",
		project.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("list views: %w", classify(err))
	}
	defer rows.Close()

	var views []*types.View
	for rows.Next() {
		var v types.View
		if err := rows.Scan(&v.ID, &v.Name, &v.ProjectID, &v.Position); err != nil {
			return nil, fmt.Errorf("scan view: %w", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list views: %w", classify(err))
	}
	return views, nil
}

// GetWindowManagerDisplayName encodes a view and its owning project into
// the opaque workspace name the window host understands.
func (r *Repository) GetWindowManagerDisplayName(view *types.View) (string, error) {
	var projectName string
	err := r.db.QueryRow(
		"SELECT name FROM projects WHERE id = ?", view.ProjectID,
	).Scan(&projectName)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("project %d: %w", view.ProjectID, types.ErrProjectNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("display name: %w", classify(err))
	}
	return types.EncodeDisplayName(projectName, view.Name)
}

// GetViewForDisplayName decodes a workspace name and resolves the project
// and view it names. Both lookup misses collapse to ErrViewNotFound: the
// caller cannot tell "no such view" apart from "not managed by this
// repository" and must treat them the same.
func (r *Repository) GetViewForDisplayName(displayName string) (*types.Project, *types.View, error) {
	projectName, viewName, err := types.ParseDisplayName(displayName)
	if err != nil {
		return nil, nil, err
	}

	project, err := r.GetProjectByName(projectName)
	if err != nil {
		return nil, nil, fmt.Errorf("display name %q: %w", displayName, types.ErrViewNotFound)
	}

	view, err := r.GetViewByName(project, viewName)
	if err != nil {
		return nil, nil, fmt.Errorf("display name %q: %w", displayName, types.ErrViewNotFound)
	}

	return project, view, nil
}

func scanView(row rowScanner) (*types.View, error) {
	var v types.View
	if err := row.Scan(&v.ID, &v.Name, &v.ProjectID, &v.Position); err != nil {
		return nil, err
	}
	return &v, nil
}
