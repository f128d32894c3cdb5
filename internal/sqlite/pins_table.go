// Pins table accessor: upsert, clear, and lookup in both directions.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/pivot/pkg/types"
)

// SetPin binds key to view. An existing binding for key is re-targeted in
// the same statement; the store's native upsert atomicity is all the
// transaction this needs.
func (r *Repository) SetPin(key string, view *types.View) error {
	if key == "" {
		return types.ErrEmptyName
	}
	_, err := r.db.Exec(
		`INSERT INTO pins (key, view_id) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET view_id = excluded.view_id`,
		key, view.ID,
	)
	if err != nil {
		return fmt.Errorf("set pin %q: %w", key, classify(err))
	}
	return nil
}

// ClearPin removes the binding for key. Clearing an absent key is defined
// as success.
func (r *Repository) ClearPin(key string) error {
	if _, err := r.db.Exec("DELETE FROM pins WHERE key = ?", key); err != nil {
		return fmt.Errorf("clear pin %q: %w", key, classify(err))
	}
	return nil
}

// GetViewForPinKey resolves the view bound to key.
func (r *Repository) GetViewForPinKey(key string) (*types.View, error) {
	row := r.db.QueryRow(
		`SELECT v.id, v.name, v.project_id, v.position
         FROM pins p JOIN views v ON v.id = p.view_id
         WHERE p.key = ?`,
		key,
	)
	view, err := scanView(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pin %q: %w", key, types.ErrPinNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get pin %q: %w", key, classify(err))
	}
	return view, nil
}

// GetPinKeyForView returns the first pin key bound to view, by pin id, or
// the empty string when the view is unpinned. An unpinned view is a normal
// state, not an error.
func (r *Repository) GetPinKeyForView(view *types.View) (string, error) {
	var key string
	err := r.db.QueryRow(
		"SELECT key FROM pins WHERE view_id = ? ORDER BY id ASC LIMIT 1",
		view.ID,
	).Scan(&key)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("pin key for view %d: %w", view.ID, classify(err))
	}
	return key, nil
}

// ListPins returns all pins ordered by key.
func (r *Repository) ListPins() ([]*types.Pin, error) {
	rows, err := r.db.Query("SELECT id, key, view_id FROM pins ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("list pins: %w", classify(err))
	}
	defer rows.Close()

	var pins []*types.Pin
	for rows.Next() {
		var p types.Pin
		if err := rows.Scan(&p.ID, &p.Key, &p.ViewID); err != nil {
			return nil, fmt.Errorf("scan pin: %w", err)
		}
		pins = append(pins, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pins: %w", classify(err))
	}
	return pins, nil
}
