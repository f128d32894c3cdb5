package types

// Project is a named grouping of views, the top-level unit of the workspace
// hierarchy. Every project owns at least one view and always has exactly one
// active view; both invariants are maintained by the Repository.
type Project struct {
	ID           int64  `json:"id"`             // store-assigned, immutable
	Name         string `json:"name"`           // unique across projects
	ActiveViewID int64  `json:"active_view_id"` // resolves to a view owned by this project
}

// View is an orderable workspace slot within a project. Position is unique
// within the owning project; ascending position order defines the next/prev
// cycle.
type View struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"` // unique within the owning project
	ProjectID int64  `json:"project_id"`
	Position  int64  `json:"position"`
}

// Pin binds a short user-chosen key to one view for fast recall. Keys are
// unique; re-setting an existing key re-targets it (last write wins). A view
// may carry any number of pins, including none.
type Pin struct {
	ID     int64  `json:"id"`
	Key    string `json:"key"`
	ViewID int64  `json:"view_id"`
}
