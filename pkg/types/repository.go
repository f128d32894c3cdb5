package types

// Repository owns the persisted workspace hierarchy: projects, their ordered
// views, and pins. All multi-statement mutations are atomic; no operation
// leaves a partial effect behind. A Repository instance is not safe for
// concurrent use from multiple goroutines; each invocation owns its own
// instance and cross-process races are resolved by the store's locking.
type Repository interface {
	// AddProject creates a project named name together with its default
	// view at position 0 and returns the new project's id. Fails with
	// ErrDuplicateName if a project of that name exists, and with
	// ErrEmptyName or ErrReservedName if the name cannot appear in a
	// display name.
	AddProject(name string) (int64, error)

	// GetProjectByID resolves a project id. Fails with ErrProjectNotFound.
	GetProjectByID(id int64) (*Project, error)

	// GetProjectByName resolves a project name. Fails with ErrProjectNotFound.
	GetProjectByName(name string) (*Project, error)

	// ListProjects returns all projects ordered by creation (id ascending).
	// The result is a snapshot; call again to refresh.
	ListProjects() ([]*Project, error)

	// AddViewToProject appends a view after the project's last position and
	// makes it the active view. Fails with ErrProjectNotFound if the
	// project no longer exists and ErrDuplicateName if the project already
	// has a view of that name.
	AddViewToProject(project *Project, name string) (*View, error)

	// ListViewsForProject returns the project's views in position order.
	ListViewsForProject(project *Project) ([]*View, error)

	// GetViewByName resolves a view by name within a project. Fails with
	// ErrViewNotFound.
	GetViewByName(project *Project, name string) (*View, error)

	// GetActiveViewForProject resolves the project's active view. Fails
	// with ErrNoActiveView if the referenced row is missing.
	GetActiveViewForProject(project *Project) (*View, error)

	// SetActiveViewForProject makes view the project's active view and
	// returns it. Fails with ErrViewNotInProject, without writing, if the
	// view belongs to a different project. Every view switch funnels
	// through here.
	SetActiveViewForProject(project *Project, view *View) (*View, error)

	// GetNextViewForProject returns the view after the active one in
	// position order, wrapping from the highest position to the lowest.
	// Read-only: the caller commits via SetActiveViewForProject.
	GetNextViewForProject(project *Project) (*View, error)

	// GetPrevViewForProject returns the view before the active one in
	// position order, wrapping from the lowest position to the highest.
	// Read-only: the caller commits via SetActiveViewForProject.
	GetPrevViewForProject(project *Project) (*View, error)

	// SetPin binds key to view, replacing any existing binding for key.
	SetPin(key string, view *View) error

	// ClearPin removes the binding for key. Clearing an absent key is a
	// no-op, not an error.
	ClearPin(key string) error

	// GetViewForPinKey resolves the view bound to key. Fails with
	// ErrPinNotFound if no pin has that key.
	GetViewForPinKey(key string) (*View, error)

	// GetPinKeyForView returns the first pin key bound to view, or the
	// empty string if the view is unpinned. An unpinned view is not an
	// error.
	GetPinKeyForView(view *View) (string, error)

	// ListPins returns all pins ordered by key.
	ListPins() ([]*Pin, error)

	// GetWindowManagerDisplayName encodes the view and its owning project
	// into the opaque workspace name the window host understands.
	GetWindowManagerDisplayName(view *View) (string, error)

	// GetViewForDisplayName decodes a workspace name and resolves the
	// project and view it names. Fails with ErrMalformedDisplayName on a
	// bad format and ErrViewNotFound when either lookup misses.
	GetViewForDisplayName(displayName string) (*Project, *View, error)

	// Close releases the store connection. Close is idempotent.
	Close() error
}

// WindowHost is the external windowing system. It exchanges only the opaque
// display names produced and consumed by the codec in this package; the
// Repository never calls it directly.
type WindowHost interface {
	// Focus switches the host to the workspace with the given display name,
	// creating it if the host does so implicitly.
	Focus(displayName string) error

	// ActiveWorkspaceName returns the display name of the currently
	// focused workspace.
	ActiveWorkspaceName() (string, error)

	// AllWorkspaceNames returns the display names of every workspace the
	// host currently knows about.
	AllWorkspaceNames() ([]string, error)
}
