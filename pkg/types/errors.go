package types

import "errors"

// Lookup errors. A miss on decode deliberately collapses to ErrViewNotFound:
// a caller cannot tell "no such view" apart from "workspace not managed by
// this repository" and must treat both the same way.
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrViewNotFound    = errors.New("view not found")
	ErrPinNotFound     = errors.New("pin not found")
)

// Invariant errors. NoActiveView and NoViewsInProject indicate a corrupted
// store; the Repository checks for them defensively but never produces such
// states itself.
var (
	ErrNoActiveView     = errors.New("project has no active view")
	ErrNoViewsInProject = errors.New("project has no views")
	ErrViewNotInProject = errors.New("view does not belong to project")
)

// Store errors. ErrDuplicateName maps a unique-constraint violation on a
// project or view name; ErrConstraintViolation covers every other integrity
// failure; ErrStoreUnavailable reports a lock-contention timeout (the caller
// decides whether to retry).
var (
	ErrDuplicateName       = errors.New("name already in use")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// Input validation errors.
var (
	ErrEmptyName            = errors.New("name must not be empty")
	ErrReservedName         = errors.New("name contains the reserved separator character")
	ErrMalformedDisplayName = errors.New("malformed display name")
)
