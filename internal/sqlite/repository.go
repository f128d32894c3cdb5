// Package sqlite implements the workspace Repository on a single SQLite
// database file. It owns the projects, views, and pins tables exclusively;
// every multi-statement mutation runs inside one transaction so no partial
// project or dangling reference can survive a failure.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pivot/pkg/types"
)

const (
	// busyTimeoutMS bounds the wait on a contended database lock so a
	// racing invocation fails with ErrStoreUnavailable instead of hanging.
	busyTimeoutMS = 2000

	// defaultViewName labels the view created alongside every new project.
	defaultViewName = "view"
)

// Compile-time interface check: Repository must implement types.Repository.
var _ types.Repository = (*Repository)(nil)

// Repository is the SQLite-backed implementation of types.Repository.
// It holds a single connection and performs no background work; it is not
// safe for concurrent use from multiple goroutines.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema
// exists. Schema creation is additive and idempotent: existing rows are
// never touched. Foreign-key enforcement and the busy timeout are set
// through the DSN so they apply to the connection from its first statement.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)", path, busyTimeoutMS)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection only. The repository is a short-lived, single-owner
	// object and the DSN pragmas are per-connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database: %w", classify(err))
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("initialize schema: %w", classify(err))
		}
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Idempotent.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// classify maps driver errors onto the error taxonomy in pkg/types. The
// modernc driver surfaces SQLite result codes only through the message
// text, so matching is by message class. Unrecognized errors pass through
// unchanged; nothing is swallowed.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", types.ErrDuplicateName, err)
	case strings.Contains(msg, "constraint failed"):
		return fmt.Errorf("%w: %v", types.ErrConstraintViolation, err)
	case strings.Contains(msg, "SQLITE_BUSY"), strings.Contains(msg, "database is locked"):
		return fmt.Errorf("%w: %v", types.ErrStoreUnavailable, err)
	}
	return err
}
