package sqlite

// Schema DDL for the three relations the repository owns. All statements
// are additive (IF NOT EXISTS) so Open never disturbs existing rows.
//
// projects.active_view_id and views.project_id reference each other across
// tables, and AddProject creates both rows inside one transaction; the
// foreign keys are DEFERRABLE INITIALLY DEFERRED so they are checked at
// commit, after the back-reference has been patched.
const (
	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    active_view_id INTEGER NOT NULL,
    FOREIGN KEY (active_view_id) REFERENCES views(id) DEFERRABLE INITIALLY DEFERRED
);`

	createViews = `CREATE TABLE IF NOT EXISTS views (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    project_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (project_id) REFERENCES projects(id) DEFERRABLE INITIALLY DEFERRED,
    UNIQUE (project_id, position),
    UNIQUE (project_id, name)
);`

	createPins = `CREATE TABLE IF NOT EXISTS pins (
    id INTEGER PRIMARY KEY,
    key TEXT NOT NULL UNIQUE,
    view_id INTEGER NOT NULL,
    FOREIGN KEY (view_id) REFERENCES views(id)
);`
)

// schemaDDL lists the CREATE TABLE statements in execution order.
var schemaDDL = []string{
	createProjects,
	createViews,
	createPins,
}
