// Package types defines the Project, View, and Pin entities, the Repository
// and WindowHost interfaces, the display-name codec, and the standard errors
// shared by the pivot storage backend and CLI.
package types
