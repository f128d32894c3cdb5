// Package main provides the pivot CLI: a project/view workspace tracker
// that maps a logical hierarchy of projects and views onto the window
// manager's flat workspace names, with single-key pins for instant recall.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/pivot/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pivot:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor distinguishes user mistakes (bad names, missing entities)
// from system failures (locked store, IPC trouble).
func exitCodeFor(err error) int {
	userErrors := []error{
		types.ErrProjectNotFound,
		types.ErrViewNotFound,
		types.ErrPinNotFound,
		types.ErrViewNotInProject,
		types.ErrDuplicateName,
		types.ErrEmptyName,
		types.ErrReservedName,
		types.ErrMalformedDisplayName,
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}
