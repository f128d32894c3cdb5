// Package i3 implements the window host over the i3/sway IPC socket.
// It exchanges only opaque workspace display names; it never interprets
// them.
package i3

import (
	"fmt"
	"strings"

	i3ipc "go.i3wm.org/i3/v4"

	"github.com/mesh-intelligence/pivot/pkg/types"
)

// Compile-time interface check: Host must implement types.WindowHost.
var _ types.WindowHost = (*Host)(nil)

// Host talks to the window manager through the IPC socket advertised in
// the environment. The i3 client dials lazily, so constructing a Host is
// free and the first call reports connection failures.
type Host struct{}

// New returns a window host bound to the current i3/sway session.
func New() *Host {
	return &Host{}
}

// Focus switches to the workspace with the given display name. i3 creates
// the workspace implicitly if it does not exist yet.
func (h *Host) Focus(displayName string) error {
	// The name is user-controlled; quote it so spaces and command
	// keywords survive the i3 command parser.
	quoted := `"` + strings.ReplaceAll(displayName, `"`, `\"`) + `"`
	results, err := i3ipc.RunCommand("workspace " + quoted)
	if err != nil {
		return fmt.Errorf("focus workspace %q: %w", displayName, err)
	}
	for _, res := range results {
		if !res.Success {
			return fmt.Errorf("focus workspace %q: %s", displayName, res.Error)
		}
	}
	return nil
}

// ActiveWorkspaceName returns the display name of the focused workspace.
func (h *Host) ActiveWorkspaceName() (string, error) {
	workspaces, err := i3ipc.GetWorkspaces()
	if err != nil {
		return "", fmt.Errorf("query workspaces: %w", err)
	}
	for _, ws := range workspaces {
		if ws.Focused {
			return ws.Name, nil
		}
	}
	return "", fmt.Errorf("no focused workspace reported by the window manager")
}

// AllWorkspaceNames returns the display names of every workspace the
// window manager currently knows about.
func (h *Host) AllWorkspaceNames() ([]string, error) {
	workspaces, err := i3ipc.GetWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("query workspaces: %w", err)
	}
	names := make([]string, 0, len(workspaces))
	for _, ws := range workspaces {
		names = append(names, ws.Name)
	}
	return names, nil
}
