package types

import (
	"fmt"
	"strings"
)

// DisplayNameSeparator joins the project and view parts of a display name.
// Project and view names must never contain it; ValidateName enforces that
// at creation time.
const DisplayNameSeparator = "#"

// ValidateName checks that name may appear as either part of a display name.
// Returns ErrEmptyName or ErrReservedName on violation.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.Contains(name, DisplayNameSeparator) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}

// EncodeDisplayName formats a (project, view) name pair as the opaque
// workspace name exchanged with the window host: "<project>#<view>".
// Fails with ErrReservedName if either part contains the separator, so a
// valid encoding always parses back to the same pair.
func EncodeDisplayName(projectName, viewName string) (string, error) {
	if err := ValidateName(projectName); err != nil {
		return "", err
	}
	if err := ValidateName(viewName); err != nil {
		return "", err
	}
	return projectName + DisplayNameSeparator + viewName, nil
}

// ParseDisplayName splits a display name into its project and view parts.
// Exactly one separator is expected; zero or more than one fails with
// ErrMalformedDisplayName.
func ParseDisplayName(displayName string) (projectName, viewName string, err error) {
	if strings.Count(displayName, DisplayNameSeparator) != 1 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedDisplayName, displayName)
	}
	projectName, viewName, _ = strings.Cut(displayName, DisplayNameSeparator)
	if projectName == "" || viewName == "" {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedDisplayName, displayName)
	}
	return projectName, viewName, nil
}
