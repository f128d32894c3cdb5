//go:build mage

// Package main provides build targets for the pivot project using Mage.
//
// Usage:
//
//	mage build           Compile the pivot binary to bin/
//	mage test            Run all tests (unit + integration)
//	mage testUnit        Run only unit tests (exclude tests/)
//	mage lint            Run golangci-lint
//	mage clean           Remove build artifacts
//	mage install         Install pivot to GOPATH/bin
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "pivot"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pivot"
)

// Build compiles the pivot binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests (unit and integration).
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestUnit runs only unit tests, excluding the tests/ directory.
func TestUnit() error {
	out, err := sh.Output(binGo, "list", "./...")
	if err != nil {
		return err
	}
	var pkgs []string
	for _, pkg := range strings.Fields(out) {
		if strings.Contains(pkg, "/tests/") {
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	args := append([]string{"test"}, pkgs...)
	return sh.RunV(binGo, args...)
}

// Lint runs golangci-lint over the module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
