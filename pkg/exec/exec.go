// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Provides helpers for os/exec

// Package exec implements os/exec helpers for running a command inside
// a configured test environment.
package exec

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// ResolveExecutable find the absolute path to a given binary.
// This is meant to be used with os.Args[0]
func ResolveExecutable(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	// if we're not a path, e.g. go then look it up
	// in PATH
	if dir, _ := filepath.Split(path); dir == "" {
		return exec.LookPath(path)
	}

	// otherwise we should just return the absolute path (resolve it)
	return filepath.Abs(path)
}

// Command returns a command running name with args and the given
// environment, wired to the stdio of this process.
func Command(ctx context.Context, env []string, name string, args ...string) (*exec.Cmd, error) {
	path, err := ResolveExecutable(name)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", name)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// ExitCode returns the exit code err stands for: 0 for nil, the
// process exit code for an *ExitError and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode > 0 {
		return exitErr.ExitCode
	}
	return 1
}
