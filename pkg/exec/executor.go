// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Mockable execution of *exec.Cmd.

package exec

import (
	"os/exec"
	"strconv"

	"github.com/pkg/errors"
)

// ExitError represents an error executing a command. This is used to wrap
// exec.ExitError in a mockable way.
type ExitError struct {
	// ExitCode is the exit code from the underlying process.
	ExitCode int
	// errFunc is the function to generate an error string for the wrapped
	// error.
	errFunc func() string
}

// Error returns the error string from this ExitError.
func (e *ExitError) Error() string {
	if e.errFunc == nil {
		return "exit status " + strconv.Itoa(e.ExitCode)
	}
	return e.errFunc()
}

// NewExitError returns an *ExitError for code, for use in mocks.
func NewExitError(code int) *ExitError {
	return &ExitError{ExitCode: code}
}

// wrapOsError wraps the given error in ExitError if it is an exec.ExitError;
// else, it returns the given error unchanged.
func wrapOsError(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			ExitCode: exitErr.ExitCode(),
			errFunc:  exitErr.Error,
		}
	}
	return err
}

// Executor runs a command to completion.
type Executor interface {
	Run(cmd *exec.Cmd) error
}

// OsExecutor is an executor that delegates to os/exec.
type OsExecutor struct{}

// Run starts the specified command and waits for it to complete.
//
// If the command starts but does not complete successfully, the error is of
// type *ExitError. Other error types may be returned for other situations.
func (OsExecutor) Run(cmd *exec.Cmd) error {
	return wrapOsError(cmd.Run())
}

// MockExecutor is an executor that will return its internal data instead of
// running a command.
type MockExecutor struct {
	// Stdout is written to the command's stdout, if it has one.
	Stdout []byte
	// Error is returned from Run.
	Error error

	// Cmd is the last command passed in for execution.
	Cmd *exec.Cmd
}

// Run records cmd and returns m.Error.
func (m *MockExecutor) Run(cmd *exec.Cmd) error {
	m.Cmd = cmd
	if cmd.Stdout != nil && len(m.Stdout) > 0 {
		if _, err := cmd.Stdout.Write(m.Stdout); err != nil {
			return err
		}
	}
	return m.Error
}
