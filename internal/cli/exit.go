package cli

import (
	"errors"
	"fmt"
)

// Process exit statuses
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
	ExitConfig = 3
)

// ExitError carries the status the process should exit with. A nil Err
// means the problem was already reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ConfigError marks err as a configuration problem.
func ConfigError(err error) error {
	return &ExitError{Code: ExitConfig, Err: err}
}

// ExitCode maps an error returned by a command to a process status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailed
}

// ShouldReport tells whether err still needs to be printed.
func ShouldReport(err error) bool {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Err != nil
	}
	return err != nil
}
