package cli

import (
	"errors"

	"suiterun/internal/execution"
)

const (
	// ExitSuccess means every assertion passed
	ExitSuccess = 0
	// ExitFailure means at least one assertion failed
	ExitFailure = 1
	// ExitError means the run could not be carried out (usage, config, I/O)
	ExitError = 2
)

// ExitCode maps a command error onto the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var fe *execution.FailuresError
	if errors.As(err, &fe) {
		return ExitFailure
	}
	return ExitError
}
