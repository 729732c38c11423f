package domain

import "errors"

var (
	// ErrNoPreviousRun is returned when no persisted run summary exists
	ErrNoPreviousRun = errors.New("no previous run found")
	// ErrInvalidSuiteFile is returned for malformed declarative suite files
	ErrInvalidSuiteFile = errors.New("invalid suite file")
)
