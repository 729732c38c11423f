package config

import (
	"fmt"
	"strings"
)

// Verbosity controls how much the run command prints
type Verbosity string

const (
	VerbositySilent  Verbosity = "silent"
	VerbosityMinimal Verbosity = "minimal"
	VerbosityNormal  Verbosity = "normal"
	VerbosityVerbose Verbosity = "verbose"
)

// ParseVerbosity parses a verbosity name, case-insensitively
func ParseVerbosity(s string) (Verbosity, error) {
	switch v := Verbosity(strings.ToLower(strings.TrimSpace(s))); v {
	case VerbositySilent, VerbosityMinimal, VerbosityNormal, VerbosityVerbose:
		return v, nil
	}
	return "", fmt.Errorf("invalid verbosity %q (want silent, minimal, normal or verbose)", s)
}

// AtLeast reports whether v prints at least as much as other
func (v Verbosity) AtLeast(other Verbosity) bool {
	return v.rank() >= other.rank()
}

func (v Verbosity) rank() int {
	switch v {
	case VerbositySilent:
		return 0
	case VerbosityMinimal:
		return 1
	case VerbosityVerbose:
		return 3
	default:
		return 2
	}
}
