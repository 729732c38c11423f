package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"suiterun/internal/execution"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "no error", err: nil, expected: ExitSuccess},
		{name: "failures", err: &execution.FailuresError{Failures: 1, FailedTests: 1}, expected: ExitFailure},
		{name: "wrapped failures", err: fmt.Errorf("run: %w", &execution.FailuresError{Failures: 2}), expected: ExitFailure},
		{name: "other error", err: errors.New("bad config"), expected: ExitError},
		{name: "interrupted", err: fmt.Errorf("run interrupted: %w", context.Canceled), expected: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.expected {
				t.Errorf("expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFlags_ToConfigFlags(t *testing.T) {
	f := Flags{Filter: "Example.*", Repeat: 2, NoProgress: true, OnlyFailed: true}
	cf := f.ToConfigFlags()
	if cf.Filter != "Example.*" || cf.Repeat != 2 || !cf.NoProgress || !cf.OnlyFailed {
		t.Errorf("flags not copied: %+v", cf)
	}
}
