package execution

import (
	"context"

	"suiterun/internal/domain"
)

// Executor runs suites and returns one result per iteration
type Executor interface {
	Run(ctx context.Context, suites []*domain.Suite) []*domain.RunResult
}

// Observer is notified as tests start and finish, in execution order
type Observer interface {
	TestStarted(path domain.TestPath)
	TestFinished(result domain.TestResult)
}

// Options controls a run
type Options struct {
	FailFast bool // Stop after the first failing test
	Repeat   int  // Number of iterations, at least 1
}
