package report

import (
	"time"

	"suiterun/internal/domain"
)

// BuildSummary aggregates every iteration into the persisted run summary
func BuildSummary(results []*domain.RunResult, failures []domain.TestFailure, finished time.Time) *domain.RunSummary {
	meta := domain.RunSummaryMeta{
		Iterations: len(results),
		Timestamp:  finished.Format(time.RFC3339),
	}

	var duration time.Duration
	for i, run := range results {
		if i == 0 {
			meta.RunID = run.RunID
			meta.TotalSuites = len(run.Suites)
		}
		tests := run.Tests()
		failed := len(run.FailedTests())
		meta.TotalTests += len(tests)
		meta.FailedTests += failed
		meta.PassedTests += len(tests) - failed
		meta.FailedAssertions += run.Failures()
		meta.Stopped = meta.Stopped || run.Stopped
		duration += run.Duration
	}
	meta.Duration = duration.String()
	meta.DurationSeconds = duration.Seconds()

	if failures == nil {
		failures = []domain.TestFailure{}
	}
	return &domain.RunSummary{Meta: meta, Details: failures}
}
