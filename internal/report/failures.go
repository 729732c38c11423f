package report

import (
	"strings"

	"suiterun/internal/domain"
)

// CollectFailures flattens failed tests into persisted failure details.
// Iteration is only recorded when more than one iteration ran.
func CollectFailures(results []*domain.RunResult) []domain.TestFailure {
	var failures []domain.TestFailure
	for _, run := range results {
		for _, tr := range run.FailedTests() {
			f := toFailure(tr)
			if len(results) > 1 {
				f.Iteration = run.Iteration
			}
			failures = append(failures, f)
		}
	}
	return failures
}

func toFailure(tr domain.TestResult) domain.TestFailure {
	f := domain.TestFailure{
		Suite:    tr.Path.Suite,
		Case:     tr.Path.Case,
		Test:     tr.Path.Test,
		Failures: tr.Failures,
	}

	var messages []string
	for _, a := range tr.Assertions {
		if a.Passed {
			continue
		}
		if f.File == "" && a.File != "" {
			f.File = a.File
			f.Line = a.Line
		}
		messages = append(messages, a.Message)
	}
	f.Message = strings.Join(messages, "\n")
	return f
}
