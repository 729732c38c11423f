package execution

import (
	"fmt"

	"suiterun/internal/domain"
)

// FailuresError reports that a run recorded failed assertions
type FailuresError struct {
	Failures    int
	FailedTests int
}

func (e *FailuresError) Error() string {
	return fmt.Sprintf("%d assertion failure(s) in %d test(s)", e.Failures, e.FailedTests)
}

// CheckResults returns a *FailuresError if any iteration recorded failures
func CheckResults(results []*domain.RunResult) error {
	var failures, failedTests int
	for _, r := range results {
		failures += r.Failures()
		failedTests += len(r.FailedTests())
	}
	if failures == 0 {
		return nil
	}
	return &FailuresError{Failures: failures, FailedTests: failedTests}
}
