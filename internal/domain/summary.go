package domain

// RunSummaryMeta contains metadata about a run
type RunSummaryMeta struct {
	RunID            string  `json:"run_id"`
	TotalSuites      int     `json:"total_suites"`
	TotalTests       int     `json:"total_tests"`
	PassedTests      int     `json:"passed_tests"`
	FailedTests      int     `json:"failed_tests"`
	FailedAssertions int     `json:"failed_assertions"`
	Iterations       int     `json:"iterations"`
	Stopped          bool    `json:"stopped,omitempty"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Timestamp        string  `json:"timestamp"`
}

// RunSummary is the complete persisted output of a run
type RunSummary struct {
	Meta    RunSummaryMeta `json:"meta"`
	Details []TestFailure  `json:"details"`
}

// FailedPaths returns the dotted paths of unresolved failures
func (s *RunSummary) FailedPaths() map[string]struct{} {
	paths := make(map[string]struct{}, len(s.Details))
	for _, f := range s.Details {
		if f.Resolved {
			continue
		}
		paths[f.Path().String()] = struct{}{}
	}
	return paths
}
