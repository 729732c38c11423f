package domain

// TestFailure represents a failed test in the persisted run summary
type TestFailure struct {
	Suite     string `json:"suite"`
	Case      string `json:"case"`
	Test      string `json:"test"`
	Iteration int    `json:"iteration,omitempty"`
	Message   string `json:"message"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
	Failures  int    `json:"failures"`
	Resolved  bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}

// Path returns the test path of the failure
func (f TestFailure) Path() TestPath {
	return TestPath{Suite: f.Suite, Case: f.Case, Test: f.Test}
}
