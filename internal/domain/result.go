package domain

import (
	"time"

	"suiterun/internal/check"
)

// TestResult is the outcome of running one test
type TestResult struct {
	Path       TestPath
	Assertions []check.Result
	Failures   int    // Failed assertions, a recovered panic counts as one
	Aborted    bool   // Require stopped the test early
	Panic      string // Recovered panic value, if any
	Duration   time.Duration
}

// Passed reports whether no assertion failed
func (r TestResult) Passed() bool {
	return r.Failures == 0
}

// CaseResult holds test results in registration order
type CaseResult struct {
	Name  string
	Tests []TestResult
}

// Failures returns the failed assertion count of the case
func (c CaseResult) Failures() int {
	n := 0
	for _, t := range c.Tests {
		n += t.Failures
	}
	return n
}

// SuiteResult holds case results in registration order
type SuiteResult struct {
	Name  string
	Cases []CaseResult
}

// Failures returns the failed assertion count of the suite
func (s SuiteResult) Failures() int {
	n := 0
	for _, c := range s.Cases {
		n += c.Failures()
	}
	return n
}

// Tests returns every test result of the suite in order
func (s SuiteResult) Tests() []TestResult {
	var out []TestResult
	for _, c := range s.Cases {
		out = append(out, c.Tests...)
	}
	return out
}

// RunResult is one pass over the registered suites
type RunResult struct {
	RunID     string
	Iteration int
	Suites    []SuiteResult
	Duration  time.Duration
	Stopped   bool // Fail-fast or cancellation cut the run short
}

// Tests returns every test result of the run in order
func (r *RunResult) Tests() []TestResult {
	var out []TestResult
	for _, s := range r.Suites {
		out = append(out, s.Tests()...)
	}
	return out
}

// Failures returns the total failed assertion count
func (r *RunResult) Failures() int {
	n := 0
	for _, s := range r.Suites {
		n += s.Failures()
	}
	return n
}

// FailedTests returns the results of tests with at least one failure
func (r *RunResult) FailedTests() []TestResult {
	var out []TestResult
	for _, t := range r.Tests() {
		if !t.Passed() {
			out = append(out, t)
		}
	}
	return out
}
