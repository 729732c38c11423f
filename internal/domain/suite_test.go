package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"suiterun/internal/check"
)

func TestSuite_RegistrationOrder(t *testing.T) {
	noop := func(t *check.T) {}
	s := NewSuite("Example").
		AddCase(NewCase("A").AddTest("one", noop).AddTest("two", noop)).
		AddCase(NewCase("B").AddTest("three", noop))

	assert.Equal(t, 3, s.CountTests())
	assert.Equal(t, "A", s.Cases[0].Name)
	assert.Equal(t, "two", s.Cases[0].Tests[1].Name)
	assert.Equal(t, 3, CountTests([]*Suite{s}))
	assert.Zero(t, CountTests(nil))
}

func TestTestPath_String(t *testing.T) {
	p := TestPath{Suite: "Example", Case: "Core", Test: "test_true_is_true"}
	assert.Equal(t, "Example.Core.test_true_is_true", p.String())
}

func TestRunResult_Counts(t *testing.T) {
	run := &RunResult{
		Suites: []SuiteResult{{
			Name: "S",
			Cases: []CaseResult{
				{Name: "A", Tests: []TestResult{{Failures: 0}, {Failures: 2}}},
				{Name: "B", Tests: []TestResult{{Failures: 1}}},
			},
		}},
	}

	assert.Equal(t, 3, run.Failures())
	assert.Len(t, run.Tests(), 3)
	assert.Len(t, run.FailedTests(), 2)
}

func TestRunSummary_FailedPathsSkipsResolved(t *testing.T) {
	s := &RunSummary{Details: []TestFailure{
		{Suite: "S", Case: "C", Test: "a"},
		{Suite: "S", Case: "C", Test: "b", Resolved: true},
	}}

	paths := s.FailedPaths()
	assert.Len(t, paths, 1)
	assert.Contains(t, paths, "S.C.a")
}
