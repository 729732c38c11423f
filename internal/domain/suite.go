package domain

import (
	"strings"

	"suiterun/internal/check"
)

// TestFunc is a registered test body
type TestFunc func(t *check.T)

// Test is a named function registered into a case
type Test struct {
	Name string
	Func TestFunc
}

// Case groups tests; it belongs to exactly one suite
type Case struct {
	Name  string
	Tests []Test
}

// NewCase creates an empty case
func NewCase(name string) *Case {
	return &Case{Name: name}
}

// AddTest appends a test, preserving registration order
func (c *Case) AddTest(name string, fn TestFunc) *Case {
	c.Tests = append(c.Tests, Test{Name: name, Func: fn})
	return c
}

// Suite is a named collection of cases
type Suite struct {
	Name  string
	Cases []*Case
}

// NewSuite creates an empty suite
func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// AddCase attaches a case to the suite
func (s *Suite) AddCase(c *Case) *Suite {
	s.Cases = append(s.Cases, c)
	return s
}

// CountTests returns the number of tests across all cases
func (s *Suite) CountTests() int {
	n := 0
	for _, c := range s.Cases {
		n += len(c.Tests)
	}
	return n
}

// CountTests returns the number of tests across suites
func CountTests(suites []*Suite) int {
	n := 0
	for _, s := range suites {
		n += s.CountTests()
	}
	return n
}

// TestPath identifies a test by suite, case and test name
type TestPath struct {
	Suite string `json:"suite"`
	Case  string `json:"case"`
	Test  string `json:"test"`
}

// String returns the dotted form Suite.Case.Test
func (p TestPath) String() string {
	return strings.Join([]string{p.Suite, p.Case, p.Test}, ".")
}
