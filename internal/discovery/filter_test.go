package discovery

import (
	"testing"

	"suiterun/internal/check"
	"suiterun/internal/domain"
)

func TestFilter_Match(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		pattern  string
		testName string
		expected bool
	}{
		{name: "empty pattern matches all", pattern: "", testName: "Example.Core.test_true_is_true", expected: true},
		{name: "wildcard suite prefix", pattern: "Example.*", testName: "Example.Core.test_true_is_true", expected: true},
		{name: "wildcard suite prefix other suite", pattern: "Example.*", testName: "ExampleTest.TestFunction.function_to_test", expected: false},
		{name: "wildcard substring", pattern: "*Core*", testName: "Example.Core.test_true_is_true", expected: true},
		{name: "simple contains match", pattern: "Core", testName: "Example.Core.test_true_is_true", expected: true},
		{name: "multiple positive patterns", pattern: "Nope.*:ExampleTest.*", testName: "ExampleTest.TestFunction.function_to_test", expected: true},
		{name: "negative pattern excludes", pattern: "*-*.slow_*", testName: "Suite.Case.slow_one", expected: false},
		{name: "only negative pattern", pattern: "-Example.*", testName: "Smoke.Core.literal_true", expected: true},
		{name: "question mark wildcard", pattern: "Example.Cor?.*", testName: "Example.Core.test_true_is_true", expected: true},
		{name: "no match", pattern: "*NonExistent*", testName: "Example.Core.test_true_is_true", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Match(tt.pattern, tt.testName); got != tt.expected {
				t.Errorf("Match(%q, %q) = %v, expected %v", tt.pattern, tt.testName, got, tt.expected)
			}
		})
	}
}

func sampleSuites() []*domain.Suite {
	noop := func(t *check.T) {}
	return []*domain.Suite{
		domain.NewSuite("Example").
			AddCase(domain.NewCase("Core").AddTest("one", noop).AddTest("two", noop)).
			AddCase(domain.NewCase("Slow").AddTest("three", noop)),
		domain.NewSuite("Other").
			AddCase(domain.NewCase("Core").AddTest("four", noop)),
	}
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		pattern  string
		suites   int
		expected int // Expected number of tests kept
	}{
		{name: "empty pattern returns all", pattern: "", suites: 2, expected: 4},
		{name: "suite wildcard", pattern: "Example.*", suites: 1, expected: 3},
		{name: "case across suites", pattern: "*.Core.*", suites: 2, expected: 3},
		{name: "negative drops case", pattern: "Example.*-*.Slow.*", suites: 1, expected: 2},
		{name: "no matches", pattern: "*NonExistent*", suites: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(sampleSuites(), tt.pattern)
			if len(result) != tt.suites {
				t.Errorf("expected %d suites, got %d", tt.suites, len(result))
			}
			if got := domain.CountTests(result); got != tt.expected {
				t.Errorf("expected %d tests, got %d", tt.expected, got)
			}
		})
	}
}

func TestFilter_FilterByPaths(t *testing.T) {
	filter := NewFilter()

	t.Run("keeps listed paths in registration order", func(t *testing.T) {
		result := filter.FilterByPaths(sampleSuites(), map[string]struct{}{
			"Other.Core.four":   {},
			"Example.Core.two":  {},
			"Missing.Case.test": {},
		})
		if len(result) != 2 {
			t.Fatalf("expected 2 suites, got %d", len(result))
		}
		if result[0].Name != "Example" || result[0].Cases[0].Tests[0].Name != "two" {
			t.Errorf("unexpected order: %+v", result[0])
		}
	})

	t.Run("empty set keeps nothing", func(t *testing.T) {
		result := filter.FilterByPaths(sampleSuites(), nil)
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d suites", len(result))
		}
	})
}
