package registry

import (
	"suiterun/internal/check"
	"suiterun/internal/domain"
)

// ExampleSuite builds the "Example" suite with a single "Core" case
func ExampleSuite() *domain.Suite {
	core := domain.NewCase("Core").
		AddTest("test_true_is_true", func(t *check.T) {
			t.True(true)
		})

	return domain.NewSuite("Example").AddCase(core)
}

// ExternalPredicateSuite builds the "ExampleTest" suite, asserting that fn
// returns true.
func ExternalPredicateSuite(fn func() bool) *domain.Suite {
	tc := domain.NewCase("TestFunction").
		AddTest("function_to_test", func(t *check.T) {
			t.Require(fn != nil, "no predicate registered")
			t.True(fn(), "function_to_test returned false")
		})

	return domain.NewSuite("ExampleTest").AddCase(tc)
}

// FunctionToTest is the predicate exercised by ExternalPredicateSuite
func FunctionToTest() bool {
	return true
}

// Builtin returns a registry holding the built-in suites
func Builtin() *Registry {
	return New().Register(
		ExampleSuite(),
		ExternalPredicateSuite(FunctionToTest),
	)
}
