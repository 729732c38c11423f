package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suiterun/internal/check"
	"suiterun/internal/domain"
	"suiterun/internal/registry"
)

type recordingObserver struct {
	started  []string
	finished []string
}

func (o *recordingObserver) TestStarted(path domain.TestPath) {
	o.started = append(o.started, path.String())
}

func (o *recordingObserver) TestFinished(result domain.TestResult) {
	o.finished = append(o.finished, result.Path.String())
}

func assertsSuite(values ...bool) *domain.Suite {
	c := domain.NewCase("Core")
	for i, v := range values {
		v := v
		c.AddTest(string(rune('a'+i)), func(t *check.T) { t.True(v) })
	}
	return domain.NewSuite("S").AddCase(c)
}

func TestRunner_TrueYieldsNoFailures(t *testing.T) {
	runner := NewRunner(Options{}, nil)

	results := runner.Run(context.Background(), registry.Builtin().Suites())

	require.Len(t, results, 1)
	assert.Zero(t, results[0].Failures())
	assert.Len(t, results[0].Tests(), 2)
	assert.NoError(t, CheckResults(results))
}

func TestRunner_EmptySuitePasses(t *testing.T) {
	runner := NewRunner(Options{}, nil)

	t.Run("no suites", func(t *testing.T) {
		results := runner.Run(context.Background(), nil)
		require.Len(t, results, 1)
		assert.Zero(t, results[0].Failures())
		assert.NoError(t, CheckResults(results))
	})

	t.Run("suite without cases", func(t *testing.T) {
		results := runner.Run(context.Background(), []*domain.Suite{domain.NewSuite("Empty")})
		assert.Zero(t, results[0].Failures())
		assert.NoError(t, CheckResults(results))
	})
}

func TestRunner_SingleFailingAssertion(t *testing.T) {
	runner := NewRunner(Options{}, nil)

	results := runner.Run(context.Background(), []*domain.Suite{assertsSuite(false)})

	assert.Equal(t, 1, results[0].Failures())
	err := CheckResults(results)
	var fe *FailuresError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 1, fe.Failures)
	assert.Equal(t, 1, fe.FailedTests)
}

func TestRunner_FailuresDoNotStopExecution(t *testing.T) {
	suite := domain.NewSuite("S").AddCase(domain.NewCase("C").
		AddTest("multi", func(t *check.T) {
			t.True(false)
			t.True(false)
			t.True(true)
		}).
		AddTest("after", func(t *check.T) { t.True(true) }))

	results := NewRunner(Options{}, nil).Run(context.Background(), []*domain.Suite{suite})

	tests := results[0].Tests()
	require.Len(t, tests, 2)
	assert.Equal(t, 2, tests[0].Failures)
	assert.Len(t, tests[0].Assertions, 3)
	assert.True(t, tests[1].Passed())
}

func TestRunner_RunTwiceIsIdempotent(t *testing.T) {
	suites := []*domain.Suite{assertsSuite(true, false, true, false)}
	runner := NewRunner(Options{}, nil)

	first := runner.Run(context.Background(), suites)
	second := runner.Run(context.Background(), suites)

	assert.Equal(t, 2, first[0].Failures())
	assert.Equal(t, first[0].Failures(), second[0].Failures())
}

func TestRunner_Repeat(t *testing.T) {
	runner := NewRunner(Options{Repeat: 3}, nil)

	results := runner.Run(context.Background(), []*domain.Suite{assertsSuite(false)})

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Iteration)
		assert.Equal(t, 1, r.Failures())
		assert.Equal(t, results[0].RunID, r.RunID)
	}

	var fe *FailuresError
	require.ErrorAs(t, CheckResults(results), &fe)
	assert.Equal(t, 3, fe.Failures)
}

func TestRunner_RegistrationOrder(t *testing.T) {
	noop := func(t *check.T) { t.True(true) }
	suites := []*domain.Suite{
		domain.NewSuite("First").
			AddCase(domain.NewCase("A").AddTest("a1", noop).AddTest("a2", noop)).
			AddCase(domain.NewCase("B").AddTest("b1", noop)),
		domain.NewSuite("Second").
			AddCase(domain.NewCase("C").AddTest("c1", noop)),
	}

	obs := &recordingObserver{}
	runner := NewRunner(Options{}, nil)
	runner.AddObserver(obs)
	results := runner.Run(context.Background(), suites)

	expected := []string{"First.A.a1", "First.A.a2", "First.B.b1", "Second.C.c1"}
	assert.Equal(t, expected, obs.started)
	assert.Equal(t, expected, obs.finished)

	var reported []string
	for _, tr := range results[0].Tests() {
		reported = append(reported, tr.Path.String())
	}
	assert.Equal(t, expected, reported)
}

func TestRunner_PanicCountsAsOneFailure(t *testing.T) {
	suite := domain.NewSuite("S").AddCase(domain.NewCase("C").
		AddTest("panics", func(t *check.T) {
			var m map[string]int
			m["x"] = 1
		}).
		AddTest("after", func(t *check.T) { t.True(true) }))

	results := NewRunner(Options{}, nil).Run(context.Background(), []*domain.Suite{suite})

	tests := results[0].Tests()
	require.Len(t, tests, 2)
	assert.Equal(t, 1, tests[0].Failures)
	assert.NotEmpty(t, tests[0].Panic)
	assert.True(t, tests[1].Passed())
}

func TestRunner_RequireAbortsOnlyCurrentTest(t *testing.T) {
	suite := domain.NewSuite("S").AddCase(domain.NewCase("C").
		AddTest("required", func(t *check.T) {
			t.Require(false, "stop here")
			t.True(false, "never evaluated")
		}).
		AddTest("after", func(t *check.T) { t.True(true) }))

	results := NewRunner(Options{}, nil).Run(context.Background(), []*domain.Suite{suite})

	tests := results[0].Tests()
	require.Len(t, tests, 2)
	assert.True(t, tests[0].Aborted)
	assert.Equal(t, 1, tests[0].Failures)
	assert.Empty(t, tests[0].Panic)
	assert.True(t, tests[1].Passed())
}

func TestRunner_NilTestFuncFails(t *testing.T) {
	suite := domain.NewSuite("S").AddCase(domain.NewCase("C").AddTest("nil", nil))

	results := NewRunner(Options{}, nil).Run(context.Background(), []*domain.Suite{suite})

	assert.Equal(t, 1, results[0].Failures())
}

func TestRunner_FailFast(t *testing.T) {
	suites := []*domain.Suite{assertsSuite(true, false, true), assertsSuite(true)}
	runner := NewRunner(Options{FailFast: true, Repeat: 2}, nil)

	results := runner.Run(context.Background(), suites)

	require.Len(t, results, 1, "fail-fast ends the remaining iterations")
	assert.True(t, results[0].Stopped)
	assert.Len(t, results[0].Tests(), 2)
	assert.Equal(t, 1, results[0].Failures())
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewRunner(Options{Repeat: 2}, nil).Run(ctx, []*domain.Suite{assertsSuite(true)})

	assert.Empty(t, results)
}

func TestRunner_CancelMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	suite := domain.NewSuite("S").AddCase(domain.NewCase("C").
		AddTest("cancels", func(t *check.T) {
			t.True(true)
			cancel()
		}).
		AddTest("skipped", func(t *check.T) { t.True(false) }))

	results := NewRunner(Options{}, nil).Run(ctx, []*domain.Suite{suite})

	require.Len(t, results, 1)
	assert.True(t, results[0].Stopped)
	assert.Len(t, results[0].Tests(), 1)
	assert.Zero(t, results[0].Failures())
}
