package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"suiterun/internal/check"
	"suiterun/internal/domain"
)

var _ Executor = (*Runner)(nil)

// Runner executes registered tests sequentially, in registration order
type Runner struct {
	opts      Options
	logger    logrus.FieldLogger
	observers []Observer
	newRunID  func() string
}

// NewRunner creates a new Runner
func NewRunner(opts Options, logger logrus.FieldLogger) *Runner {
	if opts.Repeat < 1 {
		opts.Repeat = 1
	}
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &Runner{
		opts:     opts,
		logger:   logger,
		newRunID: func() string { return uuid.New().String() },
	}
}

// AddObserver registers an observer for test events
func (r *Runner) AddObserver(o Observer) {
	if o != nil {
		r.observers = append(r.observers, o)
	}
}

// Run executes the suites Repeat times. With FailFast a failure also ends
// the remaining iterations. All iterations share one run ID.
func (r *Runner) Run(ctx context.Context, suites []*domain.Suite) []*domain.RunResult {
	runID := r.newRunID()
	log := r.logger.WithField("run_id", runID)

	results := make([]*domain.RunResult, 0, r.opts.Repeat)
	for i := 1; i <= r.opts.Repeat; i++ {
		if ctx.Err() != nil {
			break
		}
		if r.opts.Repeat > 1 {
			log.WithField("iteration", i).Info("starting iteration")
		}

		res := r.RunOnce(ctx, suites, runID, i)
		results = append(results, res)

		log.WithFields(logrus.Fields{
			"iteration": i,
			"tests":     len(res.Tests()),
			"failures":  res.Failures(),
			"duration":  res.Duration,
		}).Info("iteration finished")

		if res.Stopped {
			break
		}
	}
	return results
}

// RunOnce executes every test of the suites once
func (r *Runner) RunOnce(ctx context.Context, suites []*domain.Suite, runID string, iteration int) *domain.RunResult {
	start := time.Now()
	run := &domain.RunResult{RunID: runID, Iteration: iteration}

	for _, s := range suites {
		sr := domain.SuiteResult{Name: s.Name}
		for _, c := range s.Cases {
			cr := domain.CaseResult{Name: c.Name}
			for _, t := range c.Tests {
				if ctx.Err() != nil {
					run.Stopped = true
					break
				}

				res := r.runTest(domain.TestPath{Suite: s.Name, Case: c.Name, Test: t.Name}, t.Func)
				cr.Tests = append(cr.Tests, res)

				if !res.Passed() && r.opts.FailFast {
					run.Stopped = true
					break
				}
			}
			sr.Cases = append(sr.Cases, cr)
			if run.Stopped {
				break
			}
		}
		run.Suites = append(run.Suites, sr)
		if run.Stopped {
			break
		}
	}

	run.Duration = time.Since(start)
	return run
}

func (r *Runner) runTest(path domain.TestPath, fn domain.TestFunc) domain.TestResult {
	for _, o := range r.observers {
		o.TestStarted(path)
	}

	t := check.NewT(path.String())
	result := domain.TestResult{Path: path}
	start := time.Now()

	if fn == nil {
		t.Failf("no test function registered")
	} else {
		func() {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if check.IsAbort(v) {
					result.Aborted = true
					return
				}
				result.Panic = fmt.Sprint(v)
				t.RecordPanic(v)
			}()
			fn(t)
		}()
	}

	result.Duration = time.Since(start)
	result.Assertions = t.Results()
	result.Failures = t.Failures()

	if !result.Passed() {
		r.logger.WithFields(logrus.Fields{
			"test":     path.String(),
			"failures": result.Failures,
			"aborted":  result.Aborted,
		}).Debug("test failed")
	}

	for _, o := range r.observers {
		o.TestFinished(result)
	}
	return result
}
