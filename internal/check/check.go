package check

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Result is the outcome of a single assertion
type Result struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// abort is the panic value used by Require to stop the current test
type abort struct{}

// IsAbort reports whether a recovered panic value was raised by Require
func IsAbort(v any) bool {
	_, ok := v.(abort)
	return ok
}

// T records assertion results for one registered test.
// A failed assertion is recorded and the test keeps running, except for Require.
//
// T satisfies assert.TestingT and require.TestingT, so test functions may also
// call testify assertions on it directly. Those record failures only.
type T struct {
	name string

	mu      sync.Mutex
	results []Result
	failed  int
}

var (
	_ assert.TestingT  = (*T)(nil)
	_ require.TestingT = (*T)(nil)
)

// NewT creates a recorder for the named test
func NewT(name string) *T {
	return &T{name: name}
}

// Name returns the full name of the test being recorded
func (t *T) Name() string {
	return t.name
}

// True asserts that cond holds
func (t *T) True(cond bool, msgAndArgs ...any) bool {
	return t.pass(assert.True(t, cond, msgAndArgs...))
}

// False asserts that cond does not hold
func (t *T) False(cond bool, msgAndArgs ...any) bool {
	return t.pass(assert.False(t, cond, msgAndArgs...))
}

// Equal asserts that want and got are equal
func (t *T) Equal(want, got any, msgAndArgs ...any) bool {
	return t.pass(assert.Equal(t, want, got, msgAndArgs...))
}

// Require asserts that cond holds and stops the current test when it does not.
func (t *T) Require(cond bool, msgAndArgs ...any) {
	t.pass(cond)
	require.True(t, cond, msgAndArgs...)
}

// Failf records an unconditional failure
func (t *T) Failf(format string, args ...any) {
	assert.Fail(t, fmt.Sprintf(format, args...))
}

// Errorf records a failed assertion reported by testify
func (t *T) Errorf(format string, args ...any) {
	res := Result{Message: failureMessage(fmt.Sprintf(format, args...))}
	res.File, res.Line = callerPosition()

	t.mu.Lock()
	t.results = append(t.results, res)
	t.failed++
	t.mu.Unlock()
}

// FailNow stops the current test
func (t *T) FailNow() {
	panic(abort{})
}

// RecordPanic records a recovered panic as a single failed assertion
func (t *T) RecordPanic(v any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, Result{Passed: false, Message: fmt.Sprintf("panic: %v", v)})
	t.failed++
}

// Results returns a copy of the recorded results in evaluation order
func (t *T) Results() []Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Result, len(t.results))
	copy(out, t.results)
	return out
}

// Failures returns the number of failed assertions so far
func (t *T) Failures() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failed
}

// Failed reports whether any assertion failed
func (t *T) Failed() bool {
	return t.Failures() > 0
}

// pass appends a passing result when ok is true. Failures are appended by Errorf.
func (t *T) pass(ok bool) bool {
	if ok {
		t.mu.Lock()
		t.results = append(t.results, Result{Passed: true})
		t.mu.Unlock()
	}
	return ok
}

var recorderPrefix = reflect.TypeOf((*T)(nil)).Elem().PkgPath() + ".(*T)."

// callerPosition returns the first frame outside testify and the recorder.
func callerPosition() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "github.com/stretchr/testify/") &&
			!strings.HasPrefix(frame.Function, recorderPrefix) {
			return filepath.Base(frame.File), frame.Line
		}
		if !more {
			return "", 0
		}
	}
}

// failureMessage reduces testify's labeled report to the user message followed
// by the error text. The trace and test name are dropped since the recorder
// keeps file and line separately.
//
// Each report line is "\t<label:><padding>\t<content>", continuation lines have
// an empty label.
func failureMessage(report string) string {
	sections := map[string][]string{}
	label := ""
	parsed := false
	for _, line := range strings.Split(strings.TrimLeft(report, "\n"), "\n") {
		head, content, ok := strings.Cut(strings.TrimPrefix(line, "\t"), "\t")
		if !ok {
			if label != "" {
				sections[label] = append(sections[label], line)
			}
			continue
		}
		parsed = true
		if h := strings.TrimSpace(head); h != "" {
			label = strings.TrimSuffix(h, ":")
		}
		sections[label] = append(sections[label], content)
	}
	if !parsed {
		return strings.TrimSpace(report)
	}

	var out []string
	out = append(out, sections["Messages"]...)
	out = append(out, sections["Error"]...)
	return strings.TrimSpace(strings.Join(out, "\n"))
}
