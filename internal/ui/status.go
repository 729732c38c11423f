package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"suiterun/internal/config"
	"suiterun/internal/domain"
)

// StatusPrinter writes per-test status lines according to the verbosity.
// verbose prints every test, normal prints failed assertions only.
type StatusPrinter struct {
	w         io.Writer
	verbosity config.Verbosity
}

// NewStatusPrinter creates a new StatusPrinter
func NewStatusPrinter(w io.Writer, verbosity config.Verbosity) *StatusPrinter {
	return &StatusPrinter{w: w, verbosity: verbosity}
}

// TestStarted prints the RUN line in verbose mode
func (p *StatusPrinter) TestStarted(path domain.TestPath) {
	if p.verbosity != config.VerbosityVerbose {
		return
	}
	color.New(color.FgGreen).Fprint(p.w, "[ RUN      ]")
	fmt.Fprintf(p.w, " %s\n", path)
}

// TestFinished prints failed assertions and, in verbose mode, the outcome line
func (p *StatusPrinter) TestFinished(result domain.TestResult) {
	if !p.verbosity.AtLeast(config.VerbosityNormal) {
		return
	}

	for _, a := range result.Assertions {
		if a.Passed {
			continue
		}
		location := result.Path.String()
		if a.File != "" {
			location = fmt.Sprintf("%s:%d", a.File, a.Line)
		}
		color.New(color.FgRed).Fprintf(p.w, "%s: Failure in %s\n", location, result.Path)
		fmt.Fprintf(p.w, "  %s\n", a.Message)
	}

	if p.verbosity != config.VerbosityVerbose {
		return
	}

	elapsed := result.Duration.Milliseconds()
	if result.Passed() {
		color.New(color.FgGreen).Fprint(p.w, "[       OK ]")
	} else {
		color.New(color.FgRed).Fprint(p.w, "[  FAILED  ]")
	}
	fmt.Fprintf(p.w, " %s (%d ms)\n", result.Path, elapsed)
}
