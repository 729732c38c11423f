package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"suiterun/internal/config"
	"suiterun/internal/domain"
)

// Formatter formats and displays run summaries and test lists
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
	}
}

// PrintSummary displays the run summary. minimal prints the result line only,
// normal and verbose add the statistics table and the failed tests tree.
func (f *Formatter) PrintSummary(summary *domain.RunSummary) error {
	verbosity := f.config.GetVerbosity()
	if verbosity == config.VerbositySilent {
		return nil
	}

	meta := summary.Meta
	if verbosity.AtLeast(config.VerbosityNormal) {
		fmt.Fprintln(f.out)
		f.printStatsTable(meta)
	}

	// Print summary line
	fmt.Fprintln(f.out)
	if meta.FailedAssertions == 0 {
		color.New(color.FgGreen).Fprintf(f.out, "✓ All %d test(s) passed!\n", meta.TotalTests)
	} else {
		color.New(color.FgRed).Fprintf(f.out, "✗ %d test(s) failed with %d assertion failure(s)\n", meta.FailedTests, meta.FailedAssertions)
		if verbosity.AtLeast(config.VerbosityNormal) {
			fmt.Fprintln(f.out)
			f.printFailedTestsTree(summary.Details)
		}
	}
	if meta.Stopped {
		color.New(color.FgYellow).Fprintln(f.out, "! Run stopped early")
	}

	return nil
}

func (f *Formatter) printStatsTable(meta domain.RunSummaryMeta) {
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetTitle("Test Run Statistics")
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	t.AppendRows([]table.Row{
		{"Run ID", meta.RunID},
		{"Suites", meta.TotalSuites},
		{"Tests", meta.TotalTests},
		{"Passed Tests", meta.PassedTests},
		{"Failed Tests", meta.FailedTests},
		{"Failed Assertions", meta.FailedAssertions},
	})
	if meta.Iterations > 1 {
		t.AppendRow(table.Row{"Iterations", meta.Iterations})
	}
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Duration", fmt.Sprintf("%.3fs", meta.DurationSeconds)},
		{"Timestamp", meta.Timestamp},
	})
	t.Render()
}

// printFailedTestsTree prints failures grouped by suite and case, keeping
// the order in which they were recorded.
func (f *Formatter) printFailedTestsTree(failures []domain.TestFailure) {
	if len(failures) == 0 {
		return
	}

	type group struct {
		suite, tcase string
		failures     []domain.TestFailure
	}
	var groups []*group
	index := make(map[string]*group)
	for _, failure := range failures {
		key := failure.Suite + "." + failure.Case
		g, ok := index[key]
		if !ok {
			g = &group{suite: failure.Suite, tcase: failure.Case}
			index[key] = g
			groups = append(groups, g)
		}
		g.failures = append(g.failures, failure)
	}

	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)
	for i, g := range groups {
		isLastGroup := i == len(groups)-1
		connector, childPrefix := "├── ", "│   "
		if isLastGroup {
			connector, childPrefix = "└── ", "    "
		}
		cyan.Fprintf(f.out, "%s%s.%s\n", connector, g.suite, g.tcase)

		for j, failure := range g.failures {
			caseConnector := "├── "
			if j == len(g.failures)-1 {
				caseConnector = "└── "
			}
			name := failure.Test
			if failure.Iteration > 0 {
				name = fmt.Sprintf("%s (iteration %d)", name, failure.Iteration)
			}
			if failure.Resolved {
				fmt.Fprintf(f.out, "%s%s%s\n", childPrefix, caseConnector, color.HiBlackString("✓ "+name))
				continue
			}
			red.Fprintf(f.out, "%s%s%s\n", childPrefix, caseConnector, name)
		}
	}
}

// PrintTestList prints the registered suites as a tree, optionally down to tests.
// failedPaths is optional; tests (or cases) holding a failed path from the last run are marked with [F].
func (f *Formatter) PrintTestList(suites []*domain.Suite, showTests bool, failedPaths map[string]struct{}) error {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d suite(s) with %d test(s):\n\n", len(suites), domain.CountTests(suites))

	failMarker := func(failed bool) string {
		if failed {
			return " " + color.RedString("[F]")
		}
		return ""
	}

	cyan := color.New(color.FgCyan)
	for i, s := range suites {
		isLastSuite := i == len(suites)-1
		suiteConnector, suitePrefix := "├── ", "│   "
		if isLastSuite {
			suiteConnector, suitePrefix = "└── ", "    "
		}
		cyan.Fprintf(f.out, "%s%s\n", suiteConnector, s.Name)

		for j, c := range s.Cases {
			isLastCase := j == len(s.Cases)-1
			caseConnector, casePrefix := "├── ", "│   "
			if isLastCase {
				caseConnector, casePrefix = "└── ", "    "
			}

			caseFailed := false
			for _, t := range c.Tests {
				if _, ok := failedPaths[domain.TestPath{Suite: s.Name, Case: c.Name, Test: t.Name}.String()]; ok {
					caseFailed = true
					break
				}
			}

			label := fmt.Sprintf("%s (%d)", c.Name, len(c.Tests))
			if showTests {
				label = c.Name
			}
			fmt.Fprintf(f.out, "%s%s%s%s\n", suitePrefix, caseConnector, color.YellowString(label), failMarker(caseFailed && !showTests))

			if !showTests {
				continue
			}
			if len(c.Tests) == 0 {
				fmt.Fprintf(f.out, "%s%s└── %s\n", suitePrefix, casePrefix, color.RedString("(no tests registered)"))
				continue
			}
			for k, t := range c.Tests {
				testConnector := "├── "
				if k == len(c.Tests)-1 {
					testConnector = "└── "
				}
				_, failed := failedPaths[domain.TestPath{Suite: s.Name, Case: c.Name, Test: t.Name}.String()]
				fmt.Fprintf(f.out, "%s%s%s%s%s\n", suitePrefix, casePrefix, testConnector, t.Name, failMarker(failed))
			}
		}
	}

	return nil
}
