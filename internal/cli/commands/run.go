package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"suiterun/internal/config"
	"suiterun/internal/discovery"
	"suiterun/internal/domain"
	"suiterun/internal/execution"
	"suiterun/internal/report"
	"suiterun/internal/storage"
	"suiterun/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	loader    *SuiteLoader
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
	logger    logrus.FieldLogger
	out       io.Writer
	errOut    io.Writer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	loader *SuiteLoader,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
	logger logrus.FieldLogger,
	out, errOut io.Writer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
		logger:    logger,
		out:       out,
		errOut:    errOut,
	}
}

// Execute runs the command. A run with failed assertions returns
// *execution.FailuresError.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := rc.selectSuites()
	if err != nil {
		return err
	}

	verbosity := rc.config.GetVerbosity()
	total := domain.CountTests(suites)
	if total == 0 {
		if verbosity != config.VerbositySilent {
			color.New(color.FgYellow).Fprintln(rc.out, "No tests to execute")
		}
		return nil
	}

	runner := execution.NewRunner(execution.Options{
		FailFast: rc.config.FailFast,
		Repeat:   rc.config.Repeat,
	}, rc.logger)

	// Progress bar and per-test lines would interleave; verbose wins
	var progress *ui.ProgressBar
	showProgress := rc.config.Progress &&
		(verbosity == config.VerbosityNormal || verbosity == config.VerbosityMinimal)
	if showProgress {
		progress = ui.NewProgressBar(total*rc.config.Repeat, rc.errOut)
		runner.AddObserver(progress)
	} else {
		runner.AddObserver(ui.NewStatusPrinter(rc.out, verbosity))
	}

	results := runner.Run(cmd.Context(), suites)
	if progress != nil {
		progress.Finish()
	}

	// An interrupted run is incomplete; keep the previous summary for --failed
	if err := cmd.Context().Err(); err != nil {
		executed := 0
		for _, r := range results {
			executed += len(r.Tests())
		}
		rc.logger.WithField("executed", executed).Warn("run interrupted, results not saved")
		return fmt.Errorf("run interrupted after %d of %d test(s): %w", executed, total*rc.config.Repeat, err)
	}

	failures := report.CollectFailures(results)
	summary := report.BuildSummary(results, failures, time.Now())

	if err := rc.storage.Save(summary); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}
	if err := rc.writeReports(results); err != nil {
		return err
	}

	if err := rc.formatter.PrintSummary(summary); err != nil {
		return err
	}

	if rc.config.Flags.OpenFailures && len(failures) > 0 {
		if err := rc.viewer.View(summary); err != nil {
			return err
		}
	}

	return execution.CheckResults(results)
}

func (rc *RunCommand) selectSuites() ([]*domain.Suite, error) {
	suites, err := rc.loader.Load()
	if err != nil {
		return nil, err
	}

	suites = rc.filter.FilterByName(suites, rc.config.Filter)

	if rc.config.Flags.OnlyFailed {
		last, err := rc.storage.Load()
		if err != nil {
			return nil, err
		}
		suites = rc.filter.FilterByPaths(suites, last.FailedPaths())
	}
	return suites, nil
}

func (rc *RunCommand) writeReports(results []*domain.RunResult) error {
	if rc.config.JUnitPath != "" {
		if err := report.WriteJUnitFile(rc.config.JUnitPath, results); err != nil {
			return fmt.Errorf("failed to write junit report: %w", err)
		}
		rc.logger.WithField("path", rc.config.JUnitPath).Info("junit report written")
	}

	if rc.config.MetricsFile != "" {
		m := report.NewMetrics()
		m.Observe(results)
		if err := m.WriteFile(rc.config.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		rc.logger.WithField("path", rc.config.MetricsFile).Info("metrics written")
	}
	return nil
}
