package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"suiterun/internal/config"
	"suiterun/internal/discovery"
	"suiterun/internal/storage"
	"suiterun/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	loader    *SuiteLoader
	filter    *discovery.Filter
	formatter *ui.Formatter
	storage   storage.Storage
	out       io.Writer
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	loader *SuiteLoader,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
	out io.Writer,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		loader:    loader,
		filter:    filter,
		formatter: formatter,
		storage:   st,
		out:       out,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	suites, err := lc.loader.Load()
	if err != nil {
		return err
	}

	// Filter tests
	suites = lc.filter.FilterByName(suites, lc.config.Filter)

	if len(suites) == 0 {
		color.New(color.FgYellow).Fprintln(lc.out, "No tests found")
		return nil
	}

	// Mark failures from the last run when there is one
	var failedPaths map[string]struct{}
	if last, err := lc.storage.Load(); err == nil {
		failedPaths = last.FailedPaths()
	}

	return lc.formatter.PrintTestList(suites, lc.config.Flags.ShowTests, failedPaths)
}
