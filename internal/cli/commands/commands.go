package commands

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"suiterun/internal/cli"
	"suiterun/internal/config"
	"suiterun/internal/discovery"
	"suiterun/internal/logging"
	"suiterun/internal/registry"
	"suiterun/internal/storage"
	"suiterun/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand

	logger *logrus.Logger
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *logrus.Logger, out, errOut io.Writer) *Commands {
	// Initialize dependencies
	parser := discovery.NewParser()
	filter := discovery.NewFilter()
	loader := NewSuiteLoader(cfg, parser, registry.Builtin, logger)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, out)
	errorViewer := ui.NewErrorViewer(jsonStorage, logger, out)

	return &Commands{
		Run:      NewRunCommand(cfg, loader, filter, jsonStorage, formatter, errorViewer, logger, out, errOut),
		List:     NewListCommand(cfg, loader, filter, formatter, jsonStorage, out),
		Failures: NewFailuresCommand(jsonStorage, errorViewer),
		logger:   logger,
	}
}

// Register registers all commands with cobra. Invoking the root command
// without a subcommand behaves like run.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.ProjectPath, "project", "C", "", "Project directory (config, suites and results are resolved from it)")
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML config file (default: <project>/"+config.DefaultConfigFile+" when present)")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", "", "Log format (text or json)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return logging.Configure(c.logger, cfg.LogLevel, cfg.LogFormat)
	}

	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.Run.Execute
	bindRunFlags(rootCmd.Flags(), flags)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run all registered suites",
		Long:  "Build the registered suites, run every test in registration order and exit non-zero when an assertion fails",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	bindRunFlags(runCmd.Flags(), flags)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered suites",
		Long:  "Print the suite and case tree without running anything",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by name pattern (e.g. 'Example.*' or '*-*.slow_*')")
	listCmd.Flags().StringVarP(&flags.SuitesDir, "suites-dir", "s", "", "Directory to load *.suite.yaml files from")
	listCmd.Flags().BoolVarP(&flags.ShowTests, "tests", "t", false, "List individual tests instead of cases")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failures of the last run interactively",
		Long:  "Display failures from the last run in an interactive viewer; R toggles a failure as resolved",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}

func bindRunFlags(fs *pflag.FlagSet, flags *cli.Flags) {
	fs.StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by name pattern (e.g. 'Example.*' or '*-*.slow_*')")
	fs.StringVarP(&flags.SuitesDir, "suites-dir", "s", "", "Directory to load *.suite.yaml files from")
	fs.BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failing test")
	fs.IntVarP(&flags.Repeat, "repeat", "r", 0, "Run every selected test this many times (default 1)")
	fs.BoolVar(&flags.OnlyFailed, "failed", false, "Run only tests that failed in the last run")
	fs.StringVarP(&flags.Verbosity, "verbosity", "v", "", "Output mode: silent, minimal, normal or verbose")
	fs.StringVar(&flags.JUnitPath, "junit", "", "Write a JUnit XML report to this path")
	fs.StringVar(&flags.MetricsFile, "metrics-file", "", "Write Prometheus text-format metrics to this path")
	fs.BoolVar(&flags.NoProgress, "no-progress", false, "Disable the progress bar")
	fs.BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
}

// NewRootCommand creates the suiterun command tree writing to out and errOut
func NewRootCommand(version string, out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "suiterun",
		Short:         "Test suite bootstrap runner",
		Long:          `Build named test suites, run every registered case in order and report the aggregate result as the exit status.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	logger := logrus.New()
	logger.SetOutput(errOut)

	// Create commands with dependencies
	cmds := NewCommands(cfg, logger, out, errOut)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	return rootCmd
}
