package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"suiterun/internal/cli"
	"suiterun/internal/cli/commands"
	"suiterun/internal/execution"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := commands.NewRootCommand(version, os.Stdout, os.Stderr)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	// Failed assertions were already reported by the run summary
	var fe *execution.FailuresError
	if err != nil && !errors.As(err, &fe) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
