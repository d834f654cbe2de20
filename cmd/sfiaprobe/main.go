// Package main provides the CLI entry point for sfiaprobe.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sfiaprobe-go/pkg/probe"
	"github.com/ukaji3/sfiaprobe-go/pkg/probe/output"
)

var (
	opts       = probe.DefaultOptions()
	reportPath string
	pretty     bool
	logLevel   string
	logFormat  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts = probe.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "sfiaprobe",
		Short: "Smoke-test the SFIA question answering command with small models",
		Long: `sfiaprobe checks the document folder for an Excel file, then runs the
SFIA question answering command with each candidate model in turn until one
answers within the wait ceiling.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.Folder, "doc-folder", opts.Folder, "Folder holding the SFIA Excel file")
	flags.StringVar(&opts.Question, "question", opts.Question, "Question passed to the command")
	flags.StringArrayVar(&opts.Models, "model", opts.Models, "Candidate model, repeatable, tried in order")
	flags.StringArrayVar(&opts.Command, "command", opts.Command, "Command under test and its leading arguments, repeatable")
	flags.DurationVar(&opts.Budget, "budget", opts.Budget, "Processing budget requested from the command (--timeout)")
	flags.DurationVar(&opts.Wait, "wait", opts.Wait, "Hard ceiling on a single invocation")
	flags.BoolVar(&opts.Inspect, "inspect", opts.Inspect, "Summarize the sheets of the discovered workbook (reads every row)")
	flags.StringVar(&reportPath, "report", "", "Write a JSON run report to this path")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	flags.StringVar(&logLevel, "log-level", "warn", "Diagnostic log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "Diagnostic log format: text or json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel, logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	runner := probe.NewRunner(opts, probe.ExecInvoker{}, cmd.OutOrStdout(), logger)
	report, err := runner.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if winner, ok := report.Winner(); ok {
		logger.Info("Probe succeeded.", "model", winner.Model, "elapsed", winner.Elapsed)
	} else {
		logger.Info("Probe finished without success.", "status", report.Status, "error", report.Error)
	}

	// Report write failures are logged, not returned.
	if reportPath != "" {
		if err := output.WriteFile(reportPath, report, pretty); err != nil {
			logger.Error("Failed to write report.", "path", reportPath, "error", err)
		}
	}

	return nil
}
