package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/bitkit/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	logJSON bool
	logFile string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "bitctl",
	Short: "Format 32-bit integers and inspect their bits",
	Long: `bitctl renders 32-bit integers as fixed-width binary and hexadecimal text,
sets, clears and toggles single bits, extracts bit fields, and hex dumps
files or values. The check command runs a battery of known cases against
the formatters.`,
	Version:            "0.1.0",
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write log records as JSON")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append log records to this file instead of stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	closer, err := logger.Init(logger.Options{
		Enabled: !quiet,
		Output:  os.Stderr,
		LogFile: logFile,
		Level:   level,
		JSON:    logJSON,
	})
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	closeLog = closer
	logger.Debug("command started", "command", cmd.Name(), "args", args)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return closeLog()
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
