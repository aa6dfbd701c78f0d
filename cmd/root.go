package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel     string // Log verbosity level
	outputFormat string // Renderer for the trace and summary
	traceCSVPath string // Optional CSV export of the event trace
	traceDBPath  string // Optional SQLite database receiving the run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-time CPU scheduling simulator (FCFS, preemptive SJF, Round Robin)",
}

// runCmd simulates the description file given as its only argument
var runCmd = &cobra.Command{
	Use:   "run <description>",
	Short: "Run the scheduling simulation described by a file",
	Long: "Run the scheduling simulation described by a text (.in) or YAML (.yaml/.yml) description file.\n" +
		"The trace and summary are printed to stdout; nothing is printed if the description is invalid.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		if !isValidFormat(outputFormat) {
			logrus.Fatalf("Unknown output format %q; valid: %s", outputFormat, validFormatNames())
		}

		res, err := simulate(args[0])
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}

		// Render fully before writing so a failure never leaves partial output.
		var buf bytes.Buffer
		if err := render(&buf, outputFormat, res); err != nil {
			logrus.Fatalf("Rendering output failed: %v", err)
		}
		runID, err := writeTraces(res, traceCSVPath, traceDBPath)
		if err != nil {
			logrus.Fatalf("Writing trace failed: %v", err)
		}
		if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Writing output failed: %v", err)
		}
		// stderr, so the report on stdout stays unchanged
		if runID != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Stored run %s in %s\n", runID, traceDBPath)
		}

		logrus.Info("Simulation complete.")
	},
}

// validateCmd checks a description file without simulating it
var validateCmd = &cobra.Command{
	Use:   "validate <description>",
	Short: "Check a description file and report the first problem found",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		desc, err := loadDescription(args[0])
		if err != nil {
			logrus.Fatalf("Error: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d processes, %s, runfor %d)\n",
			args[0], desc.ProcessCount, algorithmLabel(desc.Algorithm, desc.Quantum), desc.RunFor)
	},
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&outputFormat, "format", formatText, "Output format ("+validFormatNames()+")")
	runCmd.Flags().StringVar(&traceCSVPath, "trace-csv", "", "Also write the event trace to this CSV file")
	runCmd.Flags().StringVar(&traceDBPath, "trace-db", "", "Also store the run and its events in this SQLite database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
