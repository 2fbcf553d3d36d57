package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "doxgraph",
	Short: "Build a node graph from Doxygen XML output",
	Long: `doxgraph ingests the XML document set generated by Doxygen for a C
codebase and builds a flat collection of typed nodes (files, groups,
structs/unions, functions) with cross-references resolved by id, then
serializes the collection as JSON.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newLogger builds the diagnostic logger. Diagnostics go to stderr so they
// never mix with the JSON document on stdout.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}
