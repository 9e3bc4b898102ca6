package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve 9x9 Sudoku puzzles",
	Long: `sudoku solves standard 9x9 Sudoku puzzles with constraint propagation
and recursive backtracking search.

Puzzles use the textual form: 9 lines, one character per cell, digits
1-9 for givens and a single space for an empty cell. Short lines are
padded with spaces; lines beyond the 9th are ignored.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the command tree; any failure exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
