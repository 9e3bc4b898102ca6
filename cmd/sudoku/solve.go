package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudoku/grid"
	"github.com/katalvlaran/sudoku/solver"
)

var (
	solveTimeout time.Duration
	maxNodes     int
	profileCPU   bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle from a file or stdin",
		Long: `Solve reads one puzzle in the 9-line textual form and prints the
completed board, or "No solution" (exit status 1) when the search
exhausts every branch.

Examples:
  sudoku solve puzzle.txt
  sudoku solve < puzzle.txt
  sudoku solve --timeout 5s --max-nodes 1000000 puzzle.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort the search after this duration (0 = no limit)")
	solveCmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "Abort after visiting this many search nodes (0 = no limit)")
	solveCmd.Flags().BoolVar(&profileCPU, "profile", false, "Write a CPU profile to the current directory")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if profileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	// Puzzle source: first argument as a file name, else standard input.
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			log.WithError(err).Error("cannot open puzzle file")

			return err
		}
		defer f.Close()
		in = f
	}

	g, err := grid.Read(in)
	if err != nil {
		log.WithError(err).Error("cannot read puzzle")

		return err
	}
	log.WithField("givens", 81-g.Empties()).Debug("puzzle loaded")

	// Duplicate givens cannot be completed; say so up front, but let the
	// search deliver the verdict.
	if conf := g.Conflicts(); len(conf) > 0 {
		log.WithField("conflicts", len(conf)).Warn("puzzle has duplicate digits; expecting no solution")
	}

	var opts []solver.Option
	if solveTimeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
		defer cancel()
		opts = append(opts, solver.WithContext(ctx))
	}
	if maxNodes > 0 {
		opts = append(opts, solver.WithMaxNodes(maxNodes))
	}

	solution, stats, err := solver.Solve(g, opts...)
	log.WithFields(logrus.Fields{
		"nodes":    stats.Nodes,
		"forced":   stats.Forced,
		"duration": stats.Duration,
	}).Debug("search finished")

	switch {
	case err == nil:
		fmt.Fprint(cmd.OutOrStdout(), solution)

		return nil
	case errors.Is(err, solver.ErrNoSolution):
		fmt.Fprintln(cmd.OutOrStdout(), "No solution")

		return err
	default:
		log.WithError(err).Error("search aborted")

		return err
	}
}
