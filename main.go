package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"parodin/challenge"
	"parodin/game"
	"parodin/meta"
	"parodin/solver"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "parodin",
		Short:         "Split Par Odin dice into two armies of equal force",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(forceCmd(), solveCmd(), checkCmd(), challengesCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "parodin version %s\n", meta.VERSION)
		},
	})

	return cmd
}

func setupLogging(level string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func forceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "force DIE...",
		Short: "Print the force of a group of dice",
		RunE: func(cmd *cobra.Command, args []string) error {
			dice, err := game.ParseGroup(args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s force=%d\n", dice, game.Force(dice))
			return nil
		},
	}
}

func solveCmd() *cobra.Command {
	var maxPieces int

	cmd := &cobra.Command{
		Use:   "solve DIE...",
		Short: "Find the first split of the dice into two groups of equal force",
		RunE: func(cmd *cobra.Command, args []string) error {
			dice, err := game.ParseGroup(args)
			if err != nil {
				return err
			}

			s := solver.NewSolver(solver.WithMaxPieces(maxPieces), solver.WithMetrics())
			split, metric, err := s.Search(dice)
			log.Debug().Msgf("evaluated %d splits in %s", metric.Candidates, metric.Duration)
			if errors.Is(err, solver.ErrNoSolution) {
				return fmt.Errorf("no balanced split exists for %s: %w", dice, err)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "A: %s force=%d\n", split.A, game.Force(split.A))
			fmt.Fprintf(out, "B: %s force=%d\n", split.B, game.Force(split.B))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxPieces, "max-pieces", meta.MAX_PIECES, "Largest number of dice to search")

	return cmd
}

func checkCmd() *cobra.Command {
	var sides []string

	cmd := &cobra.Command{
		Use:   "check DIE... --sides A,B,...",
		Short: "Judge a proposed split, one side per die",
		RunE: func(cmd *cobra.Command, args []string) error {
			dice, err := game.ParseGroup(args)
			if err != nil {
				return err
			}
			assignment, err := parseSides(sides)
			if err != nil {
				return err
			}

			verdict, err := game.Judge(dice, assignment)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verdict.Balanced {
				fmt.Fprintf(out, "balanced: A=%d, B=%d\n", verdict.ForceA, verdict.ForceB)
			} else {
				fmt.Fprintf(out, "unbalanced: A=%d vs B=%d\n", verdict.ForceA, verdict.ForceB)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&sides, "sides", nil, "Side of each die: A, B or - for unassigned")

	return cmd
}

func parseSides(values []string) ([]game.Side, error) {
	sides := make([]game.Side, len(values))
	for i, v := range values {
		switch strings.ToUpper(strings.TrimSpace(v)) {
		case "A":
			sides[i] = game.SideA
		case "B":
			sides[i] = game.SideB
		case "-", "":
			sides[i] = game.Unassigned
		default:
			return nil, fmt.Errorf("invalid side %q for die %d", v, i)
		}
	}
	return sides, nil
}

func challengesCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Solve the challenge book and compare with the expected splits",
		RunE: func(cmd *cobra.Command, args []string) error {
			challenges := challenge.Default()
			if path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open challenges: %w", err)
				}
				defer f.Close()

				challenges, err = challenge.Load(f)
				if err != nil {
					return err
				}
			}

			failed := 0
			for _, r := range challenge.Run(challenges, solver.NewSolver(solver.WithMetrics())) {
				if !r.Passed {
					failed++
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d challenges failed", failed, len(challenges))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "Challenge book (YAML), defaults to the built-in one")

	return cmd
}
