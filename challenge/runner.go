package challenge

import (
	"errors"
	"fmt"

	"parodin/game"
	"parodin/solver"

	"github.com/rs/zerolog/log"
)

type Result struct {
	Challenge Challenge
	Split     solver.Partition
	Metric    solver.SearchMetric
	Err       error // search error, nil when a split was found
	Passed    bool
}

func (r Result) String() string {
	status := "FAIL"
	if r.Passed {
		status = "ok"
	}
	if r.Err != nil {
		return fmt.Sprintf("#%d %s: %v", r.Challenge.ID, status, r.Err)
	}
	return fmt.Sprintf("#%d %s: %s (%d) vs %s (%d)", r.Challenge.ID, status,
		r.Split.A, game.Force(r.Split.A), r.Split.B, game.Force(r.Split.B))
}

// Run solves every challenge and compares each split with the expected one, side by side.
func Run(challenges []Challenge, s *solver.Solver) []Result {
	results := make([]Result, 0, len(challenges))
	passed := 0

	log.Info().Msgf("starting %d challenges...", len(challenges))

	for i, c := range challenges {
		log.Debug().Msgf("starting challenge %d of %d with dice %s", i+1, len(challenges), c.Dice)

		split, metric, err := s.Search(c.Dice)
		result := Result{Challenge: c, Split: split, Metric: metric, Err: err}
		result.Passed = check(c, split, err)
		if result.Passed {
			passed++
		} else {
			log.Warn().Msgf("challenge %d failed: %s", c.ID, result)
		}
		results = append(results, result)
	}

	log.Info().Msgf("completed challenges: %d of %d passed", passed, len(challenges))
	return results
}

func check(c Challenge, split solver.Partition, err error) bool {
	if !c.Solvable {
		return errors.Is(err, solver.ErrNoSolution)
	}
	if err != nil {
		return false
	}
	return game.SameMultiset(split.A, c.Solution[0]) && game.SameMultiset(split.B, c.Solution[1])
}
