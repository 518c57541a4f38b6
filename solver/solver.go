package solver

import (
	"fmt"

	"parodin/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Solver)

// Solver runs an exhaustive search over all 2^n splits of its input.
// It holds no state between searches.
type Solver struct {
	maxPieces    int
	evaluate     game.Evaluate
	newCollector func() MetricsCollector
}

// WithMaxPieces refuses inputs longer than limit instead of searching them.
// Limits above MaxMaskBits are lowered to it.
func WithMaxPieces(limit int) Option {
	return func(s *Solver) {
		if limit > 0 {
			s.maxPieces = min(limit, MaxMaskBits)
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Solver) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Solver) {
		s.newCollector = NewMetricsCollector
	}
}

func NewSolver(options ...Option) *Solver {
	s := &Solver{ // Default values
		maxPieces:    MaxMaskBits,
		evaluate:     game.Force,
		newCollector: NewNoMetricsCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var defaultSolver = NewSolver()

// FindBalancedSplit returns the first split of pieces, in mask order, whose
// sides have equal force, or ErrNoSolution.
func FindBalancedSplit(pieces game.Group) (Partition, error) {
	return defaultSolver.FindBalancedSplit(pieces)
}

func (s *Solver) FindBalancedSplit(pieces game.Group) (Partition, error) {
	p, _, err := s.Search(pieces)
	return p, err
}

// Search is FindBalancedSplit that also reports search metrics when the
// solver was built WithMetrics.
func (s *Solver) Search(pieces game.Group) (Partition, SearchMetric, error) {
	if len(pieces) > s.maxPieces {
		return Partition{}, SearchMetric{}, fmt.Errorf("%w: %d dice, limit is %d", ErrTooManyPieces, len(pieces), s.maxPieces)
	}

	metrics := s.newCollector()
	metrics.Start(len(pieces))

	total := NumPartitions(len(pieces))
	log.Debug().Msgf("searching %d splits of %s", total, pieces)

	for mask := uint64(0); mask < total; mask++ {
		metrics.AddCandidate()
		p := Split(pieces, mask)
		if s.evaluate(p.A) == s.evaluate(p.B) {
			metrics.Found()
			log.Debug().Msgf("found balanced split %s vs %s at mask %d", p.A, p.B, mask)
			return p, metrics.Complete(), nil
		}
	}

	log.Debug().Msgf("no balanced split among %d splits", total)
	return Partition{}, metrics.Complete(), ErrNoSolution
}
