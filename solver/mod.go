// Package solver searches for a split of dice into two groups of equal force.
package solver

import (
	"errors"

	"parodin/game"
)

var (
	ErrNoSolution    = errors.New("no solution found")
	ErrTooManyPieces = errors.New("too many dice to search")
)

// Largest number of dice a mask can index
const MaxMaskBits = 62

// Partition is one way of splitting dice between two sides. Bit i of Mask
// is set when die i is on side A, clear when it is on side B.
type Partition struct {
	A    game.Group
	B    game.Group
	Mask uint64
}
