package game

import (
	"errors"
	"fmt"
)

var (
	ErrUnassigned       = errors.New("every die must be assigned to a side")
	ErrAssignmentLength = errors.New("assignment does not match dice")
)

// Side is where a player put a die.
type Side int

const (
	Unassigned Side = iota
	SideA
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "unassigned"
	}
}

// Verdict is the outcome of judging a proposed split
type Verdict struct {
	A        Group
	B        Group
	ForceA   int
	ForceB   int
	Balanced bool
}

// Judge splits dice by the player's assignment and compares the forces of both sides.
// sides[i] is the side of dice[i]; every die must be on A or B.
func Judge(dice Group, sides []Side) (Verdict, error) {
	if len(dice) != len(sides) {
		return Verdict{}, fmt.Errorf("%w: %d dice, %d sides", ErrAssignmentLength, len(dice), len(sides))
	}

	a, b := Group{}, Group{}
	for i, side := range sides {
		switch side {
		case SideA:
			a = append(a, dice[i])
		case SideB:
			b = append(b, dice[i])
		default:
			return Verdict{}, fmt.Errorf("%w: die %d (%s) is %s", ErrUnassigned, i, dice[i], side)
		}
	}
	return Compare(a, b), nil
}

// Compare scores both sides of a split.
func Compare(a, b Group) Verdict {
	forceA, forceB := Force(a), Force(b)
	return Verdict{
		A:        a,
		B:        b,
		ForceA:   forceA,
		ForceB:   forceB,
		Balanced: forceA == forceB,
	}
}
