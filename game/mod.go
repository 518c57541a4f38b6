// Package game models the dice of a Par Odin challenge and scores groups of them.
package game

import (
	"fmt"
	"strings"
)

// Evaluates a group of dice to its force. Order of the dice never matters.
type Evaluate func(Group) int

// Group is a collection of dice on one side of a split
type Group []Piece

// NewGroup builds a group holding one well-formed piece per category, in order
func NewGroup(categories ...Category) Group {
	group := make(Group, len(categories))
	for i, c := range categories {
		group[i] = NewPiece(c)
	}
	return group
}

// ParseGroup builds a group from category names, e.g. ["hero", "mage"]
func ParseGroup(names []string) (Group, error) {
	group := make(Group, 0, len(names))
	for i, name := range names {
		c, err := ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("cannot parse die %d: %w", i, err)
		}
		group = append(group, NewPiece(c))
	}
	return group, nil
}

func (g Group) String() string {
	names := make([]string, len(g))
	for i, p := range g {
		names[i] = p.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
