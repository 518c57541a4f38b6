// Package challenge holds the book of fixed Par Odin puzzles and checks the solver against it.
package challenge

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"parodin/game"
	"parodin/meta"

	"gopkg.in/yaml.v3"
)

//go:embed challenges.yaml
var defaultBook []byte

// Challenge is a fixed draw of dice with its expected split.
// Solvable is false when no split of the dice balances.
type Challenge struct {
	ID       int
	Dice     game.Group
	Solution [2]game.Group
	Solvable bool
}

type challengeDoc struct {
	ID       int        `yaml:"id"`
	Dice     []string   `yaml:"dice"`
	Solution [][]string `yaml:"solution"`
}

// Load decodes a YAML list of challenges.
func Load(r io.Reader) ([]Challenge, error) {
	var docs []challengeDoc
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode challenges: %w", err)
	}

	challenges := make([]Challenge, 0, len(docs))
	seen := make(map[int]bool, len(docs))
	for _, doc := range docs {
		if seen[doc.ID] {
			return nil, fmt.Errorf("challenge %d: duplicate id", doc.ID)
		}
		seen[doc.ID] = true

		c, err := doc.challenge()
		if err != nil {
			return nil, fmt.Errorf("challenge %d: %w", doc.ID, err)
		}
		challenges = append(challenges, c)
	}
	return challenges, nil
}

func (doc challengeDoc) challenge() (Challenge, error) {
	dice, err := game.ParseGroup(doc.Dice)
	if err != nil {
		return Challenge{}, fmt.Errorf("invalid dice: %w", err)
	}
	c := Challenge{ID: doc.ID, Dice: dice}

	switch len(doc.Solution) {
	case 0:
		return c, nil
	case 2:
	default:
		return Challenge{}, fmt.Errorf("solution must have 2 sides, got %d", len(doc.Solution))
	}

	for i, side := range doc.Solution {
		c.Solution[i], err = game.ParseGroup(side)
		if err != nil {
			return Challenge{}, fmt.Errorf("invalid solution side %d: %w", i, err)
		}
	}
	if !game.SameMultiset(dice, game.Concat(c.Solution[0], c.Solution[1])) {
		return Challenge{}, fmt.Errorf("solution %s vs %s does not use exactly the dice %s", c.Solution[0], c.Solution[1], dice)
	}
	c.Solvable = true
	return c, nil
}

// Default returns the built-in challenge book. Every built-in challenge is a standard draw.
func Default() []Challenge {
	challenges, err := loadBook(defaultBook)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in challenges: %v", err))
	}
	return challenges
}

func loadBook(book []byte) ([]Challenge, error) {
	challenges, err := Load(bytes.NewReader(book))
	if err != nil {
		return nil, err
	}
	for _, c := range challenges {
		if len(c.Dice) != meta.DICE_PER_DRAW {
			return nil, fmt.Errorf("challenge %d: draws %d dice, want %d", c.ID, len(c.Dice), meta.DICE_PER_DRAW)
		}
	}
	return challenges, nil
}
