package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

type Category int

const (
	Hero    Category = iota // 0
	Captain                 // 1
	Soldier                 // 2
	Cursed                  // 3
	Traitor                 // 4
	Mage                    // 5

	numCategories = int(Mage) + 1
)

// Special marks a category whose dice interact with the rest of their group
type Special int

const (
	NoSpecial      Special = iota
	NeutralizeHero         // each die cancels one hero in the same group
)

// CategoryConfig holds the fixed scoring rules of a category.
type CategoryConfig struct {
	BaseValue int
	Special   Special
}

var categoryConfigs = [numCategories]CategoryConfig{
	Hero:    {BaseValue: 3},
	Captain: {BaseValue: 2},
	Soldier: {BaseValue: 1},
	Cursed:  {BaseValue: -1},
	Traitor: {BaseValue: 1, Special: NeutralizeHero},
	Mage:    {BaseValue: 0}, // scores from group size instead, see Force
}

var categoryNames = [numCategories]string{
	Hero:    "hero",
	Captain: "captain",
	Soldier: "soldier",
	Cursed:  "cursed",
	Traitor: "traitor",
	Mage:    "mage",
}

// Config returns the scoring rules of c. c must be valid.
func Config(c Category) CategoryConfig {
	return categoryConfigs[c]
}

// Categories lists every category in declaration order.
func Categories() []Category {
	categories := make([]Category, numCategories)
	for i := range categories {
		categories[i] = Category(i)
	}
	return categories
}

func (c Category) Valid() bool {
	return c >= Hero && c <= Mage
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a category name to its Category, ignoring case and surrounding spaces.
func ParseCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == normalized {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
