package game

import "parodin/utils"

// Counts holds the number of dice per category, indexed by Category
type Counts [numCategories]int

// Tally counts the dice of g by category.
func Tally(g Group) Counts {
	var counts Counts
	for _, p := range g {
		counts[p.Category]++
	}
	return counts
}

// Force scores a group of dice:
//   - every non-mage die adds its category's base value
//   - each neutralizing die (traitor) cancels one hero, pairing by count only
//   - every mage adds the number of non-mage dice in the group
//
// The result may be negative. An empty group scores 0.
func Force(g Group) int {
	counts := Tally(g)

	// Traitors and heroes pair off one to one, whichever ones they are
	neutralizers := utils.CountFunc(g, func(p Piece) bool {
		return Config(p.Category).Special == NeutralizeHero
	})
	neutralized := min(neutralizers, counts[Hero])

	mages := counts[Mage]
	nonMages := len(g) - mages

	total := utils.SumFunc(g, func(p Piece) int {
		if p.Category == Mage {
			return 0
		}
		return Config(p.Category).BaseValue
	})
	total -= neutralized * Config(Hero).BaseValue
	total += mages * nonMages

	return total
}
