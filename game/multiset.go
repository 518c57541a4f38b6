package game

// SameMultiset reports whether a and b hold the same dice, ignoring order.
// Dice are keyed by category and carried base value.
func SameMultiset(a, b Group) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[Piece]int, len(a))
	for _, p := range a {
		counts[p]++
	}
	for _, p := range b {
		if counts[p] == 0 {
			return false
		}
		counts[p]--
	}
	return true
}

// Concat returns a new group holding the dice of a followed by those of b.
func Concat(a, b Group) Group {
	out := make(Group, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
