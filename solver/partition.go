package solver

import "parodin/game"

// Split places every die of pieces on side A or B according to mask.
// Both sides keep the input order and the input is not modified.
func Split(pieces game.Group, mask uint64) Partition {
	p := Partition{A: game.Group{}, B: game.Group{}, Mask: mask}
	for i, piece := range pieces {
		if mask&(1<<i) != 0 {
			p.A = append(p.A, piece)
		} else {
			p.B = append(p.B, piece)
		}
	}
	return p
}

// NumPartitions returns 2^n, the number of splits of n dice.
func NumPartitions(n int) uint64 {
	return uint64(1) << n
}

// Partitions lists every split of pieces in mask order, 0 through 2^n-1.
// The list doubles with every die: 7 dice give 128 splits, 20 give over a million.
func Partitions(pieces game.Group) []Partition {
	total := NumPartitions(len(pieces))
	result := make([]Partition, 0, total)
	for mask := uint64(0); mask < total; mask++ {
		result = append(result, Split(pieces, mask))
	}
	return result
}
