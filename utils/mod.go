package utils

import "golang.org/x/exp/constraints"

// CountFunc returns the number of items in slice satisfying match
func CountFunc[T any](slice []T, match func(T) bool) int {
	count := 0
	for _, v := range slice {
		if match(v) {
			count++
		}
	}
	return count
}

// SumFunc adds up value(v) for every item in slice
func SumFunc[T any, N constraints.Integer | constraints.Float](slice []T, value func(T) N) N {
	var total N
	for _, v := range slice {
		total += value(v)
	}
	return total
}
