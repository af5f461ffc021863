package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// Max returns the largest value in slice, or the zero value if slice is empty.
func Max[T constraints.Ordered](slice []T) T {
	var best T
	for i, v := range slice {
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}
