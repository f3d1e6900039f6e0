package usecase

import "iter"

// findFirst returns the first element accepted by match, stopping the sequence there.
func findFirst[T any](seq iter.Seq[T], match func(T) bool) (T, bool) {
	for v := range seq {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// anyMatch reports whether any element is accepted by match.
func anyMatch[T any](seq iter.Seq[T], match func(T) bool) bool {
	_, ok := findFirst(seq, match)
	return ok
}

func countMatches[T any](seq iter.Seq[T], match func(T) bool) int {
	n := 0
	for v := range seq {
		if match(v) {
			n++
		}
	}
	return n
}
