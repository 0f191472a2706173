package generator

import "math/rand/v2"

// pick returns a uniformly random element of set, copied out of the
// slice. An empty set is a programming error: the fixed tables in this
// package are never empty, so pick panics rather than returning an
// error.
func pick[T any](set []T) T {
	if len(set) == 0 {
		panic("generator: pick from empty set")
	}
	return set[rand.IntN(len(set))]
}
