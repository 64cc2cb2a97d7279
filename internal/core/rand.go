package core

// Rand is the source of every random draw in the simulation.
// *math/rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Intn(n int) int
}

// RandRange returns a uniform integer in [lo, hi). Returns lo for empty ranges.
func RandRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Chance returns true with the given percent probability.
func Chance(r Rand, percent int) bool {
	return r.Intn(100) < percent
}

// Choice picks one element of items uniformly. Panics on an empty slice.
func Choice[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
