package vector

// GrowthFn decides the capacity of the next allocation when a vector
// must grow.  It receives the current capacity and the minimum slot
// count the pending operation needs, and must return at least need.
// Implementations are pure functions.
type GrowthFn func(capacity, need uint) uint

// DoubleCapacity is the default growth policy: an empty buffer grows
// to a single slot, everything else doubles.  The sequence of
// capacities under repeated appends is 0, 1, 2, 4, 8, ...
func DoubleCapacity(capacity, need uint) uint {
	next := capacity * 2
	if capacity == 0 {
		next = 1
	}
	if next < need {
		next = need
	}
	return next
}
