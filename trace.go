package vector

// Op identifies which ownership path a vector operation took.
// Surfacing this through a callback lets callers observe which path
// ran without coupling to console output.
type Op uint8

const (
	// OpClone is a deep copy into a fresh vector.
	OpClone Op = iota
	// OpMove is an O(1) ownership transfer into a fresh vector.
	OpMove
	// OpCopyAssign replaces an existing vector with a deep copy.
	OpCopyAssign
	// OpMoveAssign replaces an existing vector by stealing a buffer.
	OpMoveAssign
)

// TraceFn receives ownership operations as they execute.
type TraceFn func(Op)

func (op Op) String() string {
	switch op {
	case OpClone:
		return "clone"
	case OpMove:
		return "move"
	case OpCopyAssign:
		return "copy-assign"
	case OpMoveAssign:
		return "move-assign"
	}
	return "unknown"
}

// CountingTrace records how often each ownership operation ran.  The
// zero value is ready for use.
type CountingTrace struct {
	counts [4]uint
}

// Fn returns a TraceFn that records into t.
func (t *CountingTrace) Fn() TraceFn {
	return func(op Op) {
		if int(op) < len(t.counts) {
			t.counts[op]++
		}
	}
}

// Count reports how many times op ran.
func (t *CountingTrace) Count(op Op) uint {
	if int(op) >= len(t.counts) {
		return 0
	}
	return t.counts[op]
}

// Total reports how many ownership operations ran overall.
func (t *CountingTrace) Total() (n uint) {
	for _, c := range t.counts {
		n += c
	}
	return
}
