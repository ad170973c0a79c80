package vector

import "fmt"

// Config controls the behavior of a vector.  The zero value selects
// the defaults.
type Config struct {
	// Growth is consulted whenever an append finds the buffer full.
	// Nil selects DoubleCapacity.
	Growth GrowthFn
	// Trace, when non-nil, is invoked once for every ownership
	// operation (clone, move, copy-assign, move-assign) with the
	// operation that ran.  Tests use it to assert which path
	// executed; production code normally leaves it nil.
	Trace TraceFn
}

// DefaultConfig is the configuration used by New.  By default vectors
// double their capacity when full and emit no trace events.
var DefaultConfig = Config{
	Growth: DoubleCapacity,
	Trace:  nil,
}

func (c *Config) trace(op Op) {
	if c.Trace != nil {
		c.Trace(op)
	}
}

// CapacitySequence reports the capacities a growth policy would step
// through while appending n elements into an initially empty vector.
// Useful for explaining allocation behavior ahead of time.
func (c *Config) CapacitySequence(n uint) []uint {
	growth := c.Growth
	if growth == nil {
		growth = DefaultConfig.Growth
	}
	var steps []uint
	capacity := uint(0)
	for size := uint(0); size < n; size++ {
		if size == capacity {
			capacity = growth(capacity, size+1)
			steps = append(steps, capacity)
		}
	}
	return steps
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}
