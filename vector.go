// package vector implements a generic growable contiguous
// container which supports:
//  1. amortized constant time append with a pluggable growth policy
//  2. explicit ownership transfer (deep clone and O(1) move)
//  3. bidirectional cursor iteration
//  4. a versioned binary serialization format
package vector

import "fmt"

// Vector is a growable contiguous container of T.  It owns at most
// one buffer at a time; len(data) is the allocated capacity and size
// counts the live prefix.  The zero value is not ready for use,
// construct through New, NewWithConfig or Of.
type Vector[T any] struct {
	data   []T
	size   uint
	config Config
}

// New returns an empty vector with the default configuration.  No
// buffer is allocated until the first append.
func New[T any]() *Vector[T] {
	return NewWithConfig[T](DefaultConfig)
}

// NewWithConfig returns an empty vector using the supplied
// configuration.  A nil growth policy falls back to the default.
func NewWithConfig[T any](c Config) *Vector[T] {
	if c.Growth == nil {
		c.Growth = DefaultConfig.Growth
	}
	return &Vector[T]{config: c}
}

// Of builds a vector from a literal sequence.  Each value is appended
// through the normal growth path, so the final capacity is whatever
// the growth policy produced along the way rather than a single exact
// allocation.
func Of[T any](vals ...T) *Vector[T] {
	v := New[T]()
	for _, val := range vals {
		v.Push(val)
	}
	return v
}

// Len reports the number of live elements.
func (v *Vector[T]) Len() uint {
	return v.size
}

// Cap reports the allocated slot count.
func (v *Vector[T]) Cap() uint {
	return uint(len(v.data))
}

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Clone returns a deep copy.  The new vector allocates a buffer sized
// to the source's capacity (not its size) and copies the live elements
// in order.  A vector that never allocated clones to one that never
// allocated.  The two vectors are fully independent afterwards.
func (v *Vector[T]) Clone() *Vector[T] {
	v.config.trace(OpClone)
	cpy := &Vector[T]{size: v.size, config: v.config}
	if v.data != nil {
		cpy.data = make([]T, len(v.data))
		for i := uint(0); i < v.size; i++ {
			cpy.data[i] = v.data[i]
		}
	}
	return cpy
}

// Move transfers ownership of the buffer to a new vector and resets
// the receiver to the empty state.  No element-wise work is performed.
func (v *Vector[T]) Move() *Vector[T] {
	v.config.trace(OpMove)
	cpy := &Vector[T]{data: v.data, size: v.size, config: v.config}
	v.data = nil
	v.size = 0
	return cpy
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// A replacement buffer at src's capacity is built first, then swapped
// in over the old one.  Self-assignment is a no-op and performs no
// allocation.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	v.config.trace(OpCopyAssign)
	if v == src {
		return
	}
	var data []T
	if src.data != nil {
		data = make([]T, len(src.data))
		for i := uint(0); i < src.size; i++ {
			data[i] = src.data[i]
		}
	}
	v.data = data
	v.size = src.size
}

// MoveFrom steals src's buffer, releasing whatever the receiver held,
// and resets src to the empty state.  Self-assignment is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.config.trace(OpMoveAssign)
	if v == src {
		return
	}
	v.data = src.data
	v.size = src.size
	src.data = nil
	src.size = 0
}

// Release drops the owned buffer and resets the vector to the empty
// state.  Releasing an already-empty vector has no effect.  The vector
// remains usable afterwards.
func (v *Vector[T]) Release() {
	v.data = nil
	v.size = 0
}

// resizeCapacity reallocates the buffer to exactly n slots, moving the
// live elements over in index order.  A request below the live count
// is clamped up so elements are never dropped.  Every growth and
// shrink path funnels through here.
func (v *Vector[T]) resizeCapacity(n uint) {
	if n < v.size {
		n = v.size
	}
	data := make([]T, n)
	for i := uint(0); i < v.size; i++ {
		data[i] = v.data[i]
	}
	v.data = data
}

// Push appends val, growing the buffer via the configured growth
// policy when full.  Amortized O(1).
func (v *Vector[T]) Push(val T) {
	if v.size == v.Cap() {
		v.resizeCapacity(v.config.Growth(v.Cap(), v.size+1))
	}
	v.data[v.size] = val
	v.size++
}

// Pop removes the last element.  The vacated slot is not cleared, its
// old value stays in the buffer until overwritten.  Returns
// ErrEmptyVector when there is nothing to remove.
func (v *Vector[T]) Pop() error {
	if v.size == 0 {
		return fmt.Errorf("pop: %w", ErrEmptyVector)
	}
	v.size--
	return nil
}

// Reserve grows the buffer to hold at least n elements.  Requests at
// or below the current capacity are ignored.
func (v *Vector[T]) Reserve(n uint) {
	if n <= v.Cap() {
		return
	}
	v.resizeCapacity(n)
}

// ShrinkToFit reallocates so that capacity equals size.  A vector that
// is already tight is left alone.
func (v *Vector[T]) ShrinkToFit() {
	if v.size == v.Cap() {
		return
	}
	v.resizeCapacity(v.size)
}

// Clear logically empties the vector.  Capacity and buffer are kept,
// and the old elements stay physically present beyond the new size
// until overwritten.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reverse reorders the live elements back to front.  A fresh buffer of
// the current capacity is populated in reverse index order and swapped
// in, so capacity is preserved.  Vectors of one or zero elements are
// left alone.
func (v *Vector[T]) Reverse() {
	if v.size <= 1 {
		return
	}
	data := make([]T, len(v.data))
	for i := uint(0); i < v.size; i++ {
		data[i] = v.data[v.size-1-i]
	}
	v.data = data
}

// Get returns the element at ix, or ErrOutOfRange when ix is not
// below the live count.
func (v *Vector[T]) Get(ix uint) (val T, err error) {
	if ix >= v.size {
		err = fmt.Errorf("index %d with size %d: %w", ix, v.size, ErrOutOfRange)
		return
	}
	return v.data[ix], nil
}

// Ref returns a pointer to the element at ix for in-place mutation.
// The pointer is only good until the next operation that reallocates
// the buffer.
func (v *Vector[T]) Ref(ix uint) (*T, error) {
	if ix >= v.size {
		return nil, fmt.Errorf("index %d with size %d: %w", ix, v.size, ErrOutOfRange)
	}
	return &v.data[ix], nil
}

// Set overwrites the element at ix.
func (v *Vector[T]) Set(ix uint, val T) error {
	if ix >= v.size {
		return fmt.Errorf("index %d with size %d: %w", ix, v.size, ErrOutOfRange)
	}
	v.data[ix] = val
	return nil
}

// Each calls cb once per live element in index order.
func (v *Vector[T]) Each(cb func(ix uint, val T)) {
	for i := uint(0); i < v.size; i++ {
		cb(i, v.data[i])
	}
}

// Find returns the index of the first live element satisfying match.
func (v *Vector[T]) Find(match func(T) bool) (uint, bool) {
	for i := uint(0); i < v.size; i++ {
		if match(v.data[i]) {
			return i, true
		}
	}
	return 0, false
}
