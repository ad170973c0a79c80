package vector

// Iterator is a bidirectional cursor over a vector's live elements.
// It is a plain position reference: it owns nothing, performs no
// bounds checks, and stays valid only until the vector reallocates,
// shrinks, reverses, is assigned over, or is released.  Moving before
// Begin or past End, or dereferencing End, is undefined, mirroring
// raw pointer semantics.  Iterators compare with == on positional
// identity.
type Iterator[T any] struct {
	v   *Vector[T]
	pos uint
}

// Begin returns an iterator positioned at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v}
}

// End returns an iterator positioned one past the last live element.
// It is not dereferenceable.  Stepping backwards from End is the
// supported idiom for reverse traversal.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, pos: v.size}
}

// Value dereferences the iterator.
func (it Iterator[T]) Value() T {
	return it.v.data[it.pos]
}

// Ref returns a pointer to the referenced element for in-place
// mutation.
func (it Iterator[T]) Ref() *T {
	return &it.v.data[it.pos]
}

// Set overwrites the referenced element.
func (it Iterator[T]) Set(val T) {
	it.v.data[it.pos] = val
}

// Next advances the cursor one position.
func (it *Iterator[T]) Next() {
	it.pos++
}

// Prev retreats the cursor one position.
func (it *Iterator[T]) Prev() {
	it.pos--
}

// ConstIterator is the read-only counterpart of Iterator: the same
// cursor, without the mutating dereference.
type ConstIterator[T any] struct {
	v   *Vector[T]
	pos uint
}

// CBegin returns a read-only iterator positioned at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{v: v}
}

// CEnd returns a read-only iterator positioned one past the last live
// element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{v: v, pos: v.size}
}

// Value dereferences the iterator.
func (it ConstIterator[T]) Value() T {
	return it.v.data[it.pos]
}

// Next advances the cursor one position.
func (it *ConstIterator[T]) Next() {
	it.pos++
}

// Prev retreats the cursor one position.
func (it *ConstIterator[T]) Prev() {
	it.pos--
}
