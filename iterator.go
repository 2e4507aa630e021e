package bag

import (
	"fmt"

	e "github.com/meaningwell/go-bag/error"

	"github.com/go-errors/errors"
)

// Iterator walks a Bag's elements in insertion order. It sees the bag as it
// was when Iter was called; inserting into or removing from the bag while an
// iterator is live has unspecified effect on that iterator.
type Iterator[E any] struct {
	slots []slot[E]
	next  int
}

// Iter starts a fresh pass over the bag. Every call begins again at the first
// element.
func (b *Bag[E]) Iter() Iterator[E] {
	return Iterator[E]{slots: b.slots}
}

// Next returns the next element in insertion order, and false once the pass
// is exhausted.
func (it *Iterator[E]) Next() (E, bool) {
	if it.next >= len(it.slots) {
		var zero E
		return zero, false
	}

	value := it.slots[it.next].value
	it.next++

	return value, true
}

// Get returns the element at position index, 0-based in insertion order.
// An out-of-range index panics exactly like a slice access; the bounds check
// is the caller's job. See At for the error-returning flavor.
func (b *Bag[E]) Get(index int) E {
	return b.slots[index].value
}

// At returns the element at position index, or an error when index falls
// outside [0, Len()).
func (b *Bag[E]) At(index int) (E, error) {
	if index < 0 || index >= len(b.slots) {
		var zero E

		return zero, errors.Wrap(e.New(e.IndexOutOfRangeError, fmt.Sprintf("index %d with %d elements", index, len(b.slots))), 0)
	}

	return b.slots[index].value, nil
}

// Values returns the elements in insertion order. The slice is a copy;
// changing it does not touch the bag.
func (b *Bag[E]) Values() []E {
	values := make([]E, len(b.slots))

	for i := range b.slots {
		values[i] = b.slots[i].value
	}

	return values
}

// Each calls fn once per element, in insertion order.
func (b *Bag[E]) Each(fn func(E)) {
	for i := range b.slots {
		fn(b.slots[i].value)
	}
}
