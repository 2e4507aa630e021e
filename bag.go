// Package bag implements an insertion-ordered, duplicate-tolerant container
// with token-based removal. Elements carry no comparability requirement:
// Insert hands back an opaque Token, and that Token is the only way to remove
// the exact occurrence it was minted for. The shape fits observer and
// subscription lists, where values repeat and teardown must be idempotent.
package bag

import (
	"golang.org/x/exp/slices"
)

// defaultWindow is how many of the newest slots Remove scans before falling
// back to binary search. Removal skews heavily toward recently inserted
// elements: subscriptions are usually torn down shortly after they are set
// up.
const defaultWindow = 5

// slot pairs one inserted value with the token that removes it. A slot never
// changes after creation.
type slot[E any] struct {
	value E
	token Token
}

// Bag is an insertion-ordered collection of values that may repeat. The zero
// value is an empty bag ready for use.
//
// A Bag must not be copied after first use, and it does no locking of its
// own: concurrent mutation of one instance needs external synchronization.
type Bag[E any] struct {
	// slots stays sorted by ascending token: tokens come out of mint in
	// strictly increasing order and appends only ever happen at the tail.
	// The binary search in Remove depends on this.
	slots  []slot[E]
	last   uint64 // highest token value minted by this bag
	window int    // 0 means defaultWindow
}

// Optional parameters for constructing a Bag.
type BagParams struct {
	capacity int
	window   int
}

// Creates a new BagParams using the given parameters. capacity pre-sizes the
// bag; window sets how many of the newest slots Remove scans before binary
// searching. Zero means "use the default" for either.
func NewBagParams(capacity int, window int) BagParams {
	return BagParams{capacity: capacity, window: window}
}

// Creates a new, empty BagParams.
func NewEmptyBagParams() BagParams {
	return BagParams{}
}

type bagInterface[E any] interface {
	Insert(value E) Token
	Remove(token Token)
	Len() int
	IsEmpty() bool
	Clear()
	Get(index int) E
	At(index int) (E, error)
	Values() []E
	Each(fn func(E))
	Iter() Iterator[E]
}

// Creates a new, empty Bag.
func New[E any](params ...BagParams) *Bag[E] {
	bag := &Bag[E]{}

	if len(params) > 0 {
		params := params[0]

		if params.capacity > 0 {
			bag.slots = make([]slot[E], 0, params.capacity)
		}

		if params.window > 0 {
			bag.window = params.window
		}
	}

	return bag
}

// Insert adds value to the bag and returns the Token that removes this exact
// occurrence again. Duplicates are welcome; every insertion gets its own
// token.
func (b *Bag[E]) Insert(value E) Token {
	token := b.mint()

	b.slots = append(b.slots, slot[E]{value: value, token: token})

	return token
}

// Remove deletes the element that was inserted under token, keeping the
// remaining elements in order. A token that matches nothing (already used, or
// never minted by this bag) removes nothing, so teardown paths may run twice
// without guarding.
func (b *Bag[E]) Remove(token Token) {
	n := len(b.slots)

	lo := n - b.searchWindow()
	if lo < 0 {
		lo = 0
	}

	// Fast path: check the newest slots first.
	for i := n - 1; i >= lo; i-- {
		if b.slots[i].token == token {
			b.deleteAt(i)
			return
		}
	}

	// Slow path: the rest of the slice is sorted by ascending token.
	i, found := slices.BinarySearchFunc(b.slots[:lo], token, func(s slot[E], t Token) int {
		return s.token.Compare(t)
	})

	if found {
		b.deleteAt(i)
	}
}

func (b *Bag[E]) searchWindow() int {
	if b.window > 0 {
		return b.window
	}

	return defaultWindow
}

// deleteAt closes the gap at index i, preserving the order of the survivors.
func (b *Bag[E]) deleteAt(i int) {
	n := len(b.slots)

	copy(b.slots[i:], b.slots[i+1:])
	b.slots[n-1] = slot[E]{} // clear the vacated slot so the element can be collected
	b.slots = b.slots[:n-1]
}

// Len returns how many elements the bag currently holds.
func (b *Bag[E]) Len() int {
	return len(b.slots)
}

// IsEmpty reports whether the bag holds no elements.
func (b *Bag[E]) IsEmpty() bool {
	return len(b.slots) == 0
}

// Clear discards every element at once. Tokens minted afterwards still come
// out strictly greater than the ones handed out before the clear.
func (b *Bag[E]) Clear() {
	b.slots = nil
}
