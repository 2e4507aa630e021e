// Package hashbag implements a counting multiset: a value-keyed bag that
// tracks how many times each key was inserted, with no memory of insertion
// order. It complements the ordered, token-addressed Bag when only
// multiplicities matter.
package hashbag

type HashBag[K comparable] map[K]uint32

func New[K comparable]() HashBag[K] {
	return make(map[K]uint32)
}

// Collect builds a HashBag holding the multiplicity of every key in keys.
func Collect[K comparable](keys []K) HashBag[K] {
	bag := New[K]()

	for _, key := range keys {
		Insert(bag, key)
	}

	return bag
}

func Insert[K comparable](bag HashBag[K], key K) {
	bag[key]++
}

// Remove drops one occurrence of key; the key disappears together with its
// last occurrence. Removing an absent key does nothing.
func Remove[K comparable](bag HashBag[K], key K) {
	if bag[key] > 1 {
		bag[key]--
		return
	}

	delete(bag, key)
}

// Count reports how many occurrences of key the bag holds.
func Count[K comparable](bag HashBag[K], key K) uint32 {
	return bag[key]
}

// Len reports the total number of occurrences across all keys.
func Len[K comparable](bag HashBag[K]) int {
	total := 0

	for _, n := range bag {
		total += int(n)
	}

	return total
}
