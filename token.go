package bag

import (
	"time"
)

// clockBase anchors the monotonic readings tokens are minted from. A token's
// value is the number of nanoseconds between this point and its insertion.
var clockBase = time.Now()

// nowNanos reads the monotonic clock. Tests swap it out for deterministic
// readings.
var nowNanos = func() uint64 {
	return uint64(time.Since(clockBase))
}

// Token identifies one occurrence inserted into a Bag. Insert is the only way
// to obtain one, and handing it back to Remove is the only way to delete that
// exact occurrence again. The zero Token matches nothing.
//
// A Token carries no reference to its element or its bag. Handing one to a
// bag that did not mint it has no guaranteed effect.
type Token struct {
	value uint64
}

// Compare returns -1, 0 or 1 ordering t against other in mint order.
func (t Token) Compare(other Token) int {
	switch {
	case t.value < other.value:
		return -1
	case t.value > other.value:
		return 1
	default:
		return 0
	}
}

// mint produces a Token strictly greater than every token this bag has handed
// out before. A reading that has not moved past the previous one (the clock
// tick is coarser than the call rate) is simply re-read until it has.
func (b *Bag[E]) mint() Token {
	now := nowNanos()

	for now <= b.last {
		now = nowNanos()
	}

	b.last = now

	return Token{value: now}
}
