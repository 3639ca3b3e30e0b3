/*
Package ring implements counters of a fixed-capacity overwrite-on-full log.

Entries are numbered by a monotonically growing counter and stored in slot
number mod capacity. Head is the number of entries ever written, Tail is the
number of the oldest retained entry. Pushing into a full log overwrites the
oldest entry. Counters never decrease, so slots are reused in a strict round.
*/
package ring

// Cursor holds log counters.
type Cursor struct {
	Head int
	Tail int
}

// Push returns counters after a new entry is written and the slot for it.
func Push(c Cursor, capacity int) (Cursor, int) {
	slot := c.Head % capacity
	next := Cursor{Head: c.Head + 1, Tail: c.Tail}
	if next.Head-next.Tail > capacity {
		next.Tail = next.Tail + 1
	}
	return next, slot
}

// Len returns the number of retained entries.
func Len(c Cursor) int {
	return c.Head - c.Tail
}

// Slots returns slots of the retained entries from the oldest to the newest.
func Slots(c Cursor, capacity int) []int {
	res := []int{}
	for i := c.Tail; i < c.Head; i++ {
		res = append(res, i%capacity)
	}
	return res
}
