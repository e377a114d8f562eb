package expr

import "slices"

// Key identifies an unknown variable in the estimation problem.
// Keys are unique and totally ordered.
type Key uint64

// keySet accumulates the variables reachable from an expression node.
type keySet map[Key]struct{}

func (s keySet) add(k Key) {
	s[k] = struct{}{}
}

// sorted returns the keys in ascending order.
func (s keySet) sorted() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
