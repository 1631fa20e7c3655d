package iteratable

import (
	"bytes"
	"fmt"
)

// Set is an insertion-ordered set of comparable values. Create one with NewSet.
type Set struct {
	items  []interface{}       // elements in insertion order
	index  map[interface{}]int // position of each element within items
	cursor int                 // iteration position
}

// NewSet creates an empty set. The parameter is a hint for the initial capacity.
func NewSet(size int) *Set {
	if size < 0 {
		size = 0
	}
	return &Set{
		items:  make([]interface{}, 0, size),
		index:  make(map[interface{}]int, size),
		cursor: -1,
	}
}

// Add inserts elements into the set. Elements already present are
// silently skipped and will keep their original position.
// Returns the set (for chaining).
func (s *Set) Add(elems ...interface{}) *Set {
	for _, x := range elems {
		if _, ok := s.index[x]; ok {
			continue
		}
		s.index[x] = len(s.items)
		s.items = append(s.items, x)
	}
	return s
}

// Contains is a predicate: is x an element of s?
func (s *Set) Contains(x interface{}) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[x]
	return ok
}

// Size returns the number of elements in s.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Empty is a predicate: does s contain no elements?
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// Values returns the elements of s in insertion order. The slice is a copy.
func (s *Set) Values() []interface{} {
	if s == nil {
		return nil
	}
	vals := make([]interface{}, len(s.items))
	copy(vals, s.items)
	return vals
}

// First returns the element added first, or nil for an empty set.
func (s *Set) First() interface{} {
	if s.Empty() {
		return nil
	}
	return s.items[0]
}

// Copy returns a shallow copy of s. Iteration state is not copied.
func (s *Set) Copy() *Set {
	c := NewSet(s.Size())
	if s != nil {
		c.Add(s.items...)
	}
	return c
}

// Equals is a predicate: do s and other contain the same elements,
// regardless of insertion order?
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, x := range s.Values() {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

// Union adds all elements of other to s. Elements new to s are appended in
// the order of other. s is modified and returned.
func (s *Set) Union(other *Set) *Set {
	if other == nil {
		return s
	}
	return s.Add(other.items...)
}

// Difference removes all elements of other from s. s is modified and returned.
func (s *Set) Difference(other *Set) *Set {
	if other.Empty() {
		return s
	}
	return s.filter(func(x interface{}) bool {
		return !other.Contains(x)
	})
}

// Intersection removes all elements from s which are not contained in other.
// s is modified and returned.
func (s *Set) Intersection(other *Set) *Set {
	return s.filter(func(x interface{}) bool {
		return other.Contains(x)
	})
}

// Remove deletes x from s, if present. Returns the set (for chaining).
func (s *Set) Remove(x interface{}) *Set {
	if !s.Contains(x) {
		return s
	}
	return s.filter(func(y interface{}) bool {
		return y != x
	})
}

// Subset returns a new set with all elements of s for which predicate holds.
func (s *Set) Subset(predicate func(interface{}) bool) *Set {
	sub := NewSet(0)
	for _, x := range s.items {
		if predicate(x) {
			sub.Add(x)
		}
	}
	return sub
}

// Each calls f for every element of s, in insertion order.
func (s *Set) Each(f func(interface{})) {
	for _, x := range s.Values() {
		f(x)
	}
}

func (s *Set) filter(keep func(interface{}) bool) *Set {
	items := s.items[:0]
	for _, x := range s.items {
		if keep(x) {
			items = append(items, x)
		} else {
			delete(s.index, x)
		}
	}
	for i := len(items); i < len(s.items); i++ {
		s.items[i] = nil // do not hold on to removed elements
	}
	s.items = items
	for i, x := range s.items {
		s.index[x] = i
	}
	return s
}

// --- Iteration -------------------------------------------------------------

// IterateOnce starts a new iteration over s. Clients then call Next()
// until it returns false.
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next moves the iteration cursor to the next element. Elements appended to s
// during an iteration will be visited as well.
func (s *Set) Next() bool {
	if s.cursor+1 >= len(s.items) {
		s.cursor = len(s.items)
		return false
	}
	s.cursor++
	return true
}

// Item returns the element at the current iteration position.
func (s *Set) Item() interface{} {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return nil
	}
	return s.items[s.cursor]
}

// Stringer, listing the elements in insertion order.
func (s *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, x := range s.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf(" %v", x))
	}
	b.WriteString(" }")
	return b.String()
}
