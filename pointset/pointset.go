package pointset

import (
	"iter"
	"math/bits"
)

// Set is a fixed-capacity bitset over the universe [0, capacity).
// Words beyond the capacity stay zero at all times, so word-level
// population counts never overcount.
type Set struct {
	words    []uint64
	capacity int
	count    int
}

// New creates an empty Set over the universe [0, capacity).
func New(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}

	return &Set{
		words:    make([]uint64, (capacity+63)/64),
		capacity: capacity,
	}
}

// NewFull creates a Set with every index in [0, capacity) present.
func NewFull(capacity int) *Set {
	s := New(capacity)
	s.Fill()

	return s
}

// Capacity returns the size of the universe.
func (s *Set) Capacity() int {
	return s.capacity
}

// Len returns the number of indices in the set. O(1).
func (s *Set) Len() int {
	return s.count
}

// Contains returns true if id is in the set.
func (s *Set) Contains(id int) bool {
	if id < 0 || id >= s.capacity {
		return false
	}

	return s.words[id>>6]&(uint64(1)<<(id&63)) != 0
}

// Insert adds id to the set and returns true if it was not already present.
func (s *Set) Insert(id int) bool {
	if id < 0 || id >= s.capacity {
		return false
	}

	wordIdx := id >> 6
	bitMask := uint64(1) << (id & 63)

	if s.words[wordIdx]&bitMask != 0 {
		return false
	}

	s.words[wordIdx] |= bitMask
	s.count++

	return true
}

// Remove deletes id from the set and returns true if it was present.
func (s *Set) Remove(id int) bool {
	if id < 0 || id >= s.capacity {
		return false
	}

	wordIdx := id >> 6
	bitMask := uint64(1) << (id & 63)

	if s.words[wordIdx]&bitMask == 0 {
		return false
	}

	s.words[wordIdx] &^= bitMask
	s.count--

	return true
}

// First returns the smallest index in the set, or -1 if the set is empty.
func (s *Set) First() int {
	for i, word := range s.words {
		if word != 0 {
			return i<<6 + bits.TrailingZeros64(word)
		}
	}

	return -1
}

// Subtract removes every index of other from s in a single pass,
// recounting as it goes. Both sets must share the same capacity.
func (s *Set) Subtract(other *Set) {
	count := 0

	for i, word := range other.words {
		w := s.words[i] &^ word
		s.words[i] = w
		count += bits.OnesCount64(w)
	}

	s.count = count
}

// SetTo makes s an exact copy of src. Both sets must share the same capacity.
func (s *Set) SetTo(src *Set) {
	copy(s.words, src.words)
	s.count = src.count
}

// DifferenceOf overwrites s with a minus b in a single fused pass,
// avoiding the copy-then-subtract double traversal on the hot path.
// All three sets must share the same capacity.
func (s *Set) DifferenceOf(a, b *Set) {
	count := 0

	for i, word := range a.words {
		w := word &^ b.words[i]
		s.words[i] = w
		count += bits.OnesCount64(w)
	}

	s.count = count
}

// Fill adds every index in [0, capacity) to the set. Bits past the
// capacity in the final word remain zero.
func (s *Set) Fill() {
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}

	if rem := s.capacity & 63; rem != 0 {
		s.words[len(s.words)-1] = uint64(1)<<rem - 1
	}

	s.count = s.capacity
}

// Reset removes every index from the set.
func (s *Set) Reset() {
	clear(s.words)
	s.count = 0
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	c := New(s.capacity)
	copy(c.words, s.words)
	c.count = s.count

	return c
}

// Indices returns the members of the set in ascending order.
func (s *Set) Indices() []int {
	ids := make([]int, 0, s.count)

	for i, word := range s.words {
		for word != 0 {
			ids = append(ids, i<<6+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}

	return ids
}

// All returns an iterator over the members of the set in ascending order.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, word := range s.words {
			for word != 0 {
				if !yield(i<<6 + bits.TrailingZeros64(word)) {
					return
				}

				word &= word - 1
			}
		}
	}
}
