package impvec

import "unsafe"

// SplitVec is a pinned Store that keeps its elements in a sequence of
// chunks. Each chunk is allocated once, at its final capacity, and is never
// reallocated; growth adds a new chunk instead of moving anything. The
// address of an element is therefore fixed from the moment it is pushed
// until a structural edit touches it.
//
// The capacity of each new chunk is decided by a Growth strategy, Doubling
// by default. Indexing walks the chunk list, which stays short (logarithmic
// in length under Doubling), so reads remain O(number of chunks).
type SplitVec[T any] struct {
	growth Growth
	chunks [][]T
	length int
}

// NewSplitVec returns an empty SplitVec with the default Doubling growth.
func NewSplitVec[T any]() *SplitVec[T] {
	return NewSplitVecWith[T](Doubling{})
}

// NewSplitVecWith returns an empty SplitVec using the given growth
// strategy.
func NewSplitVecWith[T any](g Growth) *SplitVec[T] {
	if g == nil {
		g = Doubling{}
	}
	return &SplitVec[T]{growth: g}
}

// Len implements Store.
func (s *SplitVec[T]) Len() int {
	return s.length
}

// Capacity returns the total capacity across all allocated chunks.
func (s *SplitVec[T]) Capacity() int {
	total := 0
	for _, c := range s.chunks {
		total += cap(c)
	}
	return total
}

// ChunkCount returns the number of allocated chunks.
func (s *SplitVec[T]) ChunkCount() int {
	return len(s.chunks)
}

// Get implements Store.
func (s *SplitVec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= s.length {
		var zero T
		return zero, false
	}
	return *s.At(i), true
}

// At implements Store. The returned pointer stays valid across all appends.
func (s *SplitVec[T]) At(i int) *T {
	if i < 0 || i >= s.length {
		panic(msgOutOfRange)
	}
	for ci := range s.chunks {
		if i < len(s.chunks[ci]) {
			return &s.chunks[ci][i]
		}
		i -= len(s.chunks[ci])
	}
	panic(msgOutOfRange) // unreachable while length is consistent
}

// Push implements Store. Appending into the tail chunk, or into a freshly
// allocated one, leaves every existing element where it is.
func (s *SplitVec[T]) Push(v T) *T {
	c := s.tail()
	*c = append(*c, v)
	s.length++
	return &(*c)[len(*c)-1]
}

// ExtendFromSlice implements Store. Chunks are filled to capacity before a
// new one is allocated, so a batch append allocates at most as many chunks
// as the equivalent sequence of Push calls.
func (s *SplitVec[T]) ExtendFromSlice(vs []T) {
	for len(vs) > 0 {
		c := s.tail()
		room := cap(*c) - len(*c)
		n := min(room, len(vs))
		*c = append(*c, vs[:n]...)
		s.length += n
		vs = vs[n:]
	}
}

// Insert implements Store. Structural: elements at and after index i shift
// one slot towards the tail.
func (s *SplitVec[T]) Insert(i int, v T) {
	if i < 0 || i > s.length {
		panic(msgOutOfRange)
	}
	var zero T
	s.Push(zero)
	for j := s.length - 1; j > i; j-- {
		*s.At(j) = *s.At(j - 1)
	}
	*s.At(i) = v
}

// Remove implements Store. Structural: elements after index i shift one
// slot towards the head.
func (s *SplitVec[T]) Remove(i int) T {
	if i < 0 || i >= s.length {
		panic(msgOutOfRange)
	}
	v := *s.At(i)
	for j := i; j < s.length-1; j++ {
		*s.At(j) = *s.At(j + 1)
	}
	s.shrink(1)
	return v
}

// Pop implements Store.
func (s *SplitVec[T]) Pop() (T, bool) {
	if s.length == 0 {
		var zero T
		return zero, false
	}
	v := *s.At(s.length - 1)
	s.shrink(1)
	return v, true
}

// Truncate implements Store.
func (s *SplitVec[T]) Truncate(n int) {
	if n < 0 {
		panic(msgOutOfRange)
	}
	if n >= s.length {
		return
	}
	s.shrink(s.length - n)
}

// Clear implements Store. All chunks are released.
func (s *SplitVec[T]) Clear() {
	s.chunks = nil
	s.length = 0
}

// Append adopts every chunk of other, in order, leaving other empty. This
// is O(number of chunks): no element is copied or moved, so pointers into
// other remain valid and now point into s.
func (s *SplitVec[T]) Append(other *SplitVec[T]) {
	if other == nil || other == s {
		return
	}
	for _, c := range other.chunks {
		if len(c) > 0 {
			s.chunks = append(s.chunks, c)
			s.length += len(c)
		}
	}
	other.chunks = nil
	other.length = 0
}

// IndexOf implements Store. Each chunk is checked as an address range, so
// the test is O(number of chunks). For zero-sized element types every
// element shares one address and the reported index is the first slot of
// the matching chunk.
func (s *SplitVec[T]) IndexOf(p *T) (int, bool) {
	if p == nil {
		return 0, false
	}
	size := unsafe.Sizeof(*p)
	pp := uintptr(unsafe.Pointer(p))
	base := 0
	for _, c := range s.chunks {
		n := len(c)
		if n == 0 {
			continue
		}
		first := uintptr(unsafe.Pointer(&c[0]))
		if size == 0 {
			if pp == first {
				return base, true
			}
		} else if pp >= first && pp < first+uintptr(n)*size {
			off := pp - first
			if off%size == 0 {
				return base + int(off/size), true
			}
		}
		base += n
	}
	return 0, false
}

// ToSlice implements Store.
func (s *SplitVec[T]) ToSlice() []T {
	out := make([]T, 0, s.length)
	for _, c := range s.chunks {
		out = append(out, c...)
	}
	return out
}

// tail returns the chunk that has room for at least one more element,
// allocating a new chunk when the current tail is full.
func (s *SplitVec[T]) tail() *[]T {
	if n := len(s.chunks); n > 0 {
		if c := &s.chunks[n-1]; len(*c) < cap(*c) {
			return c
		}
	}
	capacity := s.growth.ChunkCapacity(len(s.chunks), s.Capacity())
	if capacity < 1 {
		capacity = 1
	}
	s.chunks = append(s.chunks, make([]T, 0, capacity))
	return &s.chunks[len(s.chunks)-1]
}

// shrink zeroes and removes k trailing elements, dropping chunks that
// become empty so trailing storage can be reclaimed.
func (s *SplitVec[T]) shrink(k int) {
	var zero T
	for ; k > 0; k-- {
		c := &s.chunks[len(s.chunks)-1]
		n := len(*c)
		(*c)[n-1] = zero
		*c = (*c)[:n-1]
		s.length--
		if n == 1 {
			s.chunks[len(s.chunks)-1] = nil
			s.chunks = s.chunks[:len(s.chunks)-1]
		}
	}
}
