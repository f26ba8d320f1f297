package impvec

import "unsafe"

// FixedVec is a pinned Store backed by a single allocation of fixed
// capacity. Elements never move because the backing array is never
// reallocated; in exchange, pushing beyond the capacity is a contract
// violation and panics.
//
// Use a FixedVec when the maximum number of elements is known up front and
// contiguous layout matters; use a SplitVec everywhere else.
type FixedVec[T any] struct {
	data []T
}

// NewFixedVec returns an empty FixedVec that can hold up to capacity
// elements. Panics if capacity is negative.
func NewFixedVec[T any](capacity int) *FixedVec[T] {
	if capacity < 0 {
		panic(msgOutOfRange)
	}
	return &FixedVec[T]{data: make([]T, 0, capacity)}
}

// Len implements Store.
func (f *FixedVec[T]) Len() int {
	return len(f.data)
}

// Capacity returns the fixed capacity.
func (f *FixedVec[T]) Capacity() int {
	return cap(f.data)
}

// Room returns the number of elements that can still be pushed.
func (f *FixedVec[T]) Room() int {
	return cap(f.data) - len(f.data)
}

// Get implements Store.
func (f *FixedVec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(f.data) {
		var zero T
		return zero, false
	}
	return f.data[i], true
}

// At implements Store.
func (f *FixedVec[T]) At(i int) *T {
	if i < 0 || i >= len(f.data) {
		panic(msgOutOfRange)
	}
	return &f.data[i]
}

// Push implements Store. Panics with a capacity message when the vector is
// full; a FixedVec never grows.
func (f *FixedVec[T]) Push(v T) *T {
	if len(f.data) == cap(f.data) {
		panic(msgFixedCapacity)
	}
	f.data = append(f.data, v)
	return &f.data[len(f.data)-1]
}

// ExtendFromSlice implements Store. Panics before appending anything if the
// batch does not fit.
func (f *FixedVec[T]) ExtendFromSlice(vs []T) {
	if len(f.data)+len(vs) > cap(f.data) {
		panic(msgFixedCapacity)
	}
	f.data = append(f.data, vs...)
}

// Insert implements Store. Structural.
func (f *FixedVec[T]) Insert(i int, v T) {
	if i < 0 || i > len(f.data) {
		panic(msgOutOfRange)
	}
	if len(f.data) == cap(f.data) {
		panic(msgFixedCapacity)
	}
	var zero T
	f.data = append(f.data, zero)
	copy(f.data[i+1:], f.data[i:])
	f.data[i] = v
}

// Remove implements Store. Structural.
func (f *FixedVec[T]) Remove(i int) T {
	if i < 0 || i >= len(f.data) {
		panic(msgOutOfRange)
	}
	v := f.data[i]
	copy(f.data[i:], f.data[i+1:])
	f.shrink(1)
	return v
}

// Pop implements Store.
func (f *FixedVec[T]) Pop() (T, bool) {
	if len(f.data) == 0 {
		var zero T
		return zero, false
	}
	v := f.data[len(f.data)-1]
	f.shrink(1)
	return v, true
}

// Truncate implements Store.
func (f *FixedVec[T]) Truncate(n int) {
	if n < 0 {
		panic(msgOutOfRange)
	}
	if n >= len(f.data) {
		return
	}
	f.shrink(len(f.data) - n)
}

// Clear implements Store. The backing allocation is kept; a FixedVec's
// capacity is part of its identity.
func (f *FixedVec[T]) Clear() {
	f.shrink(len(f.data))
}

// IndexOf implements Store. For zero-sized element types every element
// shares one address and the reported index is 0.
func (f *FixedVec[T]) IndexOf(p *T) (int, bool) {
	if p == nil || len(f.data) == 0 {
		return 0, false
	}
	size := unsafe.Sizeof(*p)
	pp := uintptr(unsafe.Pointer(p))
	first := uintptr(unsafe.Pointer(&f.data[0]))
	if size == 0 {
		return 0, pp == first
	}
	if pp < first || pp >= first+uintptr(len(f.data))*size {
		return 0, false
	}
	off := pp - first
	if off%size != 0 {
		return 0, false
	}
	return int(off / size), true
}

// ToSlice implements Store.
func (f *FixedVec[T]) ToSlice() []T {
	out := make([]T, len(f.data))
	copy(out, f.data)
	return out
}

// shrink zeroes and removes k trailing elements so the garbage collector
// can reclaim anything they referenced.
func (f *FixedVec[T]) shrink(k int) {
	var zero T
	n := len(f.data)
	for i := n - k; i < n; i++ {
		f.data[i] = zero
	}
	f.data = f.data[:n-k]
}
