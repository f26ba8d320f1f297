package impvec

import "fmt"

// IntoInner consumes the wrapper and returns the backing store unchanged —
// a move, not a copy: no element is touched, so pointers into the vector
// remain pointers into the returned store. It signals that the
// shared-handle append phase is over; any later use of the consumed
// wrapper panics.
func (v *ImpVec[T]) IntoInner() Store[T] {
	s := v.s()
	v.store = nil
	return s
}

// ToSlice returns the elements copied into a new contiguous slice, in
// insertion order. This is the export path for when construction is done
// and downstream consumers want a flat representation; the copies do not
// have stable addresses.
func (v *ImpVec[T]) ToSlice() []T {
	return v.s().ToSlice()
}

// Clone returns a new default-backed vector holding a shallow copy of the
// elements. Element-to-element pointers inside the copies still point into
// the original vector; Clone is for value payloads, not for duplicating
// self-referential structures.
func (v *ImpVec[T]) Clone() *ImpVec[T] {
	return FromSlice(v.s().ToSlice())
}

// String formats the elements like a slice, for debugging.
func (v *ImpVec[T]) String() string {
	return fmt.Sprintf("%v", v.s().ToSlice())
}

// Equal reports whether a and b hold equal elements in the same order.
// Either may be backed by any store; only contents are compared.
func Equal[T comparable](a, b *ImpVec[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison, for
// element types that are not comparable or that embed link pointers which
// should not participate in equality.
func EqualFunc[T any](a, b *ImpVec[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(*a.At(i), *b.At(i)) {
			return false
		}
	}
	return true
}
