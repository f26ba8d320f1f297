package impvec

import "iter"

// Iteration over an ImpVec snapshots the length when the sequence starts.
// Elements appended while iterating — which is legal, appends never move
// anything — are not visited by that iterator; a fresh iterator sees them.
// The snapshot keeps an iterator that appends per visited element from
// running forever.
//
// A structural edit during iteration panics on the next step: the slots the
// iterator would visit may have shifted, and walking them silently would
// yield elements in the wrong positions.

// Values returns a sequence of the elements, by value, in insertion order.
func (v *ImpVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		n, version := v.s().Len(), v.version
		for i := 0; i < n; i++ {
			if v.version != version {
				panic(msgModifiedDuring)
			}
			if !yield(*v.s().At(i)) {
				return
			}
		}
	}
}

// Refs returns a sequence of pointers to the elements, in insertion order.
// The yielded pointers obey the usual discipline: valid across appends,
// stale after a structural edit.
func (v *ImpVec[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		n, version := v.s().Len(), v.version
		for i := 0; i < n; i++ {
			if v.version != version {
				panic(msgModifiedDuring)
			}
			if !yield(v.s().At(i)) {
				return
			}
		}
	}
}

// All returns a sequence of index/pointer pairs, in insertion order.
func (v *ImpVec[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		n, version := v.s().Len(), v.version
		for i := 0; i < n; i++ {
			if v.version != version {
				panic(msgModifiedDuring)
			}
			if !yield(i, v.s().At(i)) {
				return
			}
		}
	}
}

// Extend appends every element produced by seq, in order. Like Push, it
// needs no exclusive access and invalidates nothing.
func (v *ImpVec[T]) Extend(seq iter.Seq[T]) {
	for e := range seq {
		v.s().Push(e)
	}
}
