// Package impvec provides a growable vector whose elements never move once
// inserted, and which therefore supports appending through a shared handle.
//
// A plain Go slice relocates its elements whenever append outgrows the
// backing array, so a pointer into a slice is invalidated by growth. The
// stores in this package (SplitVec, FixedVec) satisfy a stricter contract:
// Push and ExtendFromSlice allocate additional space instead of moving
// existing elements, so a pointer to an element stays valid for as long as
// the vector lives, no matter how much it grows. Only the explicitly
// structural operations (Insert, Remove, Pop, Truncate, Clear) may shift
// element contents between slots.
//
// ImpVec wraps such a store and exposes the append and read surface that
// this pinning guarantee makes sound. Because appends never disturb
// existing elements, it is safe to hold pointers obtained from At, PushGet
// or Refs across any number of Push calls. This is what makes the vector
// suitable as backing storage for self-referential structures: linked
// lists, trees and cyclic graphs whose nodes point directly at other nodes
// in the same vector, with no per-node allocation and no index indirection.
//
//	type node struct {
//		label string
//		next  *node
//	}
//
//	vec := impvec.New[node]()
//	a := vec.PushGet(node{label: "a"})
//	b := vec.PushGet(node{label: "b", next: a})
//	vec.At(0).next = b // close the cycle in place
//
// The pointer discipline is narrow and is stated on every operation that
// participates in it: pointers survive every append, and go stale after a
// structural edit (they then address a slot whose contents may have
// shifted — never freed memory, the garbage collector sees to that).
// Iterators carry a runtime guard and panic if a structural edit happens
// mid-iteration; raw pointers carry a documented obligation instead.
//
// The vector is single-threaded by design. Nothing in this package is safe
// for concurrent use.
package impvec
