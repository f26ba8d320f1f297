package impvec

// Panic messages for contract violations.
const (
	msgOutOfRange     = "impvec: index out of range"
	msgFixedCapacity  = "impvec: FixedVec capacity exceeded"
	msgModifiedDuring = "impvec: vector structurally modified during iteration"
	msgElemForeign    = "impvec: element does not belong to this vector"
	msgNextForeign    = "impvec: next does not belong to this vector; inter-element references require both elements to belong to the same vector"
	msgPrevForeign    = "impvec: prev does not belong to this vector; inter-element references require both elements to belong to the same vector"
	msgConsumed       = "impvec: use of vector after IntoInner"
)

// ImpVec wraps a pinned Store and exposes the append and read surface that
// the pinning guarantee makes sound. It owns exactly one store; all access
// to the elements goes through the wrapper.
//
// Appending never disturbs existing elements, so pointers obtained from At,
// PushGet or Refs stay valid across any number of Push, PushGet, Extend and
// ExtendFromSlice calls. The structural edits (Insert, Remove, Pop,
// Truncate, Clear) are the only operations that break this: after one of
// them, every previously obtained pointer is stale and must be dropped.
// Each structural edit bumps an internal version; iterators check it and
// panic rather than silently walking shifted slots.
//
// An ImpVec is not safe for concurrent use.
type ImpVec[T any] struct {
	store   Store[T]
	version uint64
}

// New returns an empty vector backed by a SplitVec with Doubling growth.
func New[T any]() *ImpVec[T] {
	return From[T](NewSplitVec[T]())
}

// WithGrowth returns an empty vector backed by a SplitVec using the given
// growth strategy.
func WithGrowth[T any](g Growth) *ImpVec[T] {
	return From[T](NewSplitVecWith[T](g))
}

// WithFixedCapacity returns an empty vector backed by a FixedVec of the
// given capacity. Pushing beyond the capacity panics; that is the
// FixedVec's contract and the wrapper does not soften it.
func WithFixedCapacity[T any](capacity int) *ImpVec[T] {
	return From[T](NewFixedVec[T](capacity))
}

// From wraps an existing store. The wrapper takes ownership: the store must
// not be used directly afterwards, or the pinning bookkeeping here and the
// store's contents can disagree.
func From[T any](s Store[T]) *ImpVec[T] {
	if s == nil {
		s = NewSplitVec[T]()
	}
	return &ImpVec[T]{store: s}
}

// FromSlice returns a new default-backed vector holding a copy of vs.
func FromSlice[T any](vs []T) *ImpVec[T] {
	v := New[T]()
	v.ExtendFromSlice(vs)
	return v
}

// Len returns the number of elements.
func (v *ImpVec[T]) Len() int {
	return v.s().Len()
}

// IsEmpty reports whether the vector has no elements.
func (v *ImpVec[T]) IsEmpty() bool {
	return v.s().Len() == 0
}

// Push appends value as the new last element. Every previously obtained
// pointer into the vector remains valid and unchanged; the new element's
// address is stable from this call onward.
func (v *ImpVec[T]) Push(value T) {
	v.s().Push(value)
}

// PushGet appends value and returns a pointer to the new element. The
// pointer stays valid for as long as the vector lives and no structural
// edit occurs, which is what allows it to be stored inside elements pushed
// later — the construction step for backward references.
func (v *ImpVec[T]) PushGet(value T) *T {
	return v.s().Push(value)
}

// ExtendFromSlice appends a copy of each element of values, in order.
// Equivalent to repeated Push calls but batches chunk allocation.
func (v *ImpVec[T]) ExtendFromSlice(values []T) {
	v.s().ExtendFromSlice(values)
}

// Get returns a copy of the element at index, or the zero value and false
// if index is out of bounds.
func (v *ImpVec[T]) Get(index int) (T, bool) {
	return v.s().Get(index)
}

// At returns a pointer to the element at index; it panics if index is out
// of bounds. The pointer remains valid across all appends.
//
// The pointer grants write access to the slot — Go has no read-only
// pointers — and doubles as the in-place mutation primitive: overwriting
// *At(i) after neighbouring elements were wired up is how a cyclic
// structure's final link is closed. The caller carries two obligations:
// do not keep writing through two pointers to the same slot from code that
// assumes exclusive access, and treat the pointer as stale after any
// structural edit.
func (v *ImpVec[T]) At(index int) *T {
	return v.s().At(index)
}

// IndexOf reports the index of the slot that p points into, or false if p
// does not point into this vector's storage.
func (v *ImpVec[T]) IndexOf(p *T) (int, bool) {
	return v.s().IndexOf(p)
}

// ReplaceAt overwrites the element at index with value and returns the
// previous value. Returns the zero value and false, without effect, if
// index is out of bounds. Addresses are untouched: only the slot's
// contents change.
func (v *ImpVec[T]) ReplaceAt(index int, value T) (T, bool) {
	if index < 0 || index >= v.s().Len() {
		var zero T
		return zero, false
	}
	p := v.s().At(index)
	old := *p
	*p = value
	return old, true
}

// MoveGet moves the contents of the source slot into the destination slot,
// fills the source slot with fill, and returns pointers to both final
// slots (source first). Returns nils and false, without effect, if either
// index is out of bounds.
//
// Both slot addresses are preserved — only contents move — so every other
// pointer into the vector stays valid. This is the primitive for
// relocating logical content between fixed physical slots in a structure
// that other elements already point into.
func (v *ImpVec[T]) MoveGet(source, destination int, fill T) (*T, *T, bool) {
	n := v.s().Len()
	if source < 0 || source >= n || destination < 0 || destination >= n {
		return nil, nil, false
	}
	src := v.s().At(source)
	dst := v.s().At(destination)
	*dst = *src
	*src = fill
	return src, dst, true
}

// Insert places value at index, shifting subsequent elements towards the
// tail. Structural: all outstanding pointers into the vector are stale
// afterwards. Panics if index is out of range [0, Len()].
func (v *ImpVec[T]) Insert(index int, value T) {
	v.version++
	v.s().Insert(index, value)
}

// Remove deletes and returns the element at index, shifting subsequent
// elements towards the head. Structural. Panics if index is out of bounds.
func (v *ImpVec[T]) Remove(index int) T {
	v.version++
	return v.s().Remove(index)
}

// Pop removes and returns the last element, or the zero value and false if
// the vector is empty. Structural.
func (v *ImpVec[T]) Pop() (T, bool) {
	v.version++
	return v.s().Pop()
}

// Truncate shortens the vector to n elements; no-op if n >= Len().
// Structural. Panics if n is negative.
func (v *ImpVec[T]) Truncate(n int) {
	v.version++
	v.s().Truncate(n)
}

// Clear removes all elements. Structural: it also invalidates every
// element-to-element reference at once, which is exactly what makes it
// safe — referrers and referents are dropped together.
func (v *ImpVec[T]) Clear() {
	v.version++
	v.s().Clear()
}

func (v *ImpVec[T]) s() Store[T] {
	if v.store == nil {
		panic(msgConsumed)
	}
	return v.store
}
