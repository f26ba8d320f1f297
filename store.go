package impvec

// Store is the pinning storage contract that an ImpVec wraps.
//
// A Store is an ordered sequence of elements with one guarantee beyond what
// a plain slice offers: Push and ExtendFromSlice never change the address
// of an element that is already present. Growth allocates additional space;
// it does not relocate. A pointer returned by At or Push therefore remains
// valid across any number of appends.
//
// The structural operations (Insert, Remove, Pop, Truncate, Clear) are
// exempt from the guarantee. They may shift element contents between slots
// and free trailing storage; any pointer obtained before a structural edit
// must be treated as stale afterwards. Callers that hold such pointers and
// then perform a structural edit read shifted or zeroed contents — never
// freed memory.
//
// Implementations in this package: SplitVec (chunked growth, selectable
// growth curve) and FixedVec (single allocation, hard capacity ceiling).
type Store[T any] interface {
	// Len returns the number of elements.
	Len() int

	// Get returns a copy of the element at index i,
	// or the zero value and false if i is out of bounds.
	Get(i int) (T, bool)

	// At returns a pointer to the element at index i.
	// The pointer stays valid across all appends.
	// Panics if i is out of bounds.
	At(i int) *T

	// Push appends v and returns a pointer to the new slot.
	// Existing elements keep their addresses.
	Push(v T) *T

	// ExtendFromSlice appends a copy of each element of vs, in order.
	// Existing elements keep their addresses.
	ExtendFromSlice(vs []T)

	// Insert places v at index i, shifting subsequent elements.
	// Structural: invalidates outstanding pointers.
	// Panics if i is out of range [0, Len()].
	Insert(i int, v T)

	// Remove deletes and returns the element at index i, shifting
	// subsequent elements. Structural: invalidates outstanding pointers.
	// Panics if i is out of bounds.
	Remove(i int) T

	// Pop removes and returns the last element,
	// or the zero value and false if the store is empty.
	// Structural: the popped slot is zeroed and may be freed.
	Pop() (T, bool)

	// Truncate shortens the store to n elements. No-op if n >= Len().
	// Structural: truncated slots are zeroed and may be freed.
	// Panics if n is negative.
	Truncate(n int)

	// Clear removes all elements and releases backing storage where the
	// implementation allows. Structural.
	Clear()

	// IndexOf reports the index of the slot that p points into, or false
	// if p does not point into this store's storage. This is an address
	// membership test, not a value search.
	IndexOf(p *T) (int, bool)

	// ToSlice returns the elements copied into a new contiguous slice.
	ToSlice() []T
}
