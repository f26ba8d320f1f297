package impvec

// Element types opt into link wiring by exposing settable next/prev
// pointers. A doubly-linked node implements all four:
//
//	type node struct {
//		value      string
//		prev, next *node
//	}
//
//	func (n *node) Next() *node        { return n.next }
//	func (n *node) SetNext(next *node) { n.next = next }
//	func (n *node) Prev() *node        { return n.prev }
//	func (n *node) SetPrev(prev *node) { n.prev = prev }
//
// SetNext and SetPrev below then wire elements together while guarding
// against the one misuse nothing else would catch: linking an element to
// one stored in a different vector. The two vectors' address-stability
// guarantees are independent — clearing one would leave the other holding
// a reference into it — so cross-vector links are refused with a panic.

// NextSetter is the capability of having a settable forward link.
type NextSetter[T any] interface {
	SetNext(next *T)
}

// PrevSetter is the capability of having a settable backward link.
type PrevSetter[T any] interface {
	SetPrev(prev *T)
}

// NextGetter is the capability of exposing the forward link.
type NextGetter[T any] interface {
	Next() *T
}

// PrevGetter is the capability of exposing the backward link.
type PrevGetter[T any] interface {
	Prev() *T
}

// SetNext sets element's forward link to next (nil clears it). Both
// element and, when non-nil, next must point into vec's storage.
//
// Panics with distinct messages when next or element is not found in vec:
// the two failure modes point at different caller bugs.
func SetNext[T any, P interface {
	*T
	NextSetter[T]
}](vec *ImpVec[T], element, next *T) {
	if next != nil {
		if _, ok := vec.IndexOf(next); !ok {
			panic(msgNextForeign)
		}
	}
	if _, ok := vec.IndexOf(element); !ok {
		panic(msgElemForeign)
	}
	P(element).SetNext(next)
}

// SetPrev sets element's backward link to prev (nil clears it). Both
// element and, when non-nil, prev must point into vec's storage.
//
// Panics with distinct messages when prev or element is not found in vec.
func SetPrev[T any, P interface {
	*T
	PrevSetter[T]
}](vec *ImpVec[T], element, prev *T) {
	if prev != nil {
		if _, ok := vec.IndexOf(prev); !ok {
			panic(msgPrevForeign)
		}
	}
	if _, ok := vec.IndexOf(element); !ok {
		panic(msgElemForeign)
	}
	P(element).SetPrev(prev)
}
