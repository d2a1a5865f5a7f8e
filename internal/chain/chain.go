package chain

import "github.com/gostonefire/placehashmap/place"

// Chain - Represents the chain of places hashed to one bucket.
// The front of the chain is the most recently pushed place. Places are held by value and kept in push order
// internally, so pushing to the front is an append and walking the chain goes from the last element backwards.
type Chain struct {
	places []place.Place
}

// PushFront - Puts a place first in the chain
func (C *Chain) PushFront(p place.Place) {
	C.places = append(C.places, p)
}

// Len - Returns the number of places in the chain
func (C *Chain) Len() int {
	return len(C.places)
}

// Records - Returns an iterator walking the chain from the front
func (C *Chain) Records() *Records {
	return &Records{chain: C, next: len(C.places) - 1}
}

// Places - Returns a copy of the chain contents in chain order (front first)
func (C *Chain) Places() (places []place.Place) {
	if len(C.places) == 0 {
		return
	}

	places = make([]place.Place, 0, len(C.places))
	for iter := C.Records(); iter.HasNext(); {
		places = append(places, iter.Next())
	}

	return
}

// Records - Is used to iterate over the places in a chain one by one, front first.
type Records struct {
	chain *Chain
	next  int
}

// HasNext - Returns true if there are more places to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.next >= 0
}

// Next - Returns the next place in the chain. It must only be called when HasNext returns true.
func (R *Records) Next() (p place.Place) {
	p = R.chain.places[R.next]
	R.next--

	return
}
