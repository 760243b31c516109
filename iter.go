package jlist

import (
	"github.com/bradenaw/juniper/iterator"
)

// Iter returns an iterator over the payloads of l from front to back. It makes a single pass even
// if l is circular. l must not be modified while the iterator is in use.
func (l *List[T]) Iter() iterator.Iterator[T] {
	return &listIterator[T]{curr: l.Front(), forward: true}
}

// IterBackward returns an iterator over the payloads of l from back to front.
func (l *List[T]) IterBackward() iterator.Iterator[T] {
	return &listIterator[T]{curr: l.Back()}
}

// Values returns the payloads of l from front to back.
func (l *List[T]) Values() []T {
	return iterator.Collect(l.Iter())
}

type listIterator[T any] struct {
	curr    *Element[T]
	forward bool
}

func (iter *listIterator[T]) Next() (T, bool) {
	if iter.curr == nil {
		var zero T
		return zero, false
	}
	item := iter.curr.Value
	if iter.forward {
		iter.curr = iter.curr.next
	} else {
		iter.curr = iter.curr.prev
	}
	return item, true
}
