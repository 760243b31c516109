// Package jlist is a generic doubly-linked list with a configurable insertion discipline.
//
// A List inserts either in sorted order, at the front (stack), or at the back (queue), and keeps a
// flag recording whether it still believes itself sorted. Ordering and searching go through a
// caller-supplied comparison function, and Sort rebuilds the list through a caller-supplied copy
// function.
//
// A List is not safe for concurrent use. Callers sharing one between goroutines must guard every
// call themselves.
package jlist

import (
	"golang.org/x/exp/constraints"
)

// Mode selects how Insert places a new element.
type Mode int

const (
	// Ordered inserts before the first element that the new one does not sort after.
	Ordered Mode = iota
	// Stack inserts at the front, like Push.
	Stack
	// Queue inserts at the back, like Enqueue.
	Queue
)

func (m Mode) String() string {
	switch m {
	case Ordered:
		return "ordered"
	case Stack:
		return "stack"
	case Queue:
		return "queue"
	default:
		return "invalid"
	}
}

// Funcs are the operations a List needs from its payload type.
type Funcs[T any] struct {
	// Compare returns a negative number if a sorts before b, zero if they are equal, and a
	// positive number if a sorts after b. Required by Insert in Ordered mode, Find and Sort.
	Compare func(a, b T) int
	// Copy returns a deep copy of a payload. Required by Sort.
	Copy func(T) T
	// Release, if set, is called once for every payload the list frees: by Delete, by Destroy,
	// and for the originals Sort discards. It is not called for elements handed back to the caller
	// by Pop or Dequeue.
	Release func(T)
}

// Compare is a Funcs.Compare for ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Identity is a Funcs.Copy for payloads that hold no references.
func Identity[T any](v T) T { return v }

// Option configures a List.
type Option func(*options)

type options struct {
	descending bool
	mode       Mode
	circular   bool
	staySorted bool
}

// Descending orders the list from greatest to least.
func Descending() Option { return func(o *options) { o.descending = true } }

// WithMode sets the insert mode. The default is Ordered.
func WithMode(m Mode) Option { return func(o *options) { o.mode = m } }

// Circular makes Next wrap from the back to the front and Prev from the front to the back.
func Circular() Option { return func(o *options) { o.circular = true } }

// StaySorted records that the list is meant to be kept sorted. The list only remembers it; no
// operation acts on it.
func StaySorted() Option { return func(o *options) { o.staySorted = true } }

// Element is a node of a List.
type Element[T any] struct {
	next *Element[T]
	prev *Element[T]
	// The list this element is linked into, nil if detached.
	list *List[T]

	Value T
}

// NewElement returns a detached element holding v.
func NewElement[T any](v T) *Element[T] {
	return &Element[T]{Value: v}
}

// List is a doubly-linked list of T.
//
// The zero value is an empty ascending list in Ordered mode with no Funcs.
type List[T any] struct {
	head  *Element[T]
	tail  *Element[T]
	count int

	funcs Funcs[T]
	options
	// Inverted so that the zero value, being empty, is believed sorted.
	unsorted bool
}

// New returns an empty list using funcs.
func New[T any](funcs Funcs[T], opts ...Option) *List[T] {
	l := &List[T]{funcs: funcs}
	for _, opt := range opts {
		opt(&l.options)
	}
	return l
}

// Init empties l and resets its options to the defaults, keeping its Funcs. Elements still linked
// into l are detached but not released.
func (l *List[T]) Init() *List[T] {
	if l == nil {
		return nil
	}
	for e := l.head; e != nil; {
		next := e.next
		e.next, e.prev, e.list = nil, nil, nil
		e = next
	}
	l.head = nil
	l.tail = nil
	l.count = 0
	l.options = options{}
	l.unsorted = false
	return l
}

// Front returns the first element of l or nil.
func (l *List[T]) Front() *Element[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Back returns the last element of l or nil.
func (l *List[T]) Back() *Element[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Count returns the number of elements in l.
func (l *List[T]) Count() (int, error) {
	if l == nil {
		return 0, fail("count", ErrNilList)
	}
	return l.count, nil
}

func (l *List[T]) Mode() Mode { return l.mode }

// SetMode changes how later calls to Insert place elements. It does not reorder l.
func (l *List[T]) SetMode(m Mode) { l.mode = m }

func (l *List[T]) Descending() bool   { return l.descending }
func (l *List[T]) IsCircular() bool   { return l.circular }
func (l *List[T]) IsStaySorted() bool { return l.staySorted }

// IsSorted reports whether l believes its elements are in order. Push and Enqueue clear the
// belief, and so does any Visit action that reports a disturbance. Sort restores it.
func (l *List[T]) IsSorted() bool { return !l.unsorted }

// Push inserts e at the front of l.
func (l *List[T]) Push(e *Element[T]) error {
	if err := l.checkInsert("push", e); err != nil {
		return err
	}
	l.unsorted = true
	l.pushFront(e)
	return nil
}

// Enqueue inserts e at the back of l.
func (l *List[T]) Enqueue(e *Element[T]) error {
	if err := l.checkInsert("enqueue", e); err != nil {
		return err
	}
	l.unsorted = true
	l.pushBack(e)
	return nil
}

// Pop removes the first element of l and returns it, detached. It returns nil if l is empty.
func (l *List[T]) Pop() (*Element[T], error) {
	if l == nil {
		return nil, fail("pop", ErrNilList)
	}
	return l.popFront(), nil
}

// Dequeue is Pop, named for lists used as queues.
func (l *List[T]) Dequeue() (*Element[T], error) {
	if l == nil {
		return nil, fail("dequeue", ErrNilList)
	}
	return l.popFront(), nil
}

// Insert adds e to l according to l's Mode.
//
// In Ordered mode e goes before the first element it does not sort after, so a list built only
// by ordered inserts stays sorted. This is a linear scan. Ordered inserts leave the sorted belief
// as it was.
func (l *List[T]) Insert(e *Element[T]) error {
	if err := l.checkInsert("insert", e); err != nil {
		return err
	}
	switch l.mode {
	case Ordered:
		if l.funcs.Compare == nil {
			return fail("insert", ErrNoCompare)
		}
		mark := l.head
		for mark != nil && l.compare(e.Value, mark.Value) > 0 {
			mark = mark.next
		}
		if mark == nil {
			l.pushBack(e)
		} else {
			l.insertBefore(e, mark)
		}
		return nil
	case Stack:
		return l.Push(e)
	case Queue:
		return l.Enqueue(e)
	default:
		return fail("insert", ErrInvalidMode)
	}
}

// Find returns the first element of l that compares equal to query, or nil if there is none.
//
// If l believes it is sorted the scan stops at the first element query does not sort after;
// otherwise every element is checked. Both are linear.
func (l *List[T]) Find(query T) (*Element[T], error) {
	if l == nil {
		return nil, fail("find", ErrNilList)
	}
	if l.funcs.Compare == nil {
		return nil, fail("find", ErrNoCompare)
	}
	if l.head == nil {
		return nil, nil
	}

	if !l.unsorted {
		e := l.head
		c := l.compare(query, e.Value)
		for c > 0 {
			e = e.next
			if e == nil {
				return nil, nil
			}
			c = l.compare(query, e.Value)
		}
		if c != 0 {
			return nil, nil
		}
		return e, nil
	}

	for e := l.head; e != nil; e = e.next {
		if l.compare(query, e.Value) == 0 {
			return e, nil
		}
	}
	return nil, nil
}

// Delete unlinks e from l and releases its payload.
func (l *List[T]) Delete(e *Element[T]) error {
	if l == nil {
		return fail("delete", ErrNilList)
	}
	if e == nil {
		return fail("delete", ErrNilElement)
	}
	if l.head == nil {
		return fail("delete", ErrEmpty)
	}
	if l.count == 0 {
		return fail("delete", ErrInconsistent)
	}
	if e.list != l {
		return fail("delete", ErrNotMember)
	}
	l.remove(e)
	l.release(e)
	return nil
}

// Next returns the element after e, or nil if e is the last element. A circular list wraps to the
// front instead.
func (l *List[T]) Next(e *Element[T]) (*Element[T], error) {
	if err := l.checkMember("next", e); err != nil {
		return nil, err
	}
	if e.next == nil && l.circular {
		return l.head, nil
	}
	return e.next, nil
}

// Prev returns the element before e, or nil if e is the first element. A circular list wraps to
// the back instead.
func (l *List[T]) Prev(e *Element[T]) (*Element[T], error) {
	if err := l.checkMember("prev", e); err != nil {
		return nil, err
	}
	if e.prev == nil && l.circular {
		return l.tail, nil
	}
	return e.prev, nil
}

// Destroy deletes every element of l, front to back.
func (l *List[T]) Destroy() error {
	if l == nil {
		return fail("destroy", ErrNilList)
	}
	for l.count > 0 {
		if err := l.Delete(l.head); err != nil {
			return err
		}
	}
	return nil
}

func (l *List[T]) checkInsert(op string, e *Element[T]) error {
	if l == nil {
		return fail(op, ErrNilList)
	}
	if e == nil {
		return fail(op, ErrNilElement)
	}
	if e.list != nil {
		return fail(op, ErrLinked)
	}
	return nil
}

func (l *List[T]) checkMember(op string, e *Element[T]) error {
	if l == nil {
		return fail(op, ErrNilList)
	}
	if e == nil {
		return fail(op, ErrNilElement)
	}
	if e.list != l {
		return fail(op, ErrNotMember)
	}
	return nil
}

// compare applies l's direction to Funcs.Compare, reduced to -1, 0 or 1.
func (l *List[T]) compare(a, b T) int {
	c := l.funcs.Compare(a, b)
	switch {
	case c < 0:
		c = -1
	case c > 0:
		c = 1
	}
	if l.descending {
		return -c
	}
	return c
}

func (l *List[T]) release(e *Element[T]) {
	if l.funcs.Release != nil {
		l.funcs.Release(e.Value)
	}
	var zero T
	e.Value = zero
}

func (l *List[T]) pushFront(e *Element[T]) {
	e.list = l
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.count++
}

func (l *List[T]) pushBack(e *Element[T]) {
	e.list = l
	e.next = nil
	e.prev = l.tail
	if l.tail != nil {
		l.tail.next = e
	} else {
		l.head = e
	}
	l.tail = e
	l.count++
}

func (l *List[T]) insertBefore(e *Element[T], mark *Element[T]) {
	e.list = l
	e.prev = mark.prev
	if e.prev != nil {
		e.prev.next = e
	}
	mark.prev = e
	e.next = mark
	if l.head == mark {
		l.head = e
	}
	l.count++
}

func (l *List[T]) popFront() *Element[T] {
	if l.count == 0 {
		return nil
	}
	e := l.head
	l.remove(e)
	return e
}

func (l *List[T]) remove(e *Element[T]) {
	if l.head == e {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if l.tail == e {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.prev = nil
	e.next = nil
	e.list = nil
	l.count--
}
