package jlist

// Sort returns a sorted list holding the same payloads as l.
//
// If l already believes it is sorted, Sort returns l itself. Otherwise it builds a new list from
// Funcs.Copy of every payload using ordered inserts, destroys l, and returns the new list. The new
// list keeps l's Funcs, options and Mode. This is an insertion sort and takes quadratic time.
func (l *List[T]) Sort() (*List[T], error) {
	if l == nil {
		return nil, fail("sort", ErrNilList)
	}
	if l.funcs.Compare == nil {
		return nil, fail("sort", ErrNoCompare)
	}
	if l.funcs.Copy == nil {
		return nil, fail("sort", ErrNoCopy)
	}
	if !l.unsorted {
		return l, nil
	}

	sorted := &List[T]{
		funcs:   l.funcs,
		options: l.options,
	}
	sorted.mode = Ordered
	for e := l.head; e != nil; e = e.next {
		if err := sorted.Insert(NewElement(l.funcs.Copy(e.Value))); err != nil {
			return nil, err
		}
	}
	sorted.mode = l.mode

	if err := l.Destroy(); err != nil {
		return nil, err
	}
	return sorted, nil
}

// Action is applied to elements by Visit. It reports whether it may have changed the element's
// position in the sort order.
type Action[T any] func(e *Element[T]) (disturbed bool)

// Filter selects the elements Visit applies its Action to.
type Filter[T any] func(e *Element[T]) bool

// Visit calls action on every element of l, front to back, for which filter returns true. A nil
// filter selects every element. If any call to action reports a disturbance, l stops believing it
// is sorted.
//
// action may delete the element it is given, but must not otherwise change the links of l.
func (l *List[T]) Visit(action Action[T], filter Filter[T]) error {
	if l == nil {
		return fail("visit", ErrNilList)
	}
	if action == nil {
		return fail("visit", ErrNilAction)
	}
	for e := l.head; e != nil; {
		next := e.next
		if filter == nil || filter(e) {
			if action(e) {
				l.unsorted = true
			}
		}
		e = next
	}
	return nil
}
