package jlist

import (
	"errors"
	"fmt"
)

// Every error returned by this package is a programmer error: a missing argument, a list that was
// never configured for the operation, or an element used with the wrong list. None of them are
// worth retrying. The one ordinary outcome, "nothing there", is reported as a nil *Element with a
// nil error.
var (
	ErrNilList    = errors.New("jlist: nil list")
	ErrNilElement = errors.New("jlist: nil element")
	ErrNilAction  = errors.New("jlist: nil action")

	// ErrNoCompare is returned by operations that order or search the list when Funcs.Compare is
	// nil.
	ErrNoCompare = errors.New("jlist: no compare function")
	// ErrNoCopy is returned by Sort when Funcs.Copy is nil.
	ErrNoCopy      = errors.New("jlist: no copy function")
	ErrInvalidMode = errors.New("jlist: invalid insert mode")

	ErrEmpty        = errors.New("jlist: list is empty")
	ErrInconsistent = errors.New("jlist: count does not match links")
	// ErrNotMember is returned when an element is used with a list it is not linked into.
	ErrNotMember = errors.New("jlist: element not in list")
	// ErrLinked is returned when inserting an element that is still linked into a list.
	ErrLinked = errors.New("jlist: element already in a list")
)

func fail(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
