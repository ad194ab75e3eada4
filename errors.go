package binstream

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by any operation on a Reader or Writer after it
// has been closed.
var ErrClosed = errors.New("binstream: use of closed stream")

// A LengthError reports a fixed-width decode that received a byte
// sequence of the wrong length.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("binstream: invalid length: expected %d bytes, got %d", e.Expected, e.Actual)
}

// An EnumRangeError reports an ordinal outside an enumeration's
// declared constant list.
type EnumRangeError struct {
	Enum    string
	Ordinal int
	Size    int
}

func (e *EnumRangeError) Error() string {
	return fmt.Sprintf("binstream: enum %s: ordinal %d out of range [0, %d)", e.Enum, e.Ordinal, e.Size)
}

// An EnumNameError reports a name that matches none of an enumeration's
// declared constants.
type EnumNameError struct {
	Enum string
	Name string
}

func (e *EnumNameError) Error() string {
	return fmt.Sprintf("binstream: enum %s: unknown constant %q", e.Enum, e.Name)
}
