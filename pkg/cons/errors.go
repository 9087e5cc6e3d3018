package cons

import (
	"fmt"

	"github.com/elves/cons/pkg/vals"
)

// EmptyListError is returned when car or cdr is applied to Empty.
type EmptyListError struct {
	Op string
}

func (e *EmptyListError) Error() string {
	return e.Op + ": empty list"
}

// NotPairError is returned when car or cdr is applied to a value that is
// neither Empty nor a cell.
type NotPairError struct {
	Op    string
	Value any
}

func (e *NotPairError) Error() string {
	return fmt.Sprintf("%s: not a pair: %s %s", e.Op, vals.Kind(e.Value), vals.Repr(e.Value))
}

// ImproperListError is returned when an operation that walks a list is given
// a value that is not a chain of cells terminated by Empty.
type ImproperListError struct {
	Op    string
	Value any
}

func (e *ImproperListError) Error() string {
	return fmt.Sprintf("%s: not a proper list: %s", e.Op, vals.Repr(e.Value))
}

// LengthMismatchError is returned by Transform when the two lists have
// different lengths.
type LengthMismatchError struct {
	Op   string
	Len1 int
	Len2 int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: lists have different lengths: %d and %d", e.Op, e.Len1, e.Len2)
}

// IndexError is returned by Nth when the index is out of range.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: %d (length %d)", e.Index, e.Len)
}

// CallError wraps an error returned by a function value that was called by
// a list operation on the element at Index.
type CallError struct {
	Op    string
	Index int
	Err   error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: element %d: %v", e.Op, e.Index, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }
