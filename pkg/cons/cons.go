// Package cons implements immutable Scheme-style lists built from cons cells.
//
// A list is either Empty, or a *Cell whose tail is a list. Cells can also be
// used as arbitrary pairs: Cons never validates its tail, but operations that
// walk a list return an *ImproperListError when the chain of cells does not
// end in Empty.
//
// Cells are never modified after construction, so all values in this package
// are safe for concurrent use, and derived lists share cells with the lists
// they are derived from wherever possible. Since a cell can only point to
// cells that already exist, a chain of cells can never be cyclic.
package cons

import (
	"strings"

	"github.com/elves/cons/pkg/vals"
)

// Cell is an immutable pair of a head and a tail. The zero value is not
// useful; cells are created with Cons.
type Cell struct {
	head any
	tail any
	// The number of cells in the chain starting at this cell if the chain is
	// terminated by Empty, or -1 otherwise.
	n int
}

// Empty is the empty list. It is distinct from every *Cell, and terminates
// every proper list.
var Empty any = emptyList{}

type emptyList struct{}

func (emptyList) Kind() string         { return "empty" }
func (emptyList) Repr() string         { return "()" }
func (emptyList) String() string       { return "()" }
func (emptyList) GoString() string     { return "cons.Empty" }
func (emptyList) Equal(other any) bool { return IsEmpty(other) }
func (emptyList) Hash() uint32         { return vals.DJBInit }

// Cons returns a new cell with the given head and tail. It always succeeds;
// the tail may be any value.
func Cons(head, tail any) *Cell {
	n := -1
	switch tail := tail.(type) {
	case emptyList:
		n = 1
	case *Cell:
		if tail != nil && tail.n > 0 {
			n = tail.n + 1
		}
	}
	return &Cell{head, tail, n}
}

// Head returns the head of the cell.
func (c *Cell) Head() any { return c.head }

// Tail returns the tail of the cell.
func (c *Cell) Tail() any { return c.tail }

// IsEmpty reports whether l is the empty list. It returns false for every
// cell, including a list with one element.
func IsEmpty(l any) bool {
	_, ok := l.(emptyList)
	return ok
}

// Car returns the head of a cell. It fails with an *EmptyListError if l is
// Empty, and a *NotPairError if l is not a cell.
func Car(l any) (any, error) {
	c, err := asCell("car", l)
	if err != nil {
		return nil, err
	}
	return c.head, nil
}

// Cdr returns the tail of a cell. It fails with an *EmptyListError if l is
// Empty, and a *NotPairError if l is not a cell.
func Cdr(l any) (any, error) {
	c, err := asCell("cdr", l)
	if err != nil {
		return nil, err
	}
	return c.tail, nil
}

func asCell(op string, l any) (*Cell, error) {
	switch l := l.(type) {
	case emptyList:
		return nil, &EmptyListError{op}
	case *Cell:
		if l != nil {
			return l, nil
		}
	}
	return nil, &NotPairError{op, l}
}

// Length returns the number of cells in the list l: 0 for Empty, 1 plus the
// length of the tail otherwise. It fails with an *ImproperListError if l is
// not a proper list. It takes constant time.
func Length(l any) (int, error) {
	switch l := l.(type) {
	case emptyList:
		return 0, nil
	case *Cell:
		if l != nil && l.n > 0 {
			return l.n, nil
		}
	}
	return 0, &ImproperListError{"length", l}
}

// Kind returns "cons".
func (c *Cell) Kind() string { return "cons" }

// Equal reports whether other is a cell with equal head and tail, using
// vals.Equal to compare the elements.
func (c *Cell) Equal(other any) bool {
	d, ok := other.(*Cell)
	if !ok || c == nil || d == nil {
		return ok && c == d
	}
	for {
		if c == d {
			return true
		}
		if c.n != d.n || !vals.Equal(c.head, d.head) {
			return false
		}
		ct, cok := c.tail.(*Cell)
		dt, dok := d.tail.(*Cell)
		if !cok || !dok || ct == nil || dt == nil {
			return vals.Equal(c.tail, d.tail)
		}
		c, d = ct, dt
	}
}

// Hash returns the DJB hash of the hash codes of the elements, followed by
// the hash code of the final tail.
func (c *Cell) Hash() uint32 {
	if c == nil {
		return 0
	}
	h := vals.DJBInit
	var tail any = c
	for {
		cell, ok := tail.(*Cell)
		if !ok || cell == nil {
			break
		}
		h = vals.DJBCombine(h, vals.Hash(cell.head))
		tail = cell.tail
	}
	return vals.DJBCombine(h, vals.Hash(tail))
}

// Repr returns the Scheme-like representation of the chain starting at c,
// like "(1 2 3)" for a proper list and "(1 2 . 3)" for an improper one.
func (c *Cell) Repr() string {
	if c == nil {
		return "<nil cell>"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	var tail any = c
	for i := 0; ; i++ {
		cell, ok := tail.(*Cell)
		if !ok || cell == nil {
			break
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(vals.Repr(cell.head))
		tail = cell.tail
	}
	if !IsEmpty(tail) {
		sb.WriteString(" . ")
		sb.WriteString(vals.Repr(tail))
	}
	sb.WriteByte(')')
	return sb.String()
}

// String returns the same value as Repr.
func (c *Cell) String() string { return c.Repr() }
