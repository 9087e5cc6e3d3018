package cons

import (
	"github.com/elves/cons/pkg/fn"
	"github.com/elves/cons/pkg/vals"
)

// Append returns a list of the elements of l1 followed by those of l2. If l1
// is empty, l2 is returned unchanged. Otherwise the cells of l1 are copied
// and the tail of the last copy is l2 itself, so the result shares all of its
// cells with l2.
//
// l1 must be a proper list; l2 may be any value, in which case the result is
// improper unless l2 is a proper list.
func Append(l1, l2 any) (any, error) {
	n, err := proper("append", l1)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return l2, nil
	}
	heads := make([]any, 0, n)
	for c, ok := l1.(*Cell); ok; c, ok = c.tail.(*Cell) {
		heads = append(heads, c.head)
	}
	l := l2
	for i := len(heads) - 1; i >= 0; i-- {
		l = Cons(heads[i], l)
	}
	return l, nil
}

// Reverse returns a list of the elements of l in reverse order. If l is
// empty, it is returned unchanged. It takes linear time and constant stack
// space, consing each element onto an accumulator that starts at Empty.
func Reverse(l any) (any, error) {
	n, err := proper("reverse", l)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return l, nil
	}
	var acc any = Empty
	for c, ok := l.(*Cell); ok; c, ok = c.tail.(*Cell) {
		acc = Cons(c.head, acc)
	}
	return acc, nil
}

// Map returns a list of the results of applying the unary function f to each
// element of l, in order. If l is empty, it is returned unchanged.
func Map(f fn.Func, l any) (any, error) {
	n, err := proper("map", l)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return l, nil
	}
	results := make([]any, 0, n)
	for c, ok := l.(*Cell); ok; c, ok = c.tail.(*Cell) {
		v, err := fn.Apply(f, c.head)
		if err != nil {
			return nil, &CallError{"map", len(results), err}
		}
		results = append(results, v)
	}
	return FromSlice(results), nil
}

// Transform returns a list of the results of applying the binary function f
// to the elements of l1 and l2 at the same position. The two lists must have
// the same length; otherwise it fails with a *LengthMismatchError before f is
// ever called. Two empty lists produce Empty.
func Transform(f fn.Func, l1, l2 any) (any, error) {
	n1, err := proper("transform", l1)
	if err != nil {
		return nil, err
	}
	n2, err := proper("transform", l2)
	if err != nil {
		return nil, err
	}
	if n1 != n2 {
		return nil, &LengthMismatchError{"transform", n1, n2}
	}
	if n1 == 0 {
		return Empty, nil
	}
	results := make([]any, 0, n1)
	c1, c2 := l1.(*Cell), l2.(*Cell)
	for {
		v, err := fn.Apply(f, c1.head, c2.head)
		if err != nil {
			return nil, &CallError{"transform", len(results), err}
		}
		results = append(results, v)
		if IsEmpty(c1.tail) {
			break
		}
		c1, c2 = c1.tail.(*Cell), c2.tail.(*Cell)
	}
	return FromSlice(results), nil
}

// Equal reports whether l1 and l2 have the same length and equal elements at
// every position, comparing elements with vals.Equal. Unlike EqualFunc, it
// accepts any two values; values that are not proper lists are compared with
// vals.Equal too.
func Equal(l1, l2 any) bool {
	return vals.Equal(l1, l2)
}

// EqualFunc reports whether l1 and l2 have the same length and pred returns a
// truthy value (see vals.Bool) for the elements at every position. It returns
// false without calling pred when the lengths differ, and stops at the first
// position where pred returns a falsy value.
func EqualFunc(l1, l2 any, pred fn.Func) (bool, error) {
	n1, err := proper("equal", l1)
	if err != nil {
		return false, err
	}
	n2, err := proper("equal", l2)
	if err != nil {
		return false, err
	}
	if n1 != n2 {
		return false, nil
	}
	c1, ok1 := l1.(*Cell)
	c2, _ := l2.(*Cell)
	for i := 0; ok1; i++ {
		v, err := fn.Apply(pred, c1.head, c2.head)
		if err != nil {
			return false, &CallError{"equal", i, err}
		}
		if !vals.Bool(v) {
			return false, nil
		}
		c1, ok1 = c1.tail.(*Cell)
		c2, _ = c2.tail.(*Cell)
	}
	return true, nil
}
