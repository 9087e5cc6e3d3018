package cons

import (
	"testing"

	"github.com/elves/cons/pkg/tt"
	"github.com/elves/cons/pkg/vals"
)

var Args = tt.Args

func TestCons(t *testing.T) {
	pair := Cons(1, 2)
	if pair.Head() != 1 || pair.Tail() != 2 {
		t.Errorf("Cons(1, 2) has head %v and tail %v", pair.Head(), pair.Tail())
	}
	nested := Cons(1, Cons(2, 3))
	if got := nested.Tail().(*Cell).Tail(); got != 3 {
		t.Errorf("tail of tail = %v, want 3", got)
	}
}

func TestCarCdr(t *testing.T) {
	l := List(1, 2, 3)
	tt.Test(t, Car,
		Args(Cons(1, 2)).Rets(1, nil),
		Args(l).Rets(1, nil),
		Args(Empty).Rets(nil, &EmptyListError{"car"}),
		Args(1).Rets(nil, &NotPairError{"car", 1}),
		Args(nil).Rets(nil, &NotPairError{"car", nil}),
		Args((*Cell)(nil)).Rets(nil, &NotPairError{"car", (*Cell)(nil)}),
	)
	tt.Test(t, Cdr,
		Args(Cons(1, 2)).Rets(2, nil),
		Args(l).Rets(List(2, 3), nil),
		Args(List(1)).Rets(Empty, nil),
		Args(Empty).Rets(nil, &EmptyListError{"cdr"}),
		Args("foo").Rets(nil, &NotPairError{"cdr", "foo"}),
	)
}

func TestCdr_SharesTail(t *testing.T) {
	tail := List(2, 3)
	l := Cons(1, tail)
	got, _ := Cdr(l)
	if got != tail {
		t.Errorf("Cdr returned a copy of the tail")
	}
}

func TestIsEmpty(t *testing.T) {
	tt.Test(t, IsEmpty,
		Args(Empty).Rets(true),
		Args(List()).Rets(true),
		Args(List(1)).Rets(false),
		Args(Cons(Empty, Empty)).Rets(false),
		Args(nil).Rets(false),
		Args(0).Rets(false),
	)
}

func TestLength(t *testing.T) {
	tt.Test(t, Length,
		Args(Empty).Rets(0, nil),
		Args(List(1)).Rets(1, nil),
		Args(List(1, 2, 3)).Rets(3, nil),
		Args(List(List(1, 2), Empty)).Rets(2, nil),
		Args(Cons(1, Cons(2, Empty))).Rets(2, nil),

		Args(Cons(1, 2)).Rets(0, &ImproperListError{"length", Cons(1, 2)}),
		Args(Cons(0, Cons(1, 2))).Rets(0, &ImproperListError{"length", Cons(0, Cons(1, 2))}),
		Args(1).Rets(0, &ImproperListError{"length", 1}),
		Args((*Cell)(nil)).Rets(0, &ImproperListError{"length", (*Cell)(nil)}),
	)
}

func TestCell_Vals(t *testing.T) {
	tt.Test(t, vals.Kind,
		Args(List(1)).Rets("cons"),
		Args(Empty).Rets("empty"),
	)
	tt.Test(t, vals.Repr,
		Args(Empty).Rets("()"),
		Args(List(1, 2, 3)).Rets("(1 2 3)"),
		Args(List(1, "a", true)).Rets(`(1 "a" #t)`),
		Args(List(List(1, 2), Empty, 3)).Rets("((1 2) () 3)"),
		Args(Cons(1, 2)).Rets("(1 . 2)"),
		Args(Cons(1, Cons(2, 3))).Rets("(1 2 . 3)"),
		Args((*Cell)(nil)).Rets("<nil cell>"),
	)
	tt.Test(t, vals.Equal,
		Args(Empty, Empty).Rets(true),
		Args(Empty, List()).Rets(true),
		Args(Empty, nil).Rets(false),
		Args(List(1, 2), List(1, 2)).Rets(true),
		Args(List(1, 2), List(1, 3)).Rets(false),
		Args(List(1, 2), List(1, 2, 3)).Rets(false),
		Args(List(1, 2), List(1, uint(2))).Rets(false),
		Args(List(List(1), 2), List(List(1), 2)).Rets(true),
		Args(List(List(1), 2), List(List(2), 2)).Rets(false),
		Args(Cons(1, 2), Cons(1, 2)).Rets(true),
		Args(Cons(1, 2), Cons(1, 3)).Rets(false),
		Args(Cons(1, 2), List(1, 2)).Rets(false),
		Args(List(1), Empty).Rets(false),
		Args(List(1), 1).Rets(false),
		Args((*Cell)(nil), (*Cell)(nil)).Rets(true),
		Args((*Cell)(nil), List(1)).Rets(false),
		Args(List(1), (*Cell)(nil)).Rets(false),
	)
}

func TestCell_Hash(t *testing.T) {
	tt.Test(t, vals.Hash,
		Args(Empty).Rets(vals.DJBInit),
		Args(List(1, 2)).Rets(vals.DJB(vals.Hash(1), vals.Hash(2), vals.DJBInit)),
		Args(Cons(1, 2)).Rets(vals.DJB(vals.Hash(1), vals.Hash(2))),
		Args((*Cell)(nil)).Rets(uint32(0)),
	)
	if vals.Hash(List(1, 2, 3)) != vals.Hash(Cons(1, List(2, 3))) {
		t.Errorf("equal lists have different hashes")
	}
}

func TestCell_String(t *testing.T) {
	if s := List(1, 2).(*Cell).String(); s != "(1 2)" {
		t.Errorf("String() = %q, want %q", s, "(1 2)")
	}
}
