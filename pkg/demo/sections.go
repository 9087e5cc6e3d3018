package demo

import (
	"fmt"
	"strings"

	"github.com/elves/cons/pkg/cons"
	"github.com/elves/cons/pkg/fn"
	"github.com/elves/cons/pkg/vals"
)

type section struct {
	label string
	run   func(*trace)
}

// trace collects the lines printed by a section and the errors it
// encountered. A failed step prints nothing.
type trace struct {
	lines []string
	errs  []error
}

func (t *trace) add(v any, err error) {
	if err != nil {
		t.errs = append(t.errs, err)
		return
	}
	t.lines = append(t.lines, vals.ToString(v))
}

func (t *trace) addf(format string, args ...any) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

func (t *trace) print(l any, err error) {
	if err != nil {
		t.errs = append(t.errs, err)
		return
	}
	s, err := cons.Sprint(l)
	t.add(strings.TrimSuffix(s, "\n"), err)
}

// head returns the first element of the result of a list operation.
func head(l any, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return cons.Car(l)
}

func inc(n int) int { return n + 1 }

var sections = []section{
	{"plus & minus", func(t *trace) {
		t.add(fn.Apply(fn.Plus, 1, 1))
	}},
	{"binary", func(t *trace) {
		t.add(vals.Binary(101))
	}},
	{"cons", func(t *trace) {
		t.add(cons.Cons(1, 2).Head(), nil)
		rest, err := cons.Cdr(cons.Cons(1, cons.Cons(2, 3)))
		if err != nil {
			t.add(nil, err)
			return
		}
		t.add(cons.Cdr(rest))
	}},
	{"car & cdr", func(t *trace) {
		pair := cons.Cons(1, 2)
		t.add(cons.Car(pair))
		t.add(cons.Car(cons.Cons(1, 2)))
		t.add(fn.Apply(fn.Func1("car", cons.Car), pair))
		t.add(head(cons.Cdr(cons.Cons(1, cons.Cons(2, 3)))))
	}},
	{"list", func(t *trace) {
		t.add(cons.Car(cons.Cons(1, cons.Cons(2, cons.Cons(3, cons.Empty)))))
		t.add(cons.Car(cons.List(1, 2, 3)))
		if cons.IsEmpty(cons.FromSlice([]int{})) {
			t.addf("same")
		} else {
			t.addf("different")
		}
		t.print(cons.List(1, 2, 3), nil)
	}},
	{"list length", func(t *trace) {
		t.addf("is_empty<empty>: %s", vals.ToString(cons.IsEmpty(cons.Empty)))
		t.addf("is_empty<list<int, 1, 2, 3>>: %s",
			vals.ToString(cons.IsEmpty(cons.List(1, 2, 3))))
		t.add(cons.Length(cons.List(1, 2, 3)))
	}},
	{"reverse", func(t *trace) {
		t.print(cons.Reverse(cons.List(1, 2, 3)))
	}},
	{"list append", func(t *trace) {
		l, err := cons.Append(cons.List(1, 2, 3), cons.List(4, 5, 6, 7))
		if err != nil {
			t.add(nil, err)
			return
		}
		t.add(cons.Length(l))
		t.print(l, nil)
	}},
	{"map", func(t *trace) {
		l, err := cons.Map(fn.Inc, cons.List(1, 2, 3))
		if err != nil {
			t.add(nil, err)
			return
		}
		t.add(cons.Car(l))
		t.print(l, nil)
	}},
	{"lambda", func(t *trace) {
		t.add(fn.Apply(fn.Lambda(inc), 0))
		t.add(head(cons.Map(fn.Memo(fn.Lambda(inc)), cons.List(1, 2, 3))))
	}},
	{"transform", func(t *trace) {
		l1 := cons.List(1, 2, 3)
		l2 := cons.List(3, 2, 1)
		minus, err1 := cons.Transform(fn.Minus, l1, l2)
		plus, err2 := cons.Transform(fn.Plus, l1, l2)
		t.add(head(minus, err1))
		t.add(head(plus, err2))
		t.print(minus, err1)
		t.print(plus, err2)
	}},
}

func findSection(label string) (section, bool) {
	for _, s := range sections {
		if s.label == label {
			return s, true
		}
	}
	return section{}, false
}
