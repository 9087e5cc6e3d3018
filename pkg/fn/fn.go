// Package fn implements function values that can be passed to list
// operations.
//
// A function value has a fixed arity and is invoked with Apply. Ordinary Go
// functions are adapted into function values with Lambda and Lambda2, which
// unwrap each argument to the parameter type of the Go function, call it, and
// wrap the result again.
//
// Functions passed to list operations must be pure: the order in which
// elements are visited is unspecified, and results may be cached (see Memo).
package fn

import (
	"fmt"
	"reflect"

	"github.com/elves/cons/pkg/vals"
)

// Func is a function value.
type Func interface {
	// Arity returns the number of arguments the function accepts.
	Arity() int
	// Call calls the function. The caller must pass exactly Arity()
	// arguments; use Apply to have the number checked.
	Call(args ...any) (any, error)
}

// ArityError is returned when a function value is called with the wrong
// number of arguments.
type ArityError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: wrong number of arguments: want %d, got %d", e.Name, e.Want, e.Got)
}

// ArgTypeError is returned when an argument cannot be unwrapped to the
// parameter type of an adapted Go function.
type ArgTypeError struct {
	Name  string
	Index int
	Want  string
	Value any
}

func (e *ArgTypeError) Error() string {
	return fmt.Sprintf("%s: argument %d must be %s, got %s %s",
		e.Name, e.Index, e.Want, vals.Kind(e.Value), vals.Repr(e.Value))
}

// Apply calls f with the given arguments, after checking that their number
// matches the arity of f.
func Apply(f Func, args ...any) (any, error) {
	if len(args) != f.Arity() {
		return nil, &ArityError{Name(f), f.Arity(), len(args)}
	}
	return f.Call(args...)
}

// Namer wraps the Name method.
type Namer interface {
	Name() string
}

// Name returns the name of a function value, or "<anonymous>" if it doesn't
// have one.
func Name(f Func) string {
	if n, ok := f.(Namer); ok {
		return n.Name()
	}
	return "<anonymous>"
}

// Lambda adapts a unary Go function into a Func.
func Lambda[A, R any](f func(A) R) Func {
	return &lambda{"<lambda>", 1, func(args []any) (any, error) {
		a, err := unwrap[A](0, args[0])
		if err != nil {
			return nil, err
		}
		return f(a), nil
	}}
}

// Lambda2 adapts a binary Go function into a Func.
func Lambda2[A, B, R any](f func(A, B) R) Func {
	return &lambda{"<lambda>", 2, func(args []any) (any, error) {
		a, err := unwrap[A](0, args[0])
		if err != nil {
			return nil, err
		}
		b, err := unwrap[B](1, args[1])
		if err != nil {
			return nil, err
		}
		return f(a, b), nil
	}}
}

// Named returns a copy of a function value created by Lambda or Lambda2, with
// the given name. Other function values are returned unchanged.
func Named(name string, f Func) Func {
	if l, ok := f.(*lambda); ok {
		return &lambda{name, l.arity, l.body}
	}
	return f
}

type lambda struct {
	name  string
	arity int
	body  func([]any) (any, error)
}

func (l *lambda) Arity() int  { return l.arity }
func (l *lambda) Name() string { return l.name }
func (l *lambda) Kind() string { return "fn" }
func (l *lambda) Repr() string { return "<fn " + l.name + ">" }

func (l *lambda) Call(args ...any) (any, error) {
	v, err := l.body(args)
	if e, ok := err.(*ArgTypeError); ok && e.Name == "" {
		e.Name = l.name
	}
	return v, err
}

// unwrap converts an argument to the parameter type T. The Name field of the
// returned error is filled in by (*lambda).Call.
func unwrap[T any](i int, v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	// A nil argument is accepted for parameters of interface, pointer, map,
	// slice, chan and func types.
	if v == nil {
		switch reflect.TypeOf(&zero).Elem().Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
			reflect.Chan, reflect.Func:
			return zero, nil
		}
	}
	return zero, &ArgTypeError{"", i, reflect.TypeOf(&zero).Elem().String(), v}
}

// Func1 builds a named unary function value from a function operating on
// arbitrary values.
func Func1(name string, f func(any) (any, error)) Func {
	return &lambda{name, 1, func(args []any) (any, error) { return f(args[0]) }}
}

// Func2 builds a named binary function value from a function operating on
// arbitrary values.
func Func2(name string, f func(any, any) (any, error)) Func {
	return &lambda{name, 2, func(args []any) (any, error) { return f(args[0], args[1]) }}
}
