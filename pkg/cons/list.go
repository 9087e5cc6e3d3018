package cons

// List returns a proper list of the given values, in order. It returns Empty
// when called without arguments.
func List(values ...any) any {
	return FromSlice(values)
}

// FromSlice returns a proper list of the elements of s, in order.
func FromSlice[T any](s []T) any {
	var l any = Empty
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}
	return l
}

// ToSlice returns the elements of the list l as a slice. It returns nil for
// Empty.
func ToSlice(l any) ([]any, error) {
	n, err := proper("to-slice", l)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	s := make([]any, 0, n)
	for c := l.(*Cell); ; c = c.tail.(*Cell) {
		s = append(s, c.head)
		if IsEmpty(c.tail) {
			return s, nil
		}
	}
}

// Iterate calls f with each element of the list l in order, stopping early if
// f returns false. It fails with an *ImproperListError without calling f if l
// is not a proper list.
func Iterate(l any, f func(any) bool) error {
	if _, err := proper("iterate", l); err != nil {
		return err
	}
	for c, ok := l.(*Cell); ok; c, ok = c.tail.(*Cell) {
		if !f(c.head) {
			break
		}
	}
	return nil
}

// Nth returns the element at index i of the list l, counting from 0.
func Nth(l any, i int) (any, error) {
	n, err := proper("nth", l)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, &IndexError{i, n}
	}
	c := l.(*Cell)
	for ; i > 0; i-- {
		c = c.tail.(*Cell)
	}
	return c.head, nil
}

// proper returns the length of l and an *ImproperListError naming op if l is
// not a proper list.
func proper(op string, l any) (int, error) {
	n, err := Length(l)
	if err != nil {
		return 0, &ImproperListError{op, l}
	}
	return n, nil
}
