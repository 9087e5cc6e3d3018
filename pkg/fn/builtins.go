package fn

import "github.com/elves/cons/pkg/vals"

// Builtin function values.
var (
	// Inc adds 1 to an int.
	Inc = Named("inc", Lambda(func(n int) int { return n + 1 }))
	// Plus adds two ints.
	Plus = Named("plus", Lambda2(func(a, b int) int { return a + b }))
	// Minus subtracts the second int from the first.
	Minus = Named("minus", Lambda2(func(a, b int) int { return a - b }))
	// Identity returns its argument.
	Identity = Func1("identity", func(v any) (any, error) { return v, nil })
	// Same reports whether its two arguments have the same type and value,
	// using vals.Equal. It is the default predicate for comparing lists.
	Same = Func2("same", func(a, b any) (any, error) { return vals.Equal(a, b), nil })
)
