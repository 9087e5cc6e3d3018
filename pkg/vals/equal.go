// Package vals contains basic facilities for manipulating the values that can
// be stored in cons cells.
//
// Any Go value can be a list element. Scalars carry their type along with
// them: int(1) and uint(1) are different elements.
package vals

import (
	"math/big"
	"reflect"
)

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value. Two equal values must have
	// the same hash code.
	Equal(other any) bool
}

// Equal returns whether two values are equal. Two values are only equal if
// they have the same type; for the builtin scalar types bool, int, uint,
// float64 and string the values are then compared with ==. *big.Int values
// are compared numerically, and types satisfying the Equaler interface decide
// for themselves. For other types, it uses reflect.DeepEqual.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return x == y
	case bool:
		return x == y
	case int:
		return x == y
	case uint:
		return x == y
	case float64:
		return x == y
	case string:
		return x == y
	case *big.Int:
		if y, ok := y.(*big.Int); ok {
			return x.Cmp(y) == 0
		}
		return false
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}
