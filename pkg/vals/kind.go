package vals

import (
	"fmt"
	"math/big"
)

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the "kind" of the value, the name of its type tag. It is
// implemented for nil, the builtin scalar types and types satisfying the
// Kinder interface. For other types, it returns the Go type name of the
// argument preceded by "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int:
		return "int"
	case *big.Int:
		return "bigint"
	case uint:
		return "uint"
	case float64:
		return "float64"
	case string:
		return "string"
	case Kinder:
		return v.Kind()
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
