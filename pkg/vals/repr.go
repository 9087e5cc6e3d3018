package vals

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents a value. The string is preferably
	// a Scheme-like literal of the value, like "(1 2 3)" for a list, or a
	// string enclosed in "<>" containing the kind and identity of the value,
	// like "<fn inc>".
	Repr() string
}

// Repr returns the representation for a value. It is implemented for nil,
// the builtin scalar types and types satisfying the Reprer interface. For
// other types, it uses fmt.Sprint with the format "<unknown %v>".
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "#t"
		}
		return "#f"
	case int:
		return strconv.Itoa(v)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case float64:
		return formatFloat64(v)
	case *big.Int:
		return v.String()
	case string:
		return strconv.Quote(v)
	case Reprer:
		return v.Repr()
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

// Stringer wraps the String method.
type Stringer interface {
	// String converts the receiver to a string.
	String() string
}

// ToString converts a value to the string used when printing it. Strings are
// written without quotes and bools as "1" and "0"; numbers are formatted as
// by Repr. Types satisfying the Stringer interface are converted with their
// String method. It falls back to Repr(v).
func ToString(v any) string {
	switch v := v.(type) {
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(v)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case float64:
		return formatFloat64(v)
	case string:
		return v
	case Stringer:
		return v.String()
	default:
		return Repr(v)
	}
}

func formatFloat64(f float64) string {
	// Use scientific notation only for very large or very small numbers, and
	// always keep a decimal point so that floats are distinguishable from
	// integers.
	s := strconv.FormatFloat(f, 'f', -1, 64)
	noPoint := !strings.ContainsRune(s, '.')
	if (noPoint && len(s) > 14 && s[len(s)-1] == '0') ||
		strings.HasPrefix(s, "0.0000") {
		return strconv.FormatFloat(f, 'e', -1, 64)
	} else if noPoint && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return s + ".0"
	}
	return s
}
