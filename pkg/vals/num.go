package vals

import "fmt"

// BadDigitError is returned by Binary when the argument contains a decimal
// digit that is not a binary digit.
type BadDigitError struct {
	Number uint
	Digit  uint
}

func (e *BadDigitError) Error() string {
	return fmt.Sprintf("binary: %d is not a binary numeral (digit %d)", e.Number, e.Digit)
}

// Binary interprets the decimal digits of n as a base-2 numeral and returns
// its value. For example, Binary(101) is 5.
func Binary(n uint) (uint, error) {
	var result uint
	for shift, rest := 0, n; rest > 0; shift, rest = shift+1, rest/10 {
		d := rest % 10
		if d > 1 {
			return 0, &BadDigitError{n, d}
		}
		result |= d << shift
	}
	return result, nil
}
