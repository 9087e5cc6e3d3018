package cons

import (
	"io"
	"strings"

	"github.com/elves/cons/pkg/vals"
)

// Print writes the elements of the list l to w, separated by ", " and
// followed by a newline. The empty list is written as just the newline.
// Elements are converted with vals.ToString.
func Print(w io.Writer, l any) error {
	if _, err := proper("print", l); err != nil {
		return err
	}
	var sb strings.Builder
	first := true
	err := Iterate(l, func(v any) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(vals.ToString(v))
		return true
	})
	if err != nil {
		return err
	}
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

// Sprint returns what Print would write.
func Sprint(l any) (string, error) {
	var sb strings.Builder
	if err := Print(&sb, l); err != nil {
		return "", err
	}
	return sb.String(), nil
}
