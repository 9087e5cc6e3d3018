package vals

import "github.com/elves/cons/pkg/tt"

var Args = tt.Args
