// Command consdemo prints a labeled trace of operations on persistent cons
// lists.
package main

import (
	"os"

	"github.com/elves/cons/pkg/buildinfo"
	"github.com/elves/cons/pkg/demo"
	"github.com/elves/cons/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &demo.Program{})))
}
