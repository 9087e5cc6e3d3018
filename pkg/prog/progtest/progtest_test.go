package progtest

import (
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/elves/cons/pkg/prog"
)

type echoProgram struct{}

func (echoProgram) RegisterFlags(*prog.FlagSet) {}

func (echoProgram) Run(fds [3]*os.File, args []string) error {
	if len(args) > 0 && args[0] == "fail" {
		return prog.Exit(3)
	}
	in, _ := io.ReadAll(fds[0])
	fmt.Fprint(fds[1], string(in))
	fmt.Fprint(fds[2], args)
	return nil
}

func TestTest(t *testing.T) {
	Test(t, echoProgram{},
		ThatProgram().WritesStderr("[]"),
		ThatProgram("a", "b").WithStdin("input").
			WritesStdout("input").WritesStderrContaining("a b"),
		ThatProgram("fail").ExitsWith(3),
	)
}

func TestRun(t *testing.T) {
	exit, stdout, stderr := Run(echoProgram{}, "x")
	if exit != 0 || stdout != "" || stderr != "[x]" {
		t.Errorf("Run -> (%v, %q, %q)", exit, stdout, stderr)
	}
}
