//go:build unix

package progtest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/creack/pty"

	"github.com/elves/cons/pkg/must"
	"github.com/elves/cons/pkg/prog"
)

// RunWithTTY runs a Program with its stdout connected to a pseudo-terminal,
// and returns the exit code and what the program wrote to the terminal. The
// terminal translates "\n" to "\r\n"; RunWithTTY translates it back. It skips
// the test if a pseudo-terminal cannot be opened.
func RunWithTTY(t *testing.T, p prog.Program, args ...string) (exit int, stdout string) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	defer ptmx.Close()

	done := make(chan []byte)
	go func() {
		// Reading from the master side returns an error (EIO on Linux) once
		// the slave side is closed; what has been read so far is still valid.
		var buf bytes.Buffer
		io.Copy(&buf, ptmx)
		done <- buf.Bytes()
	}()

	r0, w0 := must.Pipe()
	w0.Close()
	exit = prog.Run([3]*os.File{r0, tty, os.Stderr}, append([]string{"consdemo"}, args...), p)
	r0.Close()
	tty.Close()

	out := <-done
	return exit, string(bytes.ReplaceAll(out, []byte("\r\n"), []byte("\n")))
}
