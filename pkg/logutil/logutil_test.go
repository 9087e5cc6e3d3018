package logutil_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/elves/cons/pkg/logutil"
	"github.com/elves/cons/pkg/must"
	"github.com/elves/cons/pkg/testutil"
)

func TestLogger(t *testing.T) {
	logger := GetLogger("foo ")

	r, w := must.Pipe()
	SetOutput(w)
	logger.Println("out1")
	w.Close()
	wantOut1 := "foo [^\n]*out1\n"
	if out := must.ReadAllAndClose(r); !bytes.Contains(out, []byte("out1\n")) ||
		!bytes.HasPrefix(out, []byte("foo ")) {
		t.Errorf("got out %q, want one matching %q", out, wantOut1)
	}

	dir := testutil.TempDir(t)
	logPath := filepath.Join(dir, "log")
	must.OK(SetOutputFile(logPath))
	logger.Println("out2")
	logger.Println("out3")
	SetOutput(io.Discard)

	out := must.ReadFileString(logPath)
	if !strings.HasPrefix(out, "foo ") || !strings.Contains(out, "out2\n") ||
		!strings.Contains(out, "out3\n") {
		t.Errorf("got log file %q, want lines out2 and out3 prefixed with foo", out)
	}
}

func TestSetOutputFile_Empty(t *testing.T) {
	logger := GetLogger("bar ")
	must.OK(SetOutputFile(""))
	// Must not panic or write anywhere.
	logger.Println("discarded")
}

func TestSetOutputFile_BadPath(t *testing.T) {
	err := SetOutputFile(filepath.Join(testutil.TempDir(t), "no", "such", "dir", "log"))
	if !os.IsNotExist(err) {
		t.Errorf("got err %v, want a not-exist error", err)
	}
}
