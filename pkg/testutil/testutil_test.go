package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elves/cons/pkg/tt"
)

type cleanuper struct{ fns []func() }

func (c *cleanuper) Cleanup(fn func()) { c.fns = append(c.fns, fn) }

func (c *cleanuper) runCleanups() {
	for i := len(c.fns) - 1; i >= 0; i-- {
		c.fns[i]()
	}
}

func TestSet(t *testing.T) {
	c := &cleanuper{}
	s := "old"
	Set(c, &s, "new")
	if s != "new" {
		t.Errorf("After Set, s = %q, want %q", s, "new")
	}
	c.runCleanups()
	if s != "old" {
		t.Errorf("After cleanup, s = %q, want %q", s, "old")
	}
}

func TestSetenv(t *testing.T) {
	const name = "CONS_TESTUTIL_VAR"
	os.Unsetenv(name)
	c := &cleanuper{}
	Setenv(c, name, "value")
	if got := os.Getenv(name); got != "value" {
		t.Errorf("After Setenv, got %q", got)
	}
	c.runCleanups()
	if _, ok := os.LookupEnv(name); ok {
		t.Errorf("After cleanup, %s still set", name)
	}
}

func TestRecover(t *testing.T) {
	tt.Test(t, Recover,
		tt.Args(func() {}).Rets(nil),
		tt.Args(func() { panic("unreachable") }).Rets("unreachable"),
	)
}

func TestTempDir(t *testing.T) {
	c := &cleanuper{}
	dir := TempDir(c)
	stat, err := os.Stat(dir)
	if err != nil || !stat.IsDir() {
		t.Fatalf("TempDir returns %q which is not a dir", dir)
	}
	if resolved, _ := filepath.EvalSymlinks(dir); resolved != dir {
		t.Errorf("TempDir returns %q, but it resolves to %q", dir, resolved)
	}
	os.WriteFile(filepath.Join(dir, "file"), []byte("x"), 0600)
	c.runCleanups()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Dir %q still exists after cleanup", dir)
	}
}

func TestInTempDir(t *testing.T) {
	oldDir, _ := os.Getwd()
	c := &cleanuper{}
	dir := InTempDir(c)
	if wd, _ := os.Getwd(); wd != dir {
		t.Errorf("wd = %q, want %q", wd, dir)
	}
	c.runCleanups()
	if wd, _ := os.Getwd(); wd != oldDir {
		t.Errorf("After cleanup, wd = %q, want %q", wd, oldDir)
	}
}
