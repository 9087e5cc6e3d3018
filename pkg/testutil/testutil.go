// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"path/filepath"
)

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// Set sets *p to v for the duration of a test, and restores the old value
// when the test finishes.
func Set[T any](c Cleanuper, p *T, v T) {
	old := *p
	*p = v
	c.Cleanup(func() { *p = old })
}

// Setenv sets the value of an environment variable for the duration of a
// test. It returns value.
func Setenv(c Cleanuper, name, value string) string {
	oldValue, existed := os.LookupEnv(name)
	if existed {
		c.Cleanup(func() { os.Setenv(name, oldValue) })
	} else {
		c.Cleanup(func() { os.Unsetenv(name) })
	}
	os.Setenv(name, value)
	return value
}

// Recover calls f and returns the value recovered from a panic in f, or nil
// if f doesn't panic.
func Recover(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return
}

// TempDir creates a temporary directory for the duration of a test, and
// returns its path with all symlinks resolved.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "constest")
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			panic(err)
		}
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the directory for the
// duration of the test, restoring the old working directory afterwards. It
// returns the path of the temporary directory.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	oldDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	// Registered after the cleanup of TempDir, so it runs before it.
	c.Cleanup(func() {
		if err := os.Chdir(oldDir); err != nil {
			panic(err)
		}
	})
	return dir
}
