// Package testutil provides common testing utilities for findprog packages.
// It includes helpers for capturing output and for building throwaway search-path
// directories populated with fake executables.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/findprog/pathutil"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the captured output.
// The original stdout is always restored, even if the function returns an error.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    return cmd.Execute()
//	})
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered so the reader goroutine never leaks.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// SearchDir creates a temporary directory containing an empty executable file
// for each name and returns the directory. The directory is removed when the
// test completes.
//
// Example:
//
//	bin := testutil.SearchDir(t, "cmake", "ninja")
//	testutil.SetSearchPath(t, bin)
func SearchDir(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	WriteExecutables(t, dir, names...)
	return dir
}

// WriteExecutables creates an empty executable file for each name in dir.
func WriteExecutables(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(dir, name)
		// #nosec G306 -- test fixtures must be executable
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("Failed to create executable %s: %v", path, err)
		}
	}
}

// SearchPath joins dirs into a search-path value using the platform separator.
func SearchPath(dirs ...string) string {
	return pathutil.JoinSearchPath(dirs...)
}

// SetSearchPath points PATH at dirs for the duration of the test.
// Like t.Setenv, it cannot be used in parallel tests.
func SetSearchPath(t *testing.T, dirs ...string) {
	t.Helper()
	t.Setenv(pathutil.SearchPathEnv, SearchPath(dirs...))
}
