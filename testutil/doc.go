// Package testutil provides common testing utilities for findprog packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating search-path directories with fake executables (SearchDir, WriteExecutables)
//   - Building and installing PATH values (SearchPath, SetSearchPath)
//
// All functions that take a *testing.T use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestWhich(t *testing.T) {
//	    bin := testutil.SearchDir(t, "ninja")
//	    testutil.SetSearchPath(t, bin)
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runCommand("which", "ninja")
//	    })
//	    if !strings.Contains(output, filepath.Join(bin, "ninja")) {
//	        t.Error("expected ninja path in output")
//	    }
//	}
package testutil
