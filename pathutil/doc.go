// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pathutil provides helpers for the executable search path.
//
// The search path is read from the PATH environment variable and split on the
// platform list separator (':' on Unix, ';' on Windows). Empty elements are
// ignored rather than treated as the current directory.
//
// # Example
//
//	for _, dir := range pathutil.SplitSearchPath(os.Getenv(pathutil.SearchPathEnv)) {
//	    fmt.Println(dir)
//	}
//
// GetInstallSuggestion returns a short hint for tools the toolchain package
// knows about, and a generic hint for anything else.
package pathutil
