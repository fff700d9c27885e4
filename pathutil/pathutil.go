// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"strings"
)

// SearchPathEnv is the environment variable holding the executable search path.
const SearchPathEnv = "PATH"

// SplitSearchPath splits a search-path value into its directories, in order.
// Empty elements are dropped; duplicates are kept because order matters.
// Whitespace-only elements are kept since they are valid directory names.
func SplitSearchPath(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, string(os.PathListSeparator))
	dirs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		dirs = append(dirs, p)
	}
	return dirs
}

// JoinSearchPath is the inverse of SplitSearchPath.
func JoinSearchPath(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

// GetInstallSuggestion returns a suggestion for how to install a missing tool.
func GetInstallSuggestion(toolName string) string {
	suggestions := map[string]string{
		"cmake":   "Install from https://cmake.org/download/",
		"ninja":   "Install from https://github.com/ninja-build/ninja/releases",
		"make":    "Install GNU make from your system package manager (e.g. build-essential)",
		"gmake":   "Install GNU make from your system package manager (e.g. build-essential)",
		"meson":   "Install from https://mesonbuild.com/Getting-meson.html",
		"mold":    "Install from https://github.com/rui314/mold#how-to-build",
		"ld.lld":  "Install LLVM from https://releases.llvm.org/",
		"lld":     "Install LLVM from https://releases.llvm.org/",
		"ld.gold": "Install GNU binutils from your system package manager",
		"ld":      "Install GNU binutils from your system package manager",
		"ld.bfd":  "Install GNU binutils from your system package manager",
		"sccache": "Install from https://github.com/mozilla/sccache#installation",
		"ccache":  "Install from https://ccache.dev/download.html",
		"cc":      "Install a C compiler (gcc or clang) from your system package manager",
		"go":      "Install from https://go.dev/dl/",
		"git":     "Install from https://git-scm.com/downloads",
	}

	if suggestion, ok := suggestions[toolName]; ok {
		return suggestion
	}
	return fmt.Sprintf("Please install %s manually and make sure its directory is on %s", toolName, SearchPathEnv)
}
