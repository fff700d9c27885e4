// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package binpath

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/jongio/findprog/logutil"
)

// scanDirs lists each directory in order and returns one entry per basename,
// keeping the first occurrence. Directories that are missing, not directories,
// or unreadable contribute nothing.
func scanDirs(dirs []string, log *logutil.ComponentLogger) []Entry {
	seen := make(map[string]struct{})
	var found []Entry

	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			log.Debug("skipping search-path entry", "dir", dir, "error", err)
			recordSkip(skipInvalid)
			continue
		}

		info, err := os.Stat(abs)
		if err != nil {
			log.Debug("skipping missing directory", "dir", abs)
			recordSkip(skipMissing)
			continue
		}
		if !info.IsDir() {
			log.Debug("skipping non-directory", "dir", abs)
			recordSkip(skipNotDir)
			continue
		}

		// os.ReadDir returns what it could read alongside the error; keep it.
		dirEntries, err := os.ReadDir(abs)
		if err != nil {
			log.Debug("directory listing incomplete", "dir", abs, "error", err)
			if len(dirEntries) == 0 {
				recordSkip(skipUnreadable)
				continue
			}
		}

		for _, de := range dirEntries {
			name := de.Name()
			if !utf8.ValidString(name) {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			found = append(found, Entry{Name: name, Path: filepath.Join(abs, name)})
		}
	}

	return found
}
