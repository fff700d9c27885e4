// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package binpath resolves program names to absolute paths through a lazily
// populated, process-wide cache of the executable search path.
//
// The first lookup that misses scans every directory listed in PATH, in order,
// and records each directory entry under its basename. When two directories
// hold the same basename the earlier one wins, and a recorded entry is never
// replaced or removed for the lifetime of the cache.
//
// # Example
//
//	if path, ok := binpath.FindProgram("cmake"); ok {
//	    fmt.Println("cmake is at", path)
//	}
//
// # Population Policy
//
// By default every miss triggers a new scan, so a program installed after the
// first lookup is still found by a later one. PolicyPopulateOnce scans a single
// time per cache and answers later misses from memory. The process-wide cache
// reads the policy from FINDPROG_POPULATE ("miss" or "once").
//
// # Failure Handling
//
// Lookups never return errors. A missing or empty PATH, a directory that does
// not exist or cannot be read, and entry names that are not valid UTF-8 all
// contribute nothing to the cache. Skipped directories are reported at debug
// level through logutil.
//
// # Concurrency
//
// A Cache is safe for concurrent use. Concurrent misses against the same search
// path share a single scan.
package binpath
