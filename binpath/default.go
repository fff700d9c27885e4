// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package binpath

import (
	"os"
	"sync"

	"github.com/jongio/findprog/logutil"
)

var (
	defaultOnce  sync.Once
	defaultCache *Cache
)

// Default returns the process-wide cache, creating it on first use.
// Its policy comes from FINDPROG_POPULATE; an unrecognized value falls back to
// PolicyRescanOnMiss with a warning.
func Default() *Cache {
	defaultOnce.Do(func() {
		policy, err := ParsePolicy(os.Getenv(EnvPopulate))
		if err != nil {
			logutil.Warn("ignoring "+EnvPopulate, "error", err)
		}
		defaultCache = New(Options{Policy: policy})
	})
	return defaultCache
}

// FindProgram resolves name through the process-wide cache.
func FindProgram(name string) (string, bool) {
	return Default().Find(name)
}
