// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package binpath

import (
	"os"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jongio/findprog/logutil"
	"github.com/jongio/findprog/pathutil"
)

// Entry is a program basename and the absolute path it resolved to.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Stats tracks cache activity.
type Stats struct {
	Hits    int `json:"hits" yaml:"hits"`
	Misses  int `json:"misses" yaml:"misses"`
	Scans   int `json:"scans" yaml:"scans"`
	Entries int `json:"entries" yaml:"entries"`
}

// Options configures a Cache. The zero value reads PATH from the process
// environment and rescans on every miss.
type Options struct {
	SearchPathVar string                          // Variable holding the search path (default PATH)
	LookupEnv     func(key string) (string, bool) // Environment source (default os.LookupEnv)
	Policy        Policy                          // When to scan
	Logger        *logutil.ComponentLogger        // Debug side channel (default component "binpath")
}

// Cache maps program basenames to absolute paths. Entries are only ever added.
type Cache struct {
	searchPathVar string
	lookupEnv     func(string) (string, bool)
	policy        Policy
	log           *logutil.ComponentLogger

	mu        sync.RWMutex
	entries   map[string]string
	populated bool

	scans singleflight.Group

	statsMu sync.Mutex
	stats   Stats
}

// New creates an empty cache. Nothing is scanned until the first miss.
func New(opts Options) *Cache {
	c := &Cache{
		searchPathVar: opts.SearchPathVar,
		lookupEnv:     opts.LookupEnv,
		policy:        opts.Policy,
		log:           opts.Logger,
		entries:       make(map[string]string, 1024),
	}
	if c.searchPathVar == "" {
		c.searchPathVar = pathutil.SearchPathEnv
	}
	if c.lookupEnv == nil {
		c.lookupEnv = os.LookupEnv
	}
	if c.log == nil {
		c.log = logutil.NewLogger("binpath")
	}
	return c
}

// Find returns the absolute path recorded for name. On a miss the search path
// is scanned and the cache consulted again. The path is not re-validated, so
// it may be stale if the filesystem changed since it was recorded.
func (c *Cache) Find(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	if path, ok := c.lookup(name); ok {
		c.recordHit()
		recordLookup(resultHit)
		return path, true
	}

	c.recordMiss()
	c.populate()

	path, ok := c.lookup(name)
	if ok {
		recordLookup(resultScanned)
	} else {
		recordLookup(resultNotFound)
	}
	return path, ok
}

// Populate scans the search path unless the policy says it already has.
// Find calls it on every miss; callers that want a warm cache may call it up front.
func (c *Cache) Populate() {
	c.populate()
}

// Len returns the number of cached basenames.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries returns a snapshot of the cache sorted by name.
func (c *Cache) Entries() []Entry {
	c.mu.RLock()
	out := make([]Entry, 0, len(c.entries))
	for name, path := range c.entries {
		out = append(out, Entry{Name: name, Path: path})
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Policy returns the population policy of the cache.
func (c *Cache) Policy() Policy {
	return c.policy
}

// Stats returns hit, miss, and scan counts along with the current size.
func (c *Cache) Stats() Stats {
	c.statsMu.Lock()
	s := c.stats
	c.statsMu.Unlock()

	s.Entries = c.Len()
	return s
}

func (c *Cache) lookup(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	path, ok := c.entries[name]
	return path, ok
}

func (c *Cache) isPopulated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.populated
}

func (c *Cache) populate() {
	if c.policy == PolicyPopulateOnce && c.isPopulated() {
		return
	}

	value, ok := c.lookupEnv(c.searchPathVar)
	if !ok || value == "" {
		c.log.Debug("search path is empty", "var", c.searchPathVar)
		c.merge(nil)
		return
	}

	// Callers missing at the same time share one pass over the same search path.
	_, _, _ = c.scans.Do(value, func() (any, error) {
		if c.policy == PolicyPopulateOnce && c.isPopulated() {
			return nil, nil
		}

		log := c.log.WithOperation("scan")
		start := time.Now()
		dirs := pathutil.SplitSearchPath(value)
		found := scanDirs(dirs, log)
		added := c.merge(found)
		elapsed := time.Since(start)

		c.recordScan()
		recordScan(elapsed, added)
		log.Debug("search path scanned",
			"dirs", len(dirs),
			"found", len(found),
			"added", added,
			"duration", elapsed)
		return nil, nil
	})
}

// merge inserts entries whose basename is not yet cached and marks the cache
// populated. It returns the number of new basenames.
func (c *Cache) merge(found []Entry) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	added := 0
	for _, e := range found {
		if _, exists := c.entries[e.Name]; exists {
			continue
		}
		c.entries[e.Name] = e.Path
		added++
	}
	c.populated = true
	return added
}

func (c *Cache) recordHit() {
	c.statsMu.Lock()
	c.stats.Hits++
	c.statsMu.Unlock()
}

func (c *Cache) recordMiss() {
	c.statsMu.Lock()
	c.stats.Misses++
	c.statsMu.Unlock()
}

func (c *Cache) recordScan() {
	c.statsMu.Lock()
	c.stats.Scans++
	c.statsMu.Unlock()
}
