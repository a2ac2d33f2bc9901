package service

import (
	"sync"

	"github.com/ludo-technologies/qmllink/domain"
)

// FunctionCacheImpl implements domain.FunctionCache: a session-owned map of
// absolute script path to parsed function records. Invalidation is pushed
// by an external watcher; concurrent repopulation of the same key is
// last-write-wins, which is safe because entries are pure functions of file
// content.
type FunctionCacheImpl struct {
	mu      sync.RWMutex
	entries map[string][]domain.FunctionInfo
}

// NewFunctionCache creates an empty function cache
func NewFunctionCache() *FunctionCacheImpl {
	return &FunctionCacheImpl{
		entries: make(map[string][]domain.FunctionInfo),
	}
}

// Get returns the cached records for path, if present
func (c *FunctionCacheImpl) Get(path string) ([]domain.FunctionInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	functions, ok := c.entries[path]
	return functions, ok
}

// Put stores the records for path, replacing any existing entry
func (c *FunctionCacheImpl) Put(path string, functions []domain.FunctionInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = functions
}

// Invalidate drops the entry for path
func (c *FunctionCacheImpl) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// InvalidateAll drops every entry
func (c *FunctionCacheImpl) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]domain.FunctionInfo)
}

// Len returns the number of cached entries
func (c *FunctionCacheImpl) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
