// Package strcache provides string-interning caches keyed by view content,
// in a shared (mutex-guarded) and a local (unsynchronized, single-parse-
// scoped) flavour, each holding independent tables for ByteView and
// CharView keys. Grounded on the teacher's immutable/map.go handle-and-
// escape-hatch-copy idiom, generalized here from a read-only wrapper to a
// write-once intern table.
//
// Go strings are immutable and converting a []byte/[]uint16 view to a
// string always copies out of the source buffer — there is no zero-copy,
// span-keyed hash map in the standard toolchain. The spec's "shrink" mode
// (copy the matched content out before interning, to let the source buffer
// be released) is therefore the Go port's only mode: every materialised
// string here is already independent of the view's backing buffer. The
// cache's value is canonical sharing of one string object per distinct
// observed content, not avoiding the per-call materialisation allocation.
package strcache

import (
	"sync"

	"github.com/simon-lentz/dynjson/view"
)

// Shared is a mutex-guarded intern table, safe for concurrent use by
// multiple parses. ByteView and CharView content are interned into
// independent tables.
type Shared struct {
	mu        sync.RWMutex
	maxLen    int
	byteTable map[string]string
	charTable map[string]string
}

// NewShared creates a Shared cache. Views longer than maxLen are never
// interned; maxLen <= 0 means no views are interned.
func NewShared(maxLen int) *Shared {
	if maxLen <= 0 {
		maxLen = -1
	}
	return &Shared{
		maxLen:    maxLen,
		byteTable: make(map[string]string),
		charTable: make(map[string]string),
	}
}

// GetBytes returns the interned string for v, materialising and recording
// it on first observation.
func (c *Shared) GetBytes(v view.ByteView) string {
	if v.Len() > c.maxLen {
		return v.String()
	}
	key := v.String()
	c.mu.RLock()
	if s, ok := c.byteTable[key]; ok {
		c.mu.RUnlock()
		return s
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.byteTable[key]; ok {
		return s
	}
	c.byteTable[key] = key
	return key
}

// TryGetBytes reads without interning on a miss.
func (c *Shared) TryGetBytes(v view.ByteView) (string, bool) {
	if v.Len() > c.maxLen {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byteTable[v.String()]
	return s, ok
}

// SetBytes records an explicit replacement string for v's content.
func (c *Shared) SetBytes(v view.ByteView, s string) {
	if v.Len() > c.maxLen {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byteTable[v.String()] = s
}

// GetChars is GetBytes for CharView content.
func (c *Shared) GetChars(v view.CharView) string {
	if v.Len() > c.maxLen {
		return v.String()
	}
	key := v.String()
	c.mu.RLock()
	if s, ok := c.charTable[key]; ok {
		c.mu.RUnlock()
		return s
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.charTable[key]; ok {
		return s
	}
	c.charTable[key] = key
	return key
}

// TryGetChars reads without interning on a miss.
func (c *Shared) TryGetChars(v view.CharView) (string, bool) {
	if v.Len() > c.maxLen {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.charTable[v.String()]
	return s, ok
}

// SetChars records an explicit replacement string for v's content.
func (c *Shared) SetChars(v view.CharView, s string) {
	if v.Len() > c.maxLen {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.charTable[v.String()] = s
}
