package strcache

import "github.com/simon-lentz/dynjson/view"

// Local is an unsynchronized intern table, scoped to the single parse call
// that owns it. It has the same contract as Shared, minus locking.
type Local struct {
	maxLen    int
	byteTable map[string]string
	charTable map[string]string
}

// NewLocal creates a Local cache. Views longer than maxLen are never
// interned; maxLen <= 0 means no views are interned.
func NewLocal(maxLen int) *Local {
	if maxLen <= 0 {
		maxLen = -1
	}
	return &Local{
		maxLen:    maxLen,
		byteTable: make(map[string]string),
		charTable: make(map[string]string),
	}
}

// GetBytes returns the interned string for v, materialising and recording
// it on first observation.
func (c *Local) GetBytes(v view.ByteView) string {
	if v.Len() > c.maxLen {
		return v.String()
	}
	key := v.String()
	if s, ok := c.byteTable[key]; ok {
		return s
	}
	c.byteTable[key] = key
	return key
}

// TryGetBytes reads without interning on a miss.
func (c *Local) TryGetBytes(v view.ByteView) (string, bool) {
	if v.Len() > c.maxLen {
		return "", false
	}
	s, ok := c.byteTable[v.String()]
	return s, ok
}

// SetBytes records an explicit replacement string for v's content.
func (c *Local) SetBytes(v view.ByteView, s string) {
	if v.Len() > c.maxLen {
		return
	}
	c.byteTable[v.String()] = s
}

// GetChars is GetBytes for CharView content.
func (c *Local) GetChars(v view.CharView) string {
	if v.Len() > c.maxLen {
		return v.String()
	}
	key := v.String()
	if s, ok := c.charTable[key]; ok {
		return s
	}
	c.charTable[key] = key
	return key
}

// TryGetChars reads without interning on a miss.
func (c *Local) TryGetChars(v view.CharView) (string, bool) {
	if v.Len() > c.maxLen {
		return "", false
	}
	s, ok := c.charTable[v.String()]
	return s, ok
}

// SetChars records an explicit replacement string for v's content.
func (c *Local) SetChars(v view.CharView, s string) {
	if v.Len() > c.maxLen {
		return
	}
	c.charTable[v.String()] = s
}
