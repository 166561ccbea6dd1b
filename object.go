package dynjson

import "strconv"

type objEntry struct {
	key string
	v   Variant
}

// objectBody is the shared, mutable container an Object handle references.
type objectBody struct {
	entries []objEntry
	index   map[string]int
}

// objectRef gives Object the same lazy-materialisation behaviour as Array:
// copies taken before the first write still observe it.
type objectRef struct {
	body *objectBody
}

// Object is a value-typed handle over an insertion-ordered string-keyed
// collection of Variants. Copying an Object aliases the same body.
type Object struct {
	ref *objectRef
}

// NewObject creates an Object handle with a freshly materialised, empty body.
func NewObject() Object {
	return Object{ref: &objectRef{body: &objectBody{index: make(map[string]int)}}}
}

func (o Object) bodyOrNil() *objectBody {
	if o.ref == nil {
		return nil
	}
	return o.ref.body
}

func (o Object) ensureBody() *objectBody {
	if o.ref == nil {
		return nil
	}
	if o.ref.body == nil {
		o.ref.body = &objectBody{index: make(map[string]int)}
	}
	return o.ref.body
}

// Count returns the number of entries.
func (o Object) Count() int {
	b := o.bodyOrNil()
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// IsEmpty reports whether the object has zero entries.
func (o Object) IsEmpty() bool {
	return o.Count() == 0
}

// ContainsKey reports whether key is present.
func (o Object) ContainsKey(key string) bool {
	b := o.bodyOrNil()
	if b == nil {
		return false
	}
	_, ok := b.index[key]
	return ok
}

// Keys returns the entry keys in insertion order.
func (o Object) Keys() []string {
	b := o.bodyOrNil()
	if b == nil {
		return nil
	}
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.key
	}
	return out
}

// Values returns the entry values in insertion order.
func (o Object) Values() []Variant {
	b := o.bodyOrNil()
	if b == nil {
		return nil
	}
	out := make([]Variant, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.v
	}
	return out
}

// Get reads without inserting. Returns a Null Variant when key is absent.
func (o Object) Get(key string) Variant {
	v, ok := o.TryGet(key)
	if !ok {
		return NewNull()
	}
	return v
}

// TryGet reads without inserting, reporting whether key was present.
func (o Object) TryGet(key string) (Variant, bool) {
	b := o.bodyOrNil()
	if b == nil {
		return Variant{}, false
	}
	i, ok := b.index[key]
	if !ok {
		return Variant{}, false
	}
	return b.entries[i].v, true
}

// Index reads with auto-vivification: a missing key is inserted holding a
// fresh Null Variant, whose reference is then returned.
func (o Object) Index(key string) Variant {
	b := o.ensureBody()
	if b == nil {
		return NewNull()
	}
	if i, ok := b.index[key]; ok {
		return b.entries[i].v
	}
	nv := NewNull()
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, objEntry{key: key, v: nv})
	return nv
}

// Set inserts or replaces key. When key already exists, the existing slot
// Variant is mutated in place (its reference remains valid across the
// update); only a brand-new key allocates a new slot Variant.
func (o Object) Set(key string, v any) {
	o.setVariant(key, NewVariant(v))
}

// setVariant is Set's internal form, used where the value is already a
// Variant (e.g. Array.ConvertToObject sharing elements rather than
// re-wrapping them).
func (o Object) setVariant(key string, v Variant) {
	b := o.ensureBody()
	if b == nil {
		return
	}
	if i, ok := b.index[key]; ok {
		b.entries[i].v.Assign(v)
		return
	}
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, objEntry{key: key, v: v})
}

// Add inserts key, failing (returning false, no mutation) if it already exists.
func (o Object) Add(key string, v any) bool {
	b := o.ensureBody()
	if b == nil {
		return false
	}
	if _, ok := b.index[key]; ok {
		return false
	}
	b.index[key] = len(b.entries)
	b.entries = append(b.entries, objEntry{key: key, v: NewVariant(v)})
	return true
}

// Remove deletes key, reporting whether it was present.
func (o Object) Remove(key string) bool {
	b := o.bodyOrNil()
	if b == nil {
		return false
	}
	i, ok := b.index[key]
	if !ok {
		return false
	}
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	delete(b.index, key)
	for j := i; j < len(b.entries); j++ {
		b.index[b.entries[j].key] = j
	}
	return true
}

// Clear removes every entry from the shared body in place.
func (o Object) Clear() {
	b := o.bodyOrNil()
	if b == nil {
		return
	}
	b.entries = b.entries[:0]
	for k := range b.index {
		delete(b.index, k)
	}
}

// TryConvertToArray succeeds iff every key parses as a non-negative integer;
// the resulting Array holds each value at its parsed index (any gaps filled
// with Null; later entries overwrite earlier ones at the same index).
func (o Object) TryConvertToArray() (Array, bool) {
	b := o.bodyOrNil()
	if b == nil {
		return NewArray(), true
	}
	max := -1
	idxs := make([]int, len(b.entries))
	for i, e := range b.entries {
		n, err := strconv.Atoi(e.key)
		if err != nil || n < 0 {
			return Array{}, false
		}
		idxs[i] = n
		if n > max {
			max = n
		}
	}
	out := NewArray()
	out.Resize(max + 1)
	for i, e := range b.entries {
		out.Set(idxs[i], e.v)
	}
	return out, true
}

// IsSimple reports whether the object is empty, or has exactly one entry
// whose value is non-composite.
func (o Object) IsSimple() bool {
	b := o.bodyOrNil()
	if b == nil {
		return true
	}
	switch len(b.entries) {
	case 0:
		return true
	case 1:
		return !b.entries[0].v.IsComposite()
	default:
		return false
	}
}

// Duplicate performs a deep clone: every value is itself Duplicated.
func (o Object) Duplicate() Object {
	out := NewObject()
	b := o.bodyOrNil()
	if b == nil {
		return out
	}
	ob := out.ensureBody()
	ob.entries = make([]objEntry, len(b.entries))
	for i, e := range b.entries {
		ob.entries[i] = objEntry{key: e.key, v: e.v.Duplicate()}
		ob.index[e.key] = i
	}
	return out
}

// Equals reports whether o and other reference the same body.
func (o Object) Equals(other Object) bool {
	return o.ref == other.ref
}

// Equivalent reports whether o and other hold the same keys with
// structurally equal values (independent of insertion order), recursing
// bounded by maxDepth. Exceeding maxDepth yields a *FormatError.
func (o Object) Equivalent(other Object, maxDepth int) (bool, error) {
	return o.equivalentDepth(other, maxDepth, 0)
}

func (o Object) equivalentDepth(other Object, maxDepth, depth int) (bool, error) {
	if depth > maxDepth {
		return false, &FormatError{Message: "max depth exceeded while comparing objects"}
	}
	ob, bb := o.bodyOrNil(), other.bodyOrNil()
	aLen, bLen := 0, 0
	if ob != nil {
		aLen = len(ob.entries)
	}
	if bb != nil {
		bLen = len(bb.entries)
	}
	if aLen != bLen {
		return false, nil
	}
	if ob == nil {
		return true, nil
	}
	for _, e := range ob.entries {
		ov, ok := other.TryGet(e.key)
		if !ok {
			return false, nil
		}
		eq, err := e.v.equivalentDepth(ov, maxDepth, depth+1)
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}
