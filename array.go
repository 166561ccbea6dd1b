package dynjson

import "strconv"

// arrayBody is the shared, mutable container an Array handle references.
type arrayBody struct {
	elems []Variant
}

// arrayRef is the indirection an Array handle shares: it lets the handle
// observe lazy materialisation of the body even across copies taken before
// the first write (spec.md §3: "no body yet" vs "empty body").
type arrayRef struct {
	body *arrayBody
}

// Array is a value-typed handle over an ordered, index-addressable sequence
// of Variants. Copying an Array aliases the same underlying body; Duplicate
// is the only way to fork an independent copy.
type Array struct {
	ref *arrayRef
}

// NewArray creates an Array handle with a freshly materialised, empty body.
func NewArray() Array {
	return Array{ref: &arrayRef{body: &arrayBody{}}}
}

func (a Array) bodyOrNil() *arrayBody {
	if a.ref == nil {
		return nil
	}
	return a.ref.body
}

// ensureBody lazily materialises the body. A zero-value Array (no ref at
// all, e.g. from `var a Array`) has no shared identity to materialise into,
// so ensureBody returns nil and writes to it are silently discarded.
func (a Array) ensureBody() *arrayBody {
	if a.ref == nil {
		return nil
	}
	if a.ref.body == nil {
		a.ref.body = &arrayBody{}
	}
	return a.ref.body
}

// Count returns the number of elements.
func (a Array) Count() int {
	b := a.bodyOrNil()
	if b == nil {
		return 0
	}
	return len(b.elems)
}

// IsEmpty reports whether the array has zero elements.
func (a Array) IsEmpty() bool {
	return a.Count() == 0
}

// Add appends v, materialising the body if absent.
func (a Array) Add(v Variant) {
	b := a.ensureBody()
	if b == nil {
		return
	}
	b.elems = append(b.elems, v)
}

// Get reads without extending. Returns a Null Variant when i is out of
// range, without mutating the array.
func (a Array) Get(i int) Variant {
	b := a.bodyOrNil()
	if b == nil || i < 0 || i >= len(b.elems) {
		return NewNull()
	}
	return b.elems[i]
}

// Index reads with extension: positions up to and including i are padded
// with Null Variants if necessary, then the (now-existing) slot at i is
// returned. This is the deliberate, documented side effect spec.md
// requires of indexed access.
func (a Array) Index(i int) Variant {
	b := a.ensureBody()
	if b == nil || i < 0 {
		return NewNull()
	}
	for len(b.elems) <= i {
		b.elems = append(b.elems, NewNull())
	}
	return b.elems[i]
}

// Set writes at i with extension, as Index does. The slot is replaced
// outright (Array does not carry Object's slot-identity-preservation
// requirement).
func (a Array) Set(i int, v Variant) {
	b := a.ensureBody()
	if b == nil || i < 0 {
		return
	}
	for len(b.elems) <= i {
		b.elems = append(b.elems, NewNull())
	}
	b.elems[i] = v
}

// Resize truncates or pads the array with Null Variants to exactly n elements.
func (a Array) Resize(n int) {
	if n < 0 {
		n = 0
	}
	b := a.ensureBody()
	if b == nil {
		return
	}
	switch {
	case n < len(b.elems):
		b.elems = b.elems[:n]
	case n > len(b.elems):
		for len(b.elems) < n {
			b.elems = append(b.elems, NewNull())
		}
	}
}

// Clear truncates the shared body in place, observable to any other handle
// sharing it.
func (a Array) Clear() {
	b := a.bodyOrNil()
	if b == nil {
		return
	}
	b.elems = b.elems[:0]
}

// Insert inserts v at position i, shifting later elements right. Out-of-range
// i clamps to the nearest valid position (0 or Count()).
func (a Array) Insert(i int, v Variant) {
	b := a.ensureBody()
	if b == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(b.elems) {
		i = len(b.elems)
	}
	b.elems = append(b.elems, NewNull())
	copy(b.elems[i+1:], b.elems[i:])
	b.elems[i] = v
}

// RemoveAt removes and returns the element at i, or a Null Variant if i is
// out of range.
func (a Array) RemoveAt(i int) Variant {
	b := a.bodyOrNil()
	if b == nil || i < 0 || i >= len(b.elems) {
		return NewNull()
	}
	v := b.elems[i]
	b.elems = append(b.elems[:i], b.elems[i+1:]...)
	return v
}

// IndexOf returns the index of the first element Equals to v, or -1.
func (a Array) IndexOf(v Variant) int {
	b := a.bodyOrNil()
	if b == nil {
		return -1
	}
	for i, e := range b.elems {
		if e.Equals(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element Equals v.
func (a Array) Contains(v Variant) bool {
	return a.IndexOf(v) >= 0
}

// Remove removes the first element Equals to v, reporting whether one was found.
func (a Array) Remove(v Variant) bool {
	i := a.IndexOf(v)
	if i < 0 {
		return false
	}
	a.RemoveAt(i)
	return true
}

// ConvertToObject produces an Object whose keys are the stringified indices
// of this array, sharing (not duplicating) the element Variants.
func (a Array) ConvertToObject() Object {
	obj := NewObject()
	b := a.bodyOrNil()
	if b == nil {
		return obj
	}
	for i, e := range b.elems {
		obj.setVariant(strconv.Itoa(i), e)
	}
	return obj
}

// IsSimple reports whether every element is non-composite; the emitter uses
// this to decide whether a container can stay on one line under the Simple
// whitespace policy.
func (a Array) IsSimple() bool {
	b := a.bodyOrNil()
	if b == nil {
		return true
	}
	for _, e := range b.elems {
		if e.IsComposite() {
			return false
		}
	}
	return true
}

// Duplicate performs a deep clone: every element is itself Duplicated.
func (a Array) Duplicate() Array {
	out := NewArray()
	b := a.bodyOrNil()
	if b == nil {
		return out
	}
	ob := out.ensureBody()
	ob.elems = make([]Variant, len(b.elems))
	for i, e := range b.elems {
		ob.elems[i] = e.Duplicate()
	}
	return out
}

// Equals reports whether a and other reference the same body.
func (a Array) Equals(other Array) bool {
	return a.ref == other.ref
}

// Equivalent reports whether a and other are element-wise structurally
// equal, recursing through nested Variants bounded by maxDepth. Exceeding
// maxDepth yields a *FormatError.
func (a Array) Equivalent(other Array, maxDepth int) (bool, error) {
	return a.equivalentDepth(other, maxDepth, 0)
}

func (a Array) equivalentDepth(other Array, maxDepth, depth int) (bool, error) {
	if depth > maxDepth {
		return false, &FormatError{Message: "max depth exceeded while comparing arrays"}
	}
	ab, bb := a.bodyOrNil(), other.bodyOrNil()
	aLen, bLen := 0, 0
	if ab != nil {
		aLen = len(ab.elems)
	}
	if bb != nil {
		bLen = len(bb.elems)
	}
	if aLen != bLen {
		return false, nil
	}
	for i := 0; i < aLen; i++ {
		ok, err := ab.elems[i].equivalentDepth(bb.elems[i], maxDepth, depth+1)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
