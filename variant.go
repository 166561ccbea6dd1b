package dynjson

import (
	"math"
	"strconv"
	"strings"
)

// node is the storage a Variant points to. Exactly one payload field is
// meaningful at a time, selected by kind; the rest are left at their zero
// value. Variant's reference semantics come entirely from sharing *node.
type node struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  Array
	obj  Object
}

// Variant is a mutable, reference-typed JSON-shaped value: exactly one of
// Null, Boolean, Integer, Float, String, Array, or Object at any time.
// Copying a Variant aliases the same node — both copies observe the same
// mutations. Duplicate is the only deep-clone escape hatch.
type Variant struct {
	n *node
}

// NewNull returns a fresh Variant holding Null.
func NewNull() Variant {
	return Variant{n: &node{kind: KindNull}}
}

// NewBool returns a fresh Variant holding a Boolean.
func NewBool(b bool) Variant {
	return Variant{n: &node{kind: KindBoolean, b: b}}
}

// NewInt returns a fresh Variant holding an Integer.
func NewInt(i int64) Variant {
	return Variant{n: &node{kind: KindInteger, i: i}}
}

// NewDouble returns a fresh Variant holding a Float.
func NewDouble(f float64) Variant {
	return Variant{n: &node{kind: KindFloat, f: f}}
}

// NewString returns a fresh Variant holding a String.
func NewString(s string) Variant {
	return Variant{n: &node{kind: KindString, s: s}}
}

// NewArrayVariant returns a fresh Variant wrapping the given Array handle
// (sharing its body, not copying it).
func NewArrayVariant(a Array) Variant {
	return Variant{n: &node{kind: KindArray, arr: a}}
}

// NewObjectVariant returns a fresh Variant wrapping the given Object handle
// (sharing its body, not copying it).
func NewObjectVariant(o Object) Variant {
	return Variant{n: &node{kind: KindObject, obj: o}}
}

// NewVariant constructs a Variant from any supported Go value: nil, a bool,
// any integer or float type, a string, an Array, an Object, or another
// Variant (shallow-copied). Unsupported types yield Null — construction
// never fails.
func NewVariant(x any) Variant {
	switch t := x.(type) {
	case nil:
		return NewNull()
	case Variant:
		return t.shallowCopy()
	case bool:
		return NewBool(t)
	case int:
		return NewInt(int64(t))
	case int8:
		return NewInt(int64(t))
	case int16:
		return NewInt(int64(t))
	case int32:
		return NewInt(int64(t))
	case int64:
		return NewInt(t)
	case uint:
		return NewInt(int64(t))
	case uint8:
		return NewInt(int64(t))
	case uint16:
		return NewInt(int64(t))
	case uint32:
		return NewInt(int64(t))
	case uint64:
		return NewInt(int64(t))
	case float32:
		return NewDouble(float64(t))
	case float64:
		return NewDouble(t)
	case string:
		return NewString(t)
	case Array:
		return NewArrayVariant(t)
	case Object:
		return NewObjectVariant(t)
	default:
		return NewNull()
	}
}

// shallowCopy returns a new Variant node with identical payload fields.
// For composite kinds this aliases the same Array/Object body (a "shallow"
// copy); for scalar kinds it simply copies the value.
func (v Variant) shallowCopy() Variant {
	cp := *v.n
	return Variant{n: &cp}
}

// Kind reports which of the seven kinds v currently holds.
func (v Variant) Kind() Kind {
	if v.n == nil {
		return KindNull
	}
	return v.n.kind
}

func (v Variant) IsNull() bool      { return v.Kind() == KindNull }
func (v Variant) IsBoolean() bool   { return v.Kind() == KindBoolean }
func (v Variant) IsInteger() bool   { return v.Kind() == KindInteger }
func (v Variant) IsFloat() bool     { return v.Kind() == KindFloat }
func (v Variant) IsString() bool    { return v.Kind() == KindString }
func (v Variant) IsArray() bool     { return v.Kind() == KindArray }
func (v Variant) IsObject() bool    { return v.Kind() == KindObject }
func (v Variant) IsNumber() bool    { return v.Kind() == KindInteger || v.Kind() == KindFloat }
func (v Variant) IsComposite() bool { return v.Kind() == KindArray || v.Kind() == KindObject }

// IsEmpty reports whether v is Null, a false Boolean, a zero-valued number,
// an empty string, or a zero-length container.
func (v Variant) IsEmpty() bool {
	switch v.Kind() {
	case KindNull:
		return true
	case KindBoolean:
		return !v.n.b
	case KindInteger:
		return v.n.i == 0
	case KindFloat:
		return v.n.f == 0
	case KindString:
		return v.n.s == ""
	case KindArray:
		return v.n.arr.IsEmpty()
	case KindObject:
		return v.n.obj.IsEmpty()
	}
	return true
}

// AsBool coerces v to a bool per the kind-to-Boolean column of the
// coercion table. Never fails.
func (v Variant) AsBool() bool {
	switch v.Kind() {
	case KindNull:
		return false
	case KindBoolean:
		return v.n.b
	case KindInteger:
		return v.n.i != 0
	case KindFloat:
		return v.n.f != 0
	case KindString:
		s := strings.TrimSpace(v.n.s)
		if strings.EqualFold(s, "true") {
			return true
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n != 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f != 0
		}
		return false
	case KindArray:
		return v.n.arr.Count() != 0
	case KindObject:
		return v.n.obj.Count() != 0
	}
	return false
}

// AsLong coerces v to an int64. Never fails.
func (v Variant) AsLong() int64 {
	switch v.Kind() {
	case KindNull:
		return 0
	case KindBoolean:
		if v.n.b {
			return 1
		}
		return 0
	case KindInteger:
		return v.n.i
	case KindFloat:
		return int64(v.n.f)
	case KindString:
		s := strings.TrimSpace(v.n.s)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		return 0
	case KindArray:
		return int64(v.n.arr.Count())
	case KindObject:
		return int64(v.n.obj.Count())
	}
	return 0
}

// AsInt coerces v to an int32, truncating AsLong's result.
func (v Variant) AsInt() int32 {
	return int32(v.AsLong())
}

// AsDouble coerces v to a float64. Never fails.
func (v Variant) AsDouble() float64 {
	switch v.Kind() {
	case KindNull:
		return 0
	case KindBoolean:
		if v.n.b {
			return 1
		}
		return 0
	case KindInteger:
		return float64(v.n.i)
	case KindFloat:
		return v.n.f
	case KindString:
		s := strings.TrimSpace(v.n.s)
		switch {
		case strings.EqualFold(s, "NaN"):
			return math.NaN()
		case strings.EqualFold(s, "Infinity"), strings.EqualFold(s, "+Infinity"):
			return math.Inf(1)
		case strings.EqualFold(s, "-Infinity"):
			return math.Inf(-1)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return 0
	case KindArray:
		return float64(v.n.arr.Count())
	case KindObject:
		return float64(v.n.obj.Count())
	}
	return 0
}

// AsString coerces v to a string. Never fails.
func (v Variant) AsString() string {
	switch v.Kind() {
	case KindNull:
		return ""
	case KindBoolean:
		if v.n.b {
			return "true"
		}
		return "false"
	case KindInteger:
		return strconv.FormatInt(v.n.i, 10)
	case KindFloat:
		return formatFloatDefault(v.n.f)
	case KindString:
		return v.n.s
	case KindArray:
		return summarizeArray(v.n.arr)
	case KindObject:
		return summarizeObject(v.n.obj)
	}
	return ""
}

func formatFloatDefault(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func summarizeArray(a Array) string {
	var sb strings.Builder
	sb.WriteByte('[')
	n := a.Count()
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.Get(i).AsString())
	}
	sb.WriteByte(']')
	return sb.String()
}

func summarizeObject(o Object) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(o.Get(k).AsString())
	}
	sb.WriteByte('}')
	return sb.String()
}

// AsArray coerces v to an Array. When v already holds an Array, the very
// same handle (sharing its body) is returned; otherwise a fresh, detached
// Array is constructed per the coercion table and never retained in v.
func (v Variant) AsArray() Array {
	switch v.Kind() {
	case KindArray:
		return v.n.arr
	case KindNull:
		return NewArray()
	case KindObject:
		if a, ok := v.n.obj.TryConvertToArray(); ok {
			return a
		}
		return NewArray()
	default:
		a := NewArray()
		a.Add(v.shallowCopy())
		return a
	}
}

// AsObject coerces v to an Object. When v already holds an Object, the very
// same handle is returned; otherwise a fresh, detached Object is
// constructed per the coercion table and never retained in v.
func (v Variant) AsObject() Object {
	switch v.Kind() {
	case KindObject:
		return v.n.obj
	case KindNull:
		return NewObject()
	case KindArray:
		return v.n.arr.ConvertToObject()
	default:
		o := NewObject()
		o.Set("value", v.shallowCopy())
		return o
	}
}

// Assign replaces v's content in place from x, preserving v's node identity
// so that any other Variant referencing the same node observes the change.
func (v Variant) Assign(x any) {
	nv := NewVariant(x)
	*v.n = *nv.n
}

// coerceToArray converts a non-composite v to an Array kind in place,
// carrying forward any existing non-Null scalar as the sole element.
func (v Variant) coerceToArray() {
	if v.Kind() == KindArray {
		return
	}
	arr := NewArray()
	if !v.IsNull() {
		arr.Add(v.shallowCopy())
	}
	*v.n = node{kind: KindArray, arr: arr}
}

// coerceToObject converts a non-composite v to an Object kind in place,
// carrying forward any existing non-Null scalar under the key "value".
func (v Variant) coerceToObject() {
	if v.Kind() == KindObject {
		return
	}
	obj := NewObject()
	if !v.IsNull() {
		obj.setVariant("value", v.shallowCopy())
	}
	*v.n = node{kind: KindObject, obj: obj}
}

// coerceArrayToObject reinterprets an Array-kind v as an Object in place,
// keyed by stringified index (Array.ConvertToObject).
func (v Variant) coerceArrayToObject() {
	obj := v.n.arr.ConvertToObject()
	*v.n = node{kind: KindObject, obj: obj}
}

// Add appends x to v, auto-coercing v to an Array first if it is not
// already composite (spec.md's container-style auto-coercion).
func (v Variant) Add(x any) {
	if !v.IsComposite() {
		v.coerceToArray()
	}
	if v.Kind() != KindArray {
		// v was already an Object; Add has no Object-shaped meaning, so it
		// is a documented no-op rather than a silent key fabrication.
		return
	}
	v.n.arr.Add(NewVariant(x))
}

// Index performs extending indexed access: on an Array, pads with Null up
// to i; on an Object, stringifies i as a key; on a scalar, coerces to Array
// first. The returned Variant shares identity with the stored slot.
func (v Variant) Index(i int) Variant {
	switch v.Kind() {
	case KindArray:
		return v.n.arr.Index(i)
	case KindObject:
		return v.n.obj.Index(strconv.Itoa(i))
	default:
		v.coerceToArray()
		return v.n.arr.Index(i)
	}
}

// Get performs non-extending indexed access, returning a Null Variant
// (without mutating v) when nothing is present at i.
func (v Variant) Get(i int) Variant {
	switch v.Kind() {
	case KindArray:
		return v.n.arr.Get(i)
	case KindObject:
		return v.n.obj.Get(strconv.Itoa(i))
	default:
		return NewNull()
	}
}

// SetIndex is the indexed-write counterpart of Index: it extends as needed
// and assigns x into the (possibly newly created) slot.
func (v Variant) SetIndex(i int, x any) {
	v.Index(i).Assign(x)
}

// Field performs extending string-key access: on an Object, inserts key if
// absent; on an Array, parses key as a non-negative integer index if
// possible, otherwise coerces the Array to an Object (keyed by stringified
// index) before inserting key; on a scalar, coerces to Object first.
func (v Variant) Field(key string) Variant {
	switch v.Kind() {
	case KindObject:
		return v.n.obj.Index(key)
	case KindArray:
		if idx, ok := parseNonNegInt(key); ok {
			return v.n.arr.Index(idx)
		}
		v.coerceArrayToObject()
		return v.n.obj.Index(key)
	default:
		v.coerceToObject()
		return v.n.obj.Index(key)
	}
}

// GetField performs non-extending string-key access, returning a Null
// Variant without mutating v when nothing is present at key.
func (v Variant) GetField(key string) Variant {
	switch v.Kind() {
	case KindObject:
		return v.n.obj.Get(key)
	case KindArray:
		if idx, ok := parseNonNegInt(key); ok {
			return v.n.arr.Get(idx)
		}
		return NewNull()
	default:
		return NewNull()
	}
}

// SetField is the string-keyed-write counterpart of Field.
func (v Variant) SetField(key string, x any) {
	v.Field(key).Assign(x)
}

func parseNonNegInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Pick walks a dot-separated path of trimmed segments, following Object by
// key and Array by integer-valued key, without mutating the tree. It
// returns a Null Variant at the first unresolvable step.
func (v Variant) Pick(path string) Variant {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		seg = strings.TrimSpace(seg)
		switch cur.Kind() {
		case KindObject:
			nv, ok := cur.n.obj.TryGet(seg)
			if !ok {
				return NewNull()
			}
			cur = nv
		case KindArray:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= cur.n.arr.Count() {
				return NewNull()
			}
			cur = cur.n.arr.Get(idx)
		default:
			return NewNull()
		}
	}
	return cur
}

// Duplicate performs a deep clone of v: scalars are copied by value,
// Array/Object payloads are recursively cloned into independent bodies.
func (v Variant) Duplicate() Variant {
	switch v.Kind() {
	case KindArray:
		return NewArrayVariant(v.n.arr.Duplicate())
	case KindObject:
		return NewObjectVariant(v.n.obj.Duplicate())
	default:
		return v.shallowCopy()
	}
}

// Equals reports whether v and other hold the same kind and, for scalars,
// equal payloads. For Array/Object it reports true only when the two
// handles reference the same body (identity, not structural equality).
func (v Variant) Equals(other Variant) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBoolean:
		return v.n.b == other.n.b
	case KindInteger:
		return v.n.i == other.n.i
	case KindFloat:
		return v.n.f == other.n.f
	case KindString:
		return v.n.s == other.n.s
	case KindArray:
		return v.n.arr.Equals(other.n.arr)
	case KindObject:
		return v.n.obj.Equals(other.n.obj)
	}
	return false
}

// Equivalent reports whether v and other are structurally equal — same
// shape and same values throughout — bounded by maxDepth. Exceeding
// maxDepth yields a *FormatError rather than a silent false.
func (v Variant) Equivalent(other Variant, maxDepth int) (bool, error) {
	return v.equivalentDepth(other, maxDepth, 0)
}

func (v Variant) equivalentDepth(other Variant, maxDepth, depth int) (bool, error) {
	if depth > maxDepth {
		return false, &FormatError{Message: "max depth exceeded while comparing variants"}
	}
	if v.Kind() != other.Kind() {
		return false, nil
	}
	switch v.Kind() {
	case KindArray:
		return v.n.arr.equivalentDepth(other.n.arr, maxDepth, depth)
	case KindObject:
		return v.n.obj.equivalentDepth(other.n.obj, maxDepth, depth)
	default:
		return v.Equals(other), nil
	}
}
