package diag

// Code is a stable programmatic identifier for an Issue. Unlike the
// teacher's schema-validation registry — which enumerates dozens of
// codes across six categories (type collisions, import cycles, constraint
// failures, and so on) — dynjson has exactly one diagnostic-collecting
// boundary (compat.Adapter), so the registry here stays as small as that
// boundary's actual needs. New adapters should add codes here rather than
// constructing a Code from an arbitrary string, preserving the closed-set
// guarantee.
type Code struct {
	value string
	kind  Kind
}

// String returns the code's string representation, e.g. "E_ADAPTER_PARSE".
func (c Code) String() string {
	return c.value
}

// Kind returns the error surface this code belongs to.
func (c Code) Kind() Kind {
	return c.kind
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

func code(value string, kind Kind) Code {
	return Code{value: value, kind: kind}
}

// E_ADAPTER_PARSE indicates compat.Adapter failed to decode a JSON document
// (or found trailing content after one) via encoding/json.
var E_ADAPTER_PARSE = code("E_ADAPTER_PARSE", KindParse)
