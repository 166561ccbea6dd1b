package dynjson

// MarshalJSON implements encoding/json.Marshaler, letting a Variant be
// embedded inside ordinary Go structs that are themselves marshalled with
// encoding/json. Output uses the OneLiner policy (compact, AsString floats).
func (v Variant) MarshalJSON() ([]byte, error) {
	return EmitBytes(v, OneLiner())
}

// UnmarshalJSON implements encoding/json.Unmarshaler, parsing data with this
// package's lenient engine and adopting the result in place.
func (v *Variant) UnmarshalJSON(data []byte) error {
	parsed, err := ParseBytes(data)
	if err != nil {
		return err
	}
	if v.n == nil {
		v.n = &node{}
	}
	*v.n = *parsed.n
	return nil
}
