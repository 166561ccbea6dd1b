package location

// SourceID labels the origin of a JSON document for diagnostic purposes.
// It is an opaque identifier, not a filesystem path: dynjson never resolves
// or canonicalizes it, so two different strings are always distinct sources
// even if they happen to look alike.
//
// SourceID is comparable and safe for use as a map key.
type SourceID struct {
	label string
}

// NewSourceID creates a SourceID from a caller-supplied label such as
// "request-body" or "inline:test". An empty label is permitted; it
// stringifies as "<unknown>" and [SourceID.IsZero] reports true.
func NewSourceID(label string) SourceID {
	return SourceID{label: label}
}

// String returns the label, or "<unknown>" for the zero SourceID.
func (s SourceID) String() string {
	if s.label == "" {
		return "<unknown>"
	}
	return s.label
}

// IsZero reports whether s carries no label.
func (s SourceID) IsZero() bool {
	return s.label == ""
}
