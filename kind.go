package dynjson

// Kind identifies which of the seven JSON-shaped variants a Variant currently holds.
type Kind int8

// The seven kinds a Variant may hold. Exactly one is active at a time.
const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
	numKinds
)

var kindStrings = [numKinds]string{
	"null",
	"boolean",
	"integer",
	"float",
	"string",
	"array",
	"object",
}

// String returns the lower-case name of the kind, or "<unknown>" if out of range.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}
