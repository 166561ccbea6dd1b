package diag

// Kind classifies a Code by which of dynjson's three error surfaces raised
// it, mirroring the *ParseError/*FormatError/*ConversionError split the
// root package returns directly from ParseBytes, Emit, and the conversion
// helpers. A diag.Issue exists alongside those error types for the one
// boundary that needs to keep going after a failure instead of stopping at
// the first one: compat.Adapter, which collects every problem found while
// decoding a document (or a stream of them) rather than returning on the
// first bad byte.
type Kind uint8

const (
	// KindParse identifies issues raised while reading JSON text.
	KindParse Kind = iota

	// KindFormat identifies issues raised while emitting a Variant tree.
	KindFormat

	// KindConversion identifies issues raised while converting between a
	// Variant tree and Go values.
	KindConversion
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindFormat:
		return "format"
	case KindConversion:
		return "conversion"
	default:
		return "unknown"
	}
}
