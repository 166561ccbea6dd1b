// Package dynjson provides a dynamic, mutable JSON value tree along with a
// lenient dual-alphabet parser, a policy-driven emitter, and a schema-less
// conversion layer for translating between the tree and user-defined types.
//
// # Architecture
//
//	Foundation tier (no internal dependencies):
//	  - view: immutable (buffer, offset, length) windows over UTF-16 code
//	    units (CharView) or UTF-8 bytes (ByteView)
//	  - internal/literal: the well-known token literals, pre-encoded in
//	    both alphabets
//	  - internal/strcache: shared and local string-interning caches
//
//	Core tier (this package):
//	  - Kind, Variant, Array, Object: the value tree and its coercion rules
//	  - FormatPolicy, Emit/EmitBytes/EmitUTF16: the policy-driven emitter
//	  - ConversionContext, FromPrimitive/ToPrimitive: the converter-plugin
//	    surface an external, reflection-driven marshaller builds on
//
//	Parser tier:
//	  - internal/engine: the generic lenient-parser state machine,
//	    instantiated over byte and uint16 code units
//	  - ParseBytes/ParseString/ParseChars/ParseUTF16: public entry points
//
//	Adapter tier:
//	  - compat: encoding/json + tidwall/jsonc ingestion for callers who
//	    want strict-JSON-compatible semantics instead of the lenient engine
//
// # Entry points
//
// Parsing:
//
//	v, err := dynjson.ParseString(`{a: 1, b: [1, 2,]}`)
//	if err != nil {
//	    // *dynjson.ParseError
//	}
//
// Emitting:
//
//	out, err := dynjson.Emit(v, dynjson.Pretty())
//	if err != nil {
//	    // *dynjson.FormatError
//	}
//
// Building a tree directly:
//
//	v := dynjson.NewNull()
//	v.Add(1)
//	v.Add("x")
//	v.SetField("k", true) // {"0": 1, "1": "x", "k": true}
package dynjson
