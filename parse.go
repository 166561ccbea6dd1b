package dynjson

import (
	"github.com/simon-lentz/dynjson/internal/engine"
	"github.com/simon-lentz/dynjson/internal/strcache"
	"github.com/simon-lentz/dynjson/view"
)

// ParseOption configures a Parse call.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxDepth     int
	maxInternLen int
	logger       StructuredLogger
}

// StructuredLogger is the minimal logging surface a parser accepts; *slog.Logger
// satisfies it. WithLogger stores one in the parse configuration; the engine
// has no logging hook, so no parse call writes to it.
type StructuredLogger interface {
	Debug(msg string, args ...any)
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{maxDepth: DefaultMaxDepth, maxInternLen: 256}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithParseMaxDepth bounds parser recursion; exceeding it yields a *ParseError
// instead of a stack overflow.
func WithParseMaxDepth(n int) ParseOption {
	return func(c *parseConfig) { c.maxDepth = n }
}

// WithStringCache bounds how long a string may be before it is no longer a
// candidate for interning (see internal/strcache). A non-positive value
// disables interning entirely.
func WithStringCache(maxLen int) ParseOption {
	return func(c *parseConfig) { c.maxInternLen = maxLen }
}

// WithLogger stores l in the parse configuration. The parser does not log
// its leniency decisions, so l receives no calls.
func WithLogger(l StructuredLogger) ParseOption {
	return func(c *parseConfig) { c.logger = l }
}

// variantBuilder adapts Variant/Array/Object construction to
// engine.Builder[Variant], letting internal/engine stay ignorant of this
// package and avoiding an import cycle.
type variantBuilder struct{}

func (variantBuilder) Null() Variant                 { return NewNull() }
func (variantBuilder) Bool(b bool) Variant           { return NewBool(b) }
func (variantBuilder) Int(i int64) Variant           { return NewInt(i) }
func (variantBuilder) Float(f float64) Variant       { return NewDouble(f) }
func (variantBuilder) Str(s string) Variant          { return NewString(s) }
func (variantBuilder) NewArray() Variant             { return NewArrayVariant(NewArray()) }
func (variantBuilder) NewObject() Variant            { return NewObjectVariant(NewObject()) }
func (variantBuilder) ArrayAppend(arr, elem Variant) { arr.n.arr.Add(elem) }
func (variantBuilder) ObjectSet(obj Variant, key string, val Variant) {
	obj.n.obj.setVariant(key, val)
}

func toParseError(err error, cfg parseConfig) *ParseError {
	if err == nil {
		return nil
	}
	if ee, ok := err.(*engine.Error); ok {
		return newParseError(Position{Line: ee.Pos.Line, Column: ee.Pos.Column}, ee.Msg)
	}
	return newParseError(Position{}, err.Error())
}

// ParseBytes parses JSON text held as UTF-8 (or arbitrary 8-bit) bytes.
func ParseBytes(data []byte, opts ...ParseOption) (Variant, error) {
	cfg := newParseConfig(opts)
	cache := strcache.NewLocal(cfg.maxInternLen)
	o := engine.Options[byte, Variant]{
		MaxDepth: cfg.maxDepth,
		TryIntern: func(raw []byte) (string, bool) {
			return cache.TryGetBytes(view.NewByteView(raw))
		},
		Intern: func(raw []byte) string {
			return cache.GetBytes(view.NewByteView(raw))
		},
		SetIntern: func(raw []byte, s string) {
			cache.SetBytes(view.NewByteView(raw), s)
		},
	}
	v, err := engine.Parse[byte, Variant](data, variantBuilder{}, o)
	if err != nil {
		return Variant{}, toParseError(err, cfg)
	}
	return v, nil
}

// ParseString parses JSON text held as a Go string, without re-encoding it.
func ParseString(s string, opts ...ParseOption) (Variant, error) {
	return ParseBytes([]byte(s), opts...)
}

// ParseChars parses JSON text held as UTF-16 code units.
func ParseChars(units []uint16, opts ...ParseOption) (Variant, error) {
	cfg := newParseConfig(opts)
	cache := strcache.NewLocal(cfg.maxInternLen)
	o := engine.Options[uint16, Variant]{
		MaxDepth: cfg.maxDepth,
		TryIntern: func(raw []uint16) (string, bool) {
			return cache.TryGetChars(view.NewCharView(raw))
		},
		Intern: func(raw []uint16) string {
			return cache.GetChars(view.NewCharView(raw))
		},
		SetIntern: func(raw []uint16, s string) {
			cache.SetChars(view.NewCharView(raw), s)
		},
	}
	v, err := engine.Parse[uint16, Variant](units, variantBuilder{}, o)
	if err != nil {
		return Variant{}, toParseError(err, cfg)
	}
	return v, nil
}

// ParseUTF16 parses JSON text held as raw little-endian UTF-16 bytes
// (optionally BOM-prefixed), as produced by EmitUTF16Bytes.
func ParseUTF16(data []byte, opts ...ParseOption) (Variant, error) {
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		data = data[2:]
	}
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		units = append(units, uint16(data[i])|uint16(data[i+1])<<8)
	}
	return ParseChars(units, opts...)
}
