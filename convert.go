package dynjson

import "log/slog"

// Primitive is the fixed set of Go types ToPrimitive can produce, matching
// spec.md §6.3's converter-plugin surface (every signed/unsigned integer
// width, both float widths, bool, and string; a rune is an int32).
type Primitive interface {
	~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// FromPrimitive constructs a Variant from any of the fixed primitive types,
// an Array, an Object, or another Variant. It is the converter-plugin
// entry point named in spec.md §6.3; its behavior is identical to
// NewVariant.
func FromPrimitive(x any) Variant {
	return NewVariant(x)
}

// ToPrimitive coerces v to T via the same coercion rules as the typed
// accessors (§4.1); it never fails for a supported T. Unsigned 64-bit
// values traffic through float64, exactly as spec.md §6.3 specifies.
func ToPrimitive[T Primitive](v Variant) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(v.AsBool()).(T), nil
	case int:
		return any(int(v.AsLong())).(T), nil
	case int8:
		return any(int8(v.AsLong())).(T), nil
	case int16:
		return any(int16(v.AsLong())).(T), nil
	case int32:
		return any(int32(v.AsLong())).(T), nil
	case int64:
		return any(v.AsLong()).(T), nil
	case uint:
		return any(uint(v.AsLong())).(T), nil
	case uint8:
		return any(uint8(v.AsLong())).(T), nil
	case uint16:
		return any(uint16(v.AsLong())).(T), nil
	case uint32:
		return any(uint32(v.AsLong())).(T), nil
	case uint64:
		return any(uint64(v.AsDouble())).(T), nil
	case float32:
		return any(float32(v.AsDouble())).(T), nil
	case float64:
		return any(v.AsDouble()).(T), nil
	case string:
		return any(v.AsString()).(T), nil
	}
	return zero, &ConversionError{Message: "unsupported primitive type in ToPrimitive"}
}

// ConversionContext is the explicit, re-entrant bookkeeping object an
// external marshaller threads through a recursive conversion: a depth
// counter guarding against cyclic structures, and a stack of active
// converters a nested conversion can consult. spec.md §4.6 describes this
// as task-local (AsyncLocal-style); Go has no equivalent ambient storage,
// so per spec.md §9's own fallback this package threads the context
// explicitly through conversion APIs instead of faking thread-local state.
type ConversionContext struct {
	maxDepth   int
	depth      int
	converters []any
	logger     *slog.Logger
}

// ConversionOption configures a ConversionContext under construction.
type ConversionOption func(*ConversionContext)

// WithConversionMaxDepth overrides the default conversion depth guard.
func WithConversionMaxDepth(n int) ConversionOption {
	return func(c *ConversionContext) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithConversionLogger attaches a nil-safe logger for diagnostic tracing.
func WithConversionLogger(logger *slog.Logger) ConversionOption {
	return func(c *ConversionContext) { c.logger = logger }
}

// NewConversionContext builds a ConversionContext with DefaultMaxDepth
// unless overridden.
func NewConversionContext(opts ...ConversionOption) *ConversionContext {
	c := &ConversionContext{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Acquire brackets the start of a (possibly nested) conversion call,
// incrementing the depth counter. It fails with a *ConversionError when the
// configured maximum depth would be exceeded — spec.md's "too deep —
// circular reference suspected".
func (c *ConversionContext) Acquire() error {
	c.depth++
	if c.depth > c.maxDepth {
		c.depth--
		return &ConversionError{Message: "too deep — circular reference suspected"}
	}
	return nil
}

// Release brackets the end of a conversion call, decrementing the depth
// counter back toward zero.
func (c *ConversionContext) Release() {
	if c.depth > 0 {
		c.depth--
	}
}

// Depth reports the current nesting depth.
func (c *ConversionContext) Depth() int {
	return c.depth
}

// PushConverter pushes c onto the active-converter stack before descending
// into a recursive conversion; the marshaller pops it with PopConverter
// once that descent returns.
func (cc *ConversionContext) PushConverter(c any) {
	cc.converters = append(cc.converters, c)
}

// PopConverter removes and returns the topmost active converter, if any.
func (cc *ConversionContext) PopConverter() (any, bool) {
	n := len(cc.converters)
	if n == 0 {
		return nil, false
	}
	c := cc.converters[n-1]
	cc.converters = cc.converters[:n-1]
	return c, true
}

// CurrentConverter returns the topmost active converter without popping it;
// a nested conversion reads this to find the converter it was started
// under.
func (cc *ConversionContext) CurrentConverter() (any, bool) {
	n := len(cc.converters)
	if n == 0 {
		return nil, false
	}
	return cc.converters[n-1], true
}
