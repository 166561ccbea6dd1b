package dynjson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// emitter walks a Variant tree, accumulating UTF-8 text under a FormatPolicy.
// Grounded on the teacher's Write*/Marshal* pairing in adapter/json/write.go,
// though the tree-walk and escaping themselves are new: the teacher
// delegates emission to encoding/json, which has no whitespace/float policy
// knobs to reuse.
type emitter struct {
	sb     strings.Builder
	policy FormatPolicy
}

// Emit renders v as a JSON text under policy, returning a string.
func Emit(v Variant, policy FormatPolicy) (string, error) {
	e := &emitter{policy: policy}
	if err := e.write(v, 0); err != nil {
		return "", err
	}
	return e.sb.String(), nil
}

// EmitBytes is Emit, returning UTF-8 bytes.
func EmitBytes(v Variant, policy FormatPolicy) ([]byte, error) {
	s, err := Emit(v, policy)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// EmitUTF16 is Emit, returning UTF-16 code units.
func EmitUTF16(v Variant, policy FormatPolicy) ([]uint16, error) {
	s, err := Emit(v, policy)
	if err != nil {
		return nil, err
	}
	return utf16.Encode([]rune(s)), nil
}

// EmitUTF16Bytes is EmitUTF16, encoded as a little-endian byte stream with a
// leading BOM via golang.org/x/text/encoding/unicode, for callers handing
// the result to a UTF-16-native consumer.
func EmitUTF16Bytes(v Variant, policy FormatPolicy) ([]byte, error) {
	s, err := Emit(v, policy)
	if err != nil {
		return nil, err
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	out, _, err := transform.String(enc.NewEncoder(), s)
	if err != nil {
		return nil, &FormatError{Message: "utf16 encoding failed", Cause: err}
	}
	return []byte(out), nil
}

func (e *emitter) write(v Variant, depth int) error {
	switch v.Kind() {
	case KindNull:
		e.sb.WriteString("null")
		return nil
	case KindBoolean:
		if v.n.b {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}
		return nil
	case KindInteger:
		e.sb.WriteString(strconv.FormatInt(v.n.i, 10))
		return nil
	case KindFloat:
		return e.writeFloat(v.n.f)
	case KindString:
		e.writeEscapedString(v.n.s)
		return nil
	case KindArray:
		if depth > e.policy.maxDepth {
			return &FormatError{Message: "max depth exceeded while emitting array"}
		}
		return e.writeArray(v.n.arr, depth)
	case KindObject:
		if depth > e.policy.maxDepth {
			return &FormatError{Message: "max depth exceeded while emitting object"}
		}
		return e.writeObject(v.n.obj, depth)
	}
	return nil
}

func (e *emitter) writeFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		lit := formatFloatDefault(f)
		switch e.policy.specialFloat {
		case AsString:
			e.writeEscapedString(lit)
		case AsJsLiteral:
			e.sb.WriteString(lit)
		case Throw:
			return &FormatError{Message: "non-finite float " + lit + " encountered under the Throw special-float policy"}
		}
		return nil
	}
	e.sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func (e *emitter) inlineArray(n int, a Array) bool {
	switch e.policy.whitespace {
	case Never:
		return true
	case ExceptEmpty:
		return n == 0
	case Simple:
		return n == 0 || a.IsSimple()
	default: // Every
		return false
	}
}

func (e *emitter) inlineObject(n int, o Object) bool {
	switch e.policy.whitespace {
	case Never:
		return true
	case ExceptEmpty:
		return n == 0
	case Simple:
		return n == 0 || o.IsSimple()
	default: // Every
		return false
	}
}

func (e *emitter) writeArray(a Array, depth int) error {
	n := a.Count()
	if n == 0 {
		e.sb.WriteString("[]")
		return nil
	}
	e.sb.WriteByte('[')
	if e.inlineArray(n, a) {
		for i := 0; i < n; i++ {
			if i > 0 {
				e.sb.WriteString(", ")
			}
			if err := e.write(a.Get(i), depth+1); err != nil {
				return err
			}
		}
	} else {
		for i := 0; i < n; i++ {
			if i > 0 {
				e.sb.WriteByte(',')
			}
			e.writeNewlineIndent(depth + 1)
			if err := e.write(a.Get(i), depth+1); err != nil {
				return err
			}
		}
		e.writeNewlineIndent(depth)
	}
	e.sb.WriteByte(']')
	return nil
}

func (e *emitter) writeObject(o Object, depth int) error {
	keys := o.Keys()
	n := len(keys)
	if n == 0 {
		e.sb.WriteString("{}")
		return nil
	}
	e.sb.WriteByte('{')
	if e.inlineObject(n, o) {
		for i, k := range keys {
			if i > 0 {
				e.sb.WriteString(", ")
			}
			e.writeEscapedString(k)
			e.sb.WriteString(": ")
			if err := e.write(o.Get(k), depth+1); err != nil {
				return err
			}
		}
	} else {
		for i, k := range keys {
			if i > 0 {
				e.sb.WriteByte(',')
			}
			e.writeNewlineIndent(depth + 1)
			e.writeEscapedString(k)
			e.sb.WriteString(": ")
			if err := e.write(o.Get(k), depth+1); err != nil {
				return err
			}
		}
		e.writeNewlineIndent(depth)
	}
	e.sb.WriteByte('}')
	return nil
}

func (e *emitter) writeNewlineIndent(depth int) {
	e.sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		e.sb.WriteString(e.policy.indent)
	}
}

// writeEscapedString writes s as a double-quoted JSON string. The seven
// named backslash-escapes always apply; \uXXXX escaping of other control or
// non-ASCII code points is conditional on the policy's escapeUnicode flag.
// '/' is never escaped.
func (e *emitter) writeEscapedString(s string) {
	e.sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\b':
			e.sb.WriteString(`\b`)
		case '\f':
			e.sb.WriteString(`\f`)
		case '\n':
			e.sb.WriteString(`\n`)
		case '\r':
			e.sb.WriteString(`\r`)
		case '\t':
			e.sb.WriteString(`\t`)
		case '\\':
			e.sb.WriteString(`\\`)
		case '"':
			e.sb.WriteString(`\"`)
		default:
			if e.policy.escapeUnicode && (r < 0x20 || r >= 0x7F) {
				writeUnicodeEscape(&e.sb, r)
			} else {
				e.sb.WriteRune(r)
			}
		}
	}
	e.sb.WriteByte('"')
}

func writeUnicodeEscape(sb *strings.Builder, r rune) {
	if r > 0xFFFF {
		r1, r2 := utf16.EncodeRune(r)
		fmt.Fprintf(sb, `\u%04x\u%04x`, r1, r2)
		return
	}
	fmt.Fprintf(sb, `\u%04x`, r)
}
