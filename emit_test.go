package dynjson

import (
	"math"
	"strings"
	"testing"
)

func buildSample() Variant {
	root := NewObjectVariant(NewObject())
	root.Field("a").Assign(1)
	root.Field("b").Index(0).Assign("x")
	return root
}

func TestEmit_OneLiner(t *testing.T) {
	v := buildSample()
	out, err := Emit(v, OneLiner())
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("OneLiner output should never contain a newline: %q", out)
	}
	if !strings.Contains(out, `"a": 1`) {
		t.Errorf("output should contain the a field: %q", out)
	}
}

func TestEmit_Pretty(t *testing.T) {
	v := buildSample()
	out, err := Emit(v, Pretty())
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	if !strings.Contains(out, "\n") {
		t.Error("Pretty output should contain newlines")
	}
}

func TestEmit_EmptyContainersCollapseUnderExceptEmpty(t *testing.T) {
	v := NewObjectVariant(NewObject())
	out, err := Emit(v, NewFormatPolicy(WithWhitespace(ExceptEmpty)))
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	if out != "{}" {
		t.Errorf("Emit() = %q; want %q", out, "{}")
	}
}

func TestEmit_SpecialFloat_AsString(t *testing.T) {
	v := NewDouble(math.NaN())
	out, err := Emit(v, NewFormatPolicy(WithSpecialFloatPolicy(AsString)))
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, `"`) {
		t.Errorf("AsString should quote the special float literal, got %q", out)
	}
}

func TestEmit_SpecialFloat_AsJsLiteral(t *testing.T) {
	v := NewDouble(math.Inf(1))
	out, err := Emit(v, NewFormatPolicy(WithSpecialFloatPolicy(AsJsLiteral)))
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	if out != "Infinity" {
		t.Errorf("Emit() = %q; want %q", out, "Infinity")
	}
}

func TestEmit_SpecialFloat_Throw(t *testing.T) {
	v := NewDouble(math.NaN())
	_, err := Emit(v, NewFormatPolicy(WithSpecialFloatPolicy(Throw)))
	if err == nil {
		t.Fatal("Throw policy should fail emission of a non-finite float")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Errorf("expected *FormatError, got %T", err)
	}
}

func TestEmit_MaxDepthExceeded(t *testing.T) {
	v := NewArrayVariant(NewArray())
	v.Index(0).Index(0).Index(0).Assign(1)
	_, err := Emit(v, NewFormatPolicy(WithMaxDepth(1)))
	if err == nil {
		t.Fatal("Emit should fail once the configured max depth is exceeded")
	}
}

func TestEmit_EscapedString(t *testing.T) {
	v := NewString("a\nb\"c\\d")
	out, err := Emit(v, OneLiner())
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	want := `"a\nb\"c\\d"`
	if out != want {
		t.Errorf("Emit() = %q; want %q", out, want)
	}
}

func TestEmit_EscapeUnicode(t *testing.T) {
	v := NewString("café")
	out, err := Emit(v, NewFormatPolicy(WithEscapeUnicode(true)))
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	if !strings.Contains(out, "\\u00e9") {
		t.Errorf("Emit() = %q; want a \\u00e9 escape", out)
	}
}

func TestEmit_EscapeUnicode_SurrogatePair(t *testing.T) {
	v := NewString("\U0001F600")
	out, err := Emit(v, NewFormatPolicy(WithEscapeUnicode(true)))
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	if !strings.Contains(out, "\\ud83d\\ude00") {
		t.Errorf("Emit() = %q; want a surrogate-pair escape", out)
	}
}

func TestEmit_SlashNeverEscaped(t *testing.T) {
	v := NewString("a/b")
	out, err := Emit(v, NewFormatPolicy(WithEscapeUnicode(true)))
	if err != nil {
		t.Fatalf("Emit unexpected error: %v", err)
	}
	if out != `"a/b"` {
		t.Errorf("Emit() = %q; '/' should never be escaped", out)
	}
}

func TestEmitBytes(t *testing.T) {
	v := NewInt(42)
	b, err := EmitBytes(v, OneLiner())
	if err != nil {
		t.Fatalf("EmitBytes unexpected error: %v", err)
	}
	if string(b) != "42" {
		t.Errorf("EmitBytes() = %q; want %q", b, "42")
	}
}

func TestEmitUTF16_RoundTripsThroughParseChars(t *testing.T) {
	v := NewString("hi")
	units, err := EmitUTF16(v, OneLiner())
	if err != nil {
		t.Fatalf("EmitUTF16 unexpected error: %v", err)
	}
	back, err := ParseChars(units)
	if err != nil {
		t.Fatalf("ParseChars unexpected error: %v", err)
	}
	if back.AsString() != "hi" {
		t.Errorf("round trip = %q; want %q", back.AsString(), "hi")
	}
}

func TestEmitUTF16Bytes_RoundTripsThroughParseUTF16(t *testing.T) {
	v := NewString("round-trip")
	data, err := EmitUTF16Bytes(v, OneLiner())
	if err != nil {
		t.Fatalf("EmitUTF16Bytes unexpected error: %v", err)
	}
	back, err := ParseUTF16(data)
	if err != nil {
		t.Fatalf("ParseUTF16 unexpected error: %v", err)
	}
	if back.AsString() != "round-trip" {
		t.Errorf("round trip = %q; want %q", back.AsString(), "round-trip")
	}
}
