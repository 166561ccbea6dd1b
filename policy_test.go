package dynjson

import "testing"

func TestNewFormatPolicy_Defaults(t *testing.T) {
	fp := NewFormatPolicy()
	if fp.whitespace != Never {
		t.Errorf("default whitespace = %v; want Never", fp.whitespace)
	}
	if fp.specialFloat != AsString {
		t.Errorf("default specialFloat = %v; want AsString", fp.specialFloat)
	}
	if fp.maxDepth != DefaultMaxDepth {
		t.Errorf("default maxDepth = %d; want %d", fp.maxDepth, DefaultMaxDepth)
	}
	if fp.escapeUnicode {
		t.Error("default escapeUnicode should be false")
	}
}

func TestPolicyOptions_Override(t *testing.T) {
	fp := NewFormatPolicy(
		WithWhitespace(Every),
		WithIndent("\t"),
		WithSpecialFloatPolicy(Throw),
		WithEscapeUnicode(true),
		WithMaxDepth(8),
	)
	if fp.whitespace != Every {
		t.Error("WithWhitespace did not apply")
	}
	if fp.indent != "\t" {
		t.Error("WithIndent did not apply")
	}
	if fp.specialFloat != Throw {
		t.Error("WithSpecialFloatPolicy did not apply")
	}
	if !fp.escapeUnicode {
		t.Error("WithEscapeUnicode did not apply")
	}
	if fp.maxDepth != 8 {
		t.Error("WithMaxDepth did not apply")
	}
}

func TestWithMaxDepth_IgnoresNonPositive(t *testing.T) {
	fp := NewFormatPolicy(WithMaxDepth(0))
	if fp.maxDepth != DefaultMaxDepth {
		t.Errorf("maxDepth = %d; want unchanged default %d for a non-positive override", fp.maxDepth, DefaultMaxDepth)
	}
	fp2 := NewFormatPolicy(WithMaxDepth(-5))
	if fp2.maxDepth != DefaultMaxDepth {
		t.Error("a negative WithMaxDepth should also be ignored")
	}
}

func TestOneLiner_Pretty_Mixed_Presets(t *testing.T) {
	one := OneLiner()
	if one.whitespace != Never || one.indent != "" {
		t.Error("OneLiner should use Never whitespace and no indent")
	}

	pretty := Pretty()
	if pretty.whitespace != ExceptEmpty || pretty.indent != "  " {
		t.Error("Pretty should use ExceptEmpty whitespace and two-space indent")
	}

	mixed := Mixed()
	if mixed.whitespace != Simple || mixed.indent != "  " {
		t.Error("Mixed should use Simple whitespace and two-space indent")
	}
}
