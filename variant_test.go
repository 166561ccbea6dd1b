package dynjson

import (
	"math"
	"testing"
)

func TestNewVariant_Kinds(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBoolean},
		{"int", 7, KindInteger},
		{"int64", int64(7), KindInteger},
		{"float64", 3.5, KindFloat},
		{"string", "hi", KindString},
		{"array", NewArray(), KindArray},
		{"object", NewObject(), KindObject},
		{"unsupported", struct{}{}, KindNull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVariant(tt.in)
			if v.Kind() != tt.want {
				t.Errorf("NewVariant(%v).Kind() = %v; want %v", tt.in, v.Kind(), tt.want)
			}
		})
	}
}

func TestVariant_ZeroValueIsNull(t *testing.T) {
	var v Variant
	if !v.IsNull() {
		t.Error("zero-value Variant should report IsNull() == true")
	}
}

func TestVariant_ReferenceSemantics(t *testing.T) {
	v := NewInt(1)
	alias := v
	alias.Assign(2)
	if v.AsLong() != 2 {
		t.Errorf("Assign through an aliased Variant should be observed by the original; got %d", v.AsLong())
	}
}

func TestVariant_Duplicate_DetachesNode(t *testing.T) {
	v := NewInt(1)
	cp := v.Duplicate()
	cp.Assign(2)
	if v.AsLong() != 1 {
		t.Errorf("Duplicate should detach the node; original changed to %d", v.AsLong())
	}
}

func TestVariant_AsBool(t *testing.T) {
	tests := []struct {
		name string
		v    Variant
		want bool
	}{
		{"null", NewNull(), false},
		{"true", NewBool(true), true},
		{"nonzero int", NewInt(5), true},
		{"zero int", NewInt(0), false},
		{"nonzero float", NewDouble(0.5), true},
		{"string true", NewString("TRUE"), true},
		{"string numeric nonzero", NewString("3"), true},
		{"string numeric zero", NewString("0"), false},
		{"string garbage", NewString("nope"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AsBool(); got != tt.want {
				t.Errorf("AsBool() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestVariant_AsLong_AsDouble_AsString(t *testing.T) {
	v := NewString(" 42 ")
	if v.AsLong() != 42 {
		t.Errorf("AsLong() = %d; want 42", v.AsLong())
	}
	if v.AsDouble() != 42 {
		t.Errorf("AsDouble() = %v; want 42", v.AsDouble())
	}

	f := NewDouble(2.5)
	if f.AsString() != "2.5" {
		t.Errorf("AsString() = %q; want %q", f.AsString(), "2.5")
	}

	nanStr := NewString("NaN")
	if !math.IsNaN(nanStr.AsDouble()) {
		t.Error("AsDouble() on the string \"NaN\" should be NaN")
	}
}

func TestVariant_AsArray_AsObject_Coercion(t *testing.T) {
	v := NewInt(5)
	arr := v.AsArray()
	if arr.Count() != 1 || arr.Get(0).AsLong() != 5 {
		t.Errorf("AsArray() on a scalar should wrap it as a single element; got count=%d", arr.Count())
	}

	obj := v.AsObject()
	if obj.Get("value").AsLong() != 5 {
		t.Errorf("AsObject() on a scalar should wrap it under \"value\"")
	}

	same := NewArrayVariant(NewArray())
	if !same.AsArray().Equals(same.n.arr) {
		t.Error("AsArray() on an Array-kind Variant should return the same handle")
	}
}

func TestVariant_Add_AutoCoercesToArray(t *testing.T) {
	v := NewNull()
	v.Add(1)
	v.Add(2)
	if !v.IsArray() || v.n.arr.Count() != 2 {
		t.Errorf("Add on a Null Variant should auto-coerce to Array; got kind=%v count=%d", v.Kind(), v.n.arr.Count())
	}
}

func TestVariant_Index_ExtendsArray(t *testing.T) {
	v := NewArrayVariant(NewArray())
	slot := v.Index(3)
	slot.Assign("x")
	if v.n.arr.Count() != 4 {
		t.Errorf("Index(3) should extend the array to length 4; got %d", v.n.arr.Count())
	}
	if v.n.arr.Get(3).AsString() != "x" {
		t.Error("the slot returned by Index should alias the stored element")
	}
}

func TestVariant_Field_ArrayIntegerKeyVsCoercion(t *testing.T) {
	v := NewArrayVariant(NewArray())
	v.Index(0).Assign("a")
	v.Field("0").Assign("b")
	if v.n.arr.Get(0).AsString() != "b" {
		t.Error("Field with an integer-valued key on an Array should index into it, not coerce to Object")
	}

	v2 := NewArrayVariant(NewArray())
	v2.Index(0).Assign("a")
	v2.Field("name").Assign("bob")
	if !v2.IsObject() {
		t.Error("Field with a non-integer key on an Array should coerce it to an Object")
	}
	if v2.n.obj.Get("0").AsString() != "a" || v2.n.obj.Get("name").AsString() != "bob" {
		t.Error("coercing an Array to an Object via Field should preserve existing elements by stringified index")
	}
}

func TestVariant_GetField_NonExtending(t *testing.T) {
	v := NewObjectVariant(NewObject())
	got := v.GetField("missing")
	if !got.IsNull() {
		t.Error("GetField on a missing key should return Null")
	}
	if v.n.obj.ContainsKey("missing") {
		t.Error("GetField must not mutate the Object")
	}
}

func TestVariant_Pick(t *testing.T) {
	root := NewObjectVariant(NewObject())
	root.Field("items").Index(0).Field("name").Assign("widget")

	got := root.Pick("items.0.name")
	if got.AsString() != "widget" {
		t.Errorf("Pick(\"items.0.name\") = %q; want %q", got.AsString(), "widget")
	}

	missing := root.Pick("items.5.name")
	if !missing.IsNull() {
		t.Error("Pick should return Null at the first unresolvable step")
	}
}

func TestVariant_Equals_IdentityForComposites(t *testing.T) {
	a := NewArrayVariant(NewArray())
	a.n.arr.Add(NewInt(1))
	b := NewArrayVariant(NewArray())
	b.n.arr.Add(NewInt(1))

	if a.Equals(b) {
		t.Error("Equals on Array-kind Variants should compare handle identity, not structural equality")
	}
	if !a.Equals(a.shallowCopy()) {
		t.Error("a shallow copy shares the same array handle and should Equal the original")
	}
}

func TestVariant_Equivalent_Structural(t *testing.T) {
	a := NewObjectVariant(NewObject())
	a.Field("x").Assign(1)
	b := NewObjectVariant(NewObject())
	b.Field("x").Assign(1)

	ok, err := a.Equivalent(b, DefaultMaxDepth)
	if err != nil || !ok {
		t.Errorf("Equivalent() = (%v, %v); want (true, nil)", ok, err)
	}
}

func TestVariant_Equivalent_MaxDepthExceeded(t *testing.T) {
	a := NewObjectVariant(NewObject())
	a.Field("x").Assign(1)
	b := NewObjectVariant(NewObject())
	b.Field("x").Assign(1)

	_, err := a.Equivalent(b, 0)
	if err == nil {
		t.Error("Equivalent should fail with a *FormatError when maxDepth is exceeded")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Errorf("expected *FormatError, got %T", err)
	}
}
