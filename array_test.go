package dynjson

import "testing"

func TestArray_AddGetCount(t *testing.T) {
	a := NewArray()
	a.Add(NewInt(1))
	a.Add(NewInt(2))
	if a.Count() != 2 {
		t.Fatalf("Count() = %d; want 2", a.Count())
	}
	if a.Get(0).AsLong() != 1 || a.Get(1).AsLong() != 2 {
		t.Error("Get did not return elements in insertion order")
	}
}

func TestArray_Get_OutOfRangeReturnsNull(t *testing.T) {
	a := NewArray()
	if !a.Get(5).IsNull() {
		t.Error("Get out of range should return Null without mutating")
	}
	if a.Count() != 0 {
		t.Error("Get must not extend the array")
	}
}

func TestArray_Index_ExtendsWithNull(t *testing.T) {
	a := NewArray()
	a.Index(2).Assign("x")
	if a.Count() != 3 {
		t.Fatalf("Count() = %d; want 3", a.Count())
	}
	if !a.Get(0).IsNull() || !a.Get(1).IsNull() {
		t.Error("Index should pad intervening slots with Null")
	}
	if a.Get(2).AsString() != "x" {
		t.Error("Index should return the slot at the requested position")
	}
}

func TestArray_Set_ExtendsAndReplaces(t *testing.T) {
	a := NewArray()
	a.Set(1, NewString("y"))
	if a.Count() != 2 || a.Get(1).AsString() != "y" {
		t.Error("Set should extend and assign at the target index")
	}
}

func TestArray_Resize(t *testing.T) {
	a := NewArray()
	a.Add(NewInt(1))
	a.Add(NewInt(2))
	a.Resize(1)
	if a.Count() != 1 {
		t.Errorf("Resize(1) should truncate; Count() = %d", a.Count())
	}
	a.Resize(3)
	if a.Count() != 3 || !a.Get(1).IsNull() || !a.Get(2).IsNull() {
		t.Error("Resize growing should pad with Null")
	}
}

func TestArray_Clear_SharedBody(t *testing.T) {
	a := NewArray()
	a.Add(NewInt(1))
	b := a
	b.Clear()
	if a.Count() != 0 {
		t.Error("Clear should be observable through any handle sharing the body")
	}
}

func TestArray_Insert(t *testing.T) {
	a := NewArray()
	a.Add(NewInt(1))
	a.Add(NewInt(3))
	a.Insert(1, NewInt(2))
	if a.Count() != 3 || a.Get(1).AsLong() != 2 {
		t.Errorf("Insert should shift elements right; got %v", a.Get(1).AsLong())
	}
}

func TestArray_Insert_ClampsOutOfRange(t *testing.T) {
	a := NewArray()
	a.Add(NewInt(1))
	a.Insert(-5, NewInt(0))
	if a.Get(0).AsLong() != 0 {
		t.Error("negative Insert index should clamp to 0")
	}
}

func TestArray_RemoveAt(t *testing.T) {
	a := NewArray()
	a.Add(NewInt(1))
	a.Add(NewInt(2))
	a.Add(NewInt(3))
	removed := a.RemoveAt(1)
	if removed.AsLong() != 2 || a.Count() != 2 || a.Get(1).AsLong() != 3 {
		t.Error("RemoveAt should return the removed element and shift later elements left")
	}
}

func TestArray_IndexOf_Contains_Remove(t *testing.T) {
	a := NewArray()
	a.Add(NewString("a"))
	a.Add(NewString("b"))
	if a.IndexOf(NewString("b")) != 1 {
		t.Error("IndexOf should find the first equal element")
	}
	if !a.Contains(NewString("a")) {
		t.Error("Contains should report true for a present element")
	}
	if !a.Remove(NewString("a")) {
		t.Error("Remove should report true when the element was found")
	}
	if a.Contains(NewString("a")) {
		t.Error("Remove should actually remove the element")
	}
	if a.Remove(NewString("zzz")) {
		t.Error("Remove should report false for an absent element")
	}
}

func TestArray_ConvertToObject(t *testing.T) {
	a := NewArray()
	a.Add(NewString("x"))
	a.Add(NewString("y"))
	obj := a.ConvertToObject()
	if obj.Get("0").AsString() != "x" || obj.Get("1").AsString() != "y" {
		t.Error("ConvertToObject should key by stringified index")
	}
}

func TestArray_IsSimple(t *testing.T) {
	a := NewArray()
	a.Add(NewInt(1))
	if !a.IsSimple() {
		t.Error("an array of scalars should be IsSimple")
	}
	a.Add(NewArrayVariant(NewArray()))
	if a.IsSimple() {
		t.Error("an array containing a composite should not be IsSimple")
	}
}

func TestArray_Duplicate_DeepClone(t *testing.T) {
	a := NewArray()
	inner := NewArray()
	inner.Add(NewInt(1))
	a.Add(NewArrayVariant(inner))

	dup := a.Duplicate()
	dup.Get(0).AsArray().Set(0, NewInt(99))
	if a.Get(0).AsArray().Get(0).AsLong() != 1 {
		t.Error("Duplicate should recursively clone nested Arrays, not share them")
	}
}

func TestArray_Equals_Identity(t *testing.T) {
	a := NewArray()
	b := NewArray()
	if a.Equals(b) {
		t.Error("distinct Array handles should not Equal")
	}
	if !a.Equals(a) {
		t.Error("an Array should Equal itself")
	}
}

func TestArray_Equivalent(t *testing.T) {
	a := NewArray()
	a.Add(NewInt(1))
	b := NewArray()
	b.Add(NewInt(1))
	ok, err := a.Equivalent(b, DefaultMaxDepth)
	if err != nil || !ok {
		t.Errorf("Equivalent() = (%v, %v); want (true, nil)", ok, err)
	}

	c := NewArray()
	c.Add(NewInt(2))
	ok, err = a.Equivalent(c, DefaultMaxDepth)
	if err != nil || ok {
		t.Error("arrays with different elements should not be Equivalent")
	}
}

func TestArray_ZeroValue_SilentNoOp(t *testing.T) {
	var a Array
	a.Add(NewInt(1)) // must not panic
	if a.Count() != 0 {
		t.Error("writes to a zero-value Array should be silently discarded")
	}
}
