package dynjson

import (
	"slices"
	"strings"
)

// SortFunc sorts the array's elements in place using cmp, following the
// teacher's slices.Sort convention for deterministic output ordering.
func (a Array) SortFunc(cmp func(x, y Variant) int) {
	b := a.bodyOrNil()
	if b == nil {
		return
	}
	slices.SortFunc(b.elems, cmp)
}

// Sort sorts the array's elements in place using a default total order:
// by Kind first, then numerically for Integer/Float, lexically for String,
// false-before-true for Boolean, and by element count for Array/Object.
func (a Array) Sort() {
	a.SortFunc(compareVariants)
}

func compareVariants(x, y Variant) int {
	if x.Kind() != y.Kind() {
		return int(x.Kind()) - int(y.Kind())
	}
	switch x.Kind() {
	case KindBoolean:
		switch {
		case x.n.b == y.n.b:
			return 0
		case !x.n.b:
			return -1
		default:
			return 1
		}
	case KindInteger:
		switch {
		case x.n.i < y.n.i:
			return -1
		case x.n.i > y.n.i:
			return 1
		default:
			return 0
		}
	case KindFloat:
		switch {
		case x.n.f < y.n.f:
			return -1
		case x.n.f > y.n.f:
			return 1
		default:
			return 0
		}
	case KindString:
		return strings.Compare(x.n.s, y.n.s)
	case KindArray:
		return x.n.arr.Count() - y.n.arr.Count()
	case KindObject:
		return x.n.obj.Count() - y.n.obj.Count()
	default: // KindNull
		return 0
	}
}

// SortedKeys returns the object's keys in ascending lexical order; unlike
// Keys, this is a fresh slice and does not reflect or alter insertion order.
func (o Object) SortedKeys() []string {
	keys := o.Keys()
	slices.Sort(keys)
	return keys
}
