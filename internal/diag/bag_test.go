package diag

import (
	"reflect"
	"testing"
)

func TestBagOrderAndSplit(t *testing.T) {
	bag := NewBag(DefaultMax)
	bag.Error(ValueShape, "a", "first error")
	bag.Warn(TypeUnknown, "b", "first warning")
	bag.Error(RefMissing, "c", "second error")

	if bag.Len() != 3 {
		t.Fatalf("len = %d", bag.Len())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatal("severity presence flags wrong")
	}
	errs, warns := bag.Messages()
	if !reflect.DeepEqual(errs, []string{"first error", "second error"}) {
		t.Fatalf("errors = %v", errs)
	}
	if !reflect.DeepEqual(warns, []string{"first warning"}) {
		t.Fatalf("warnings = %v", warns)
	}
}

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(ValueShape, "a", "one")) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(NewError(ValueShape, "b", "two")) {
		t.Fatal("second add rejected")
	}
	if bag.Add(NewError(ValueShape, "c", "three")) {
		t.Fatal("add past cap must be rejected")
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
}

func TestBagBadCapFallsBack(t *testing.T) {
	for _, max := range []int{0, -5, 1 << 20} {
		bag := NewBag(max)
		if bag.Cap() != DefaultMax {
			t.Fatalf("NewBag(%d).Cap() = %d, want %d", max, bag.Cap(), DefaultMax)
		}
	}
}

func TestCodeBands(t *testing.T) {
	cases := []struct {
		code     Code
		id       string
		category string
	}{
		{StructEmptyInput, "STR1001", "structure"},
		{NameInvalidChar, "NAM2001", "naming"},
		{TypeUnknown, "TYP3001", "type"},
		{ValueRange, "VAL4002", "value"},
		{RefCycle, "REF5002", "reference"},
	}
	for _, c := range cases {
		if got := c.code.ID(); got != c.id {
			t.Fatalf("ID(%d) = %q, want %q", c.code, got, c.id)
		}
		if got := c.code.Category(); got != c.category {
			t.Fatalf("Category(%d) = %q, want %q", c.code, got, c.category)
		}
	}
}

func TestCodeStringUnknown(t *testing.T) {
	if got := UnknownCode.String(); got != "[E0000]: Unknown diagnostic" {
		t.Fatalf("got %q", got)
	}
}
