package dtcg

import (
	"reflect"
	"testing"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	obj, err := ParseObject([]byte(`{"zeta": 1, "alpha": 2, "mid": {"b": 1, "a": 2}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := obj.Keys(); !reflect.DeepEqual(got, []string{"zeta", "alpha", "mid"}) {
		t.Fatalf("keys = %v", got)
	}
	inner, _ := obj.Get("mid")
	if got := inner.(*Object).Keys(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("nested keys = %v", got)
	}
}

func TestParseScalarShapes(t *testing.T) {
	obj, err := ParseObject([]byte(`{"s": "x", "n": 1.5, "b": true, "z": null, "arr": [1, "two"]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := obj.Get("s"); v != "x" {
		t.Fatalf("s = %v", v)
	}
	if v, _ := obj.Get("n"); v != 1.5 {
		t.Fatalf("n = %v (%T)", v, v)
	}
	if v, _ := obj.Get("b"); v != true {
		t.Fatalf("b = %v", v)
	}
	if v, _ := obj.Get("z"); v != nil {
		t.Fatalf("z = %v", v)
	}
	arr, _ := obj.Get("arr")
	if got := arr.([]any); len(got) != 2 || got[0] != float64(1) || got[1] != "two" {
		t.Fatalf("arr = %v", got)
	}
}

func TestParseRejectsTrailingData(t *testing.T) {
	if _, err := Parse([]byte(`{} {}`)); err == nil {
		t.Fatal("trailing data must fail")
	}
}

func TestParseRejectsTruncated(t *testing.T) {
	for _, raw := range []string{``, `{`, `{"a":`, `[1,`} {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Fatalf("input %q must fail", raw)
		}
	}
}

func TestParseObjectRejectsNonObjectRoot(t *testing.T) {
	for _, raw := range []string{`[]`, `"str"`, `42`, `true`, `null`} {
		_, err := ParseObject([]byte(raw))
		if !IsErrRootNotObject(err) {
			t.Fatalf("input %s: err = %v", raw, err)
		}
	}
}

func TestIsReference(t *testing.T) {
	cases := []struct {
		value any
		want  bool
	}{
		{"{color.primary}", true},
		{"{}", true},
		{"{incomplete", false},
		{"incomplete}", false},
		{"plain", false},
		{"", false},
		{42, false},
		{nil, false},
	}
	for _, c := range cases {
		if got := IsReference(c.value); got != c.want {
			t.Fatalf("IsReference(%v) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestReferencePath(t *testing.T) {
	if got := ReferencePath("{color.brand.primary}"); got != "color.brand.primary" {
		t.Fatalf("got %q", got)
	}
	if got := ReferencePath("{}"); got != "" {
		t.Fatalf("empty reference path = %q", got)
	}
}

func TestChildNames(t *testing.T) {
	obj, err := ParseObject([]byte(`{"$type": "color", "b": {}, "$description": "x", "a": {}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := ChildNames(obj); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("children = %v", got)
	}
}

func TestJoinPath(t *testing.T) {
	if got := JoinPath("", "color"); got != "color" {
		t.Fatalf("got %q", got)
	}
	if got := JoinPath("color.brand", "primary"); got != "color.brand.primary" {
		t.Fatalf("got %q", got)
	}
}
