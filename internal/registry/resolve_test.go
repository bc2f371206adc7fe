package registry

import (
	"errors"
	"testing"
)

func chainDoc(t *testing.T) *Registry {
	t.Helper()
	return Build(mustParse(t, `{
		"base": {"$type": "color", "$value": "#ff0000"},
		"alias": {"$value": "{base}"},
		"deep": {"$value": "{alias}"}
	}`))
}

func TestResolveDirect(t *testing.T) {
	reg := chainDoc(t)
	res, err := Resolve("base", reg, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Value != "#ff0000" || res.Type != "color" {
		t.Fatalf("got %+v", res)
	}
}

func TestResolveMultiHop(t *testing.T) {
	reg := chainDoc(t)
	res, err := Resolve("deep", reg, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Value != "#ff0000" {
		t.Fatalf("value = %v, want leaf value", res.Value)
	}
	if res.Type != "color" {
		t.Fatalf("type = %q, want leaf type", res.Type)
	}
}

func TestResolveMissing(t *testing.T) {
	reg := chainDoc(t)
	_, err := Resolve("nope", reg, nil)
	var miss *MissingError
	if !errors.As(err, &miss) {
		t.Fatalf("want MissingError, got %v", err)
	}
	if got := miss.Error(); got != "Reference '{nope}' points to non-existent token" {
		t.Fatalf("message = %q", got)
	}
}

func TestResolveCycleChain(t *testing.T) {
	reg := Build(mustParse(t, `{
		"a": {"$value": "{b}"},
		"b": {"$value": "{a}"}
	}`))
	_, err := Resolve("a", reg, nil)
	var cyc *CycleError
	if !errors.As(err, &cyc) {
		t.Fatalf("want CycleError, got %v", err)
	}
	if got := cyc.Error(); got != "Circular reference detected: a → b → a" {
		t.Fatalf("message = %q", got)
	}
}

func TestResolveSelfReference(t *testing.T) {
	reg := Build(mustParse(t, `{"a": {"$value": "{a}"}}`))
	_, err := Resolve("a", reg, nil)
	var cyc *CycleError
	if !errors.As(err, &cyc) {
		t.Fatalf("want CycleError, got %v", err)
	}
	if got := cyc.Error(); got != "Circular reference detected: a → a" {
		t.Fatalf("message = %q", got)
	}
}

func TestResolveDanglingTail(t *testing.T) {
	reg := Build(mustParse(t, `{"a": {"$value": "{gone}"}}`))
	_, err := Resolve("a", reg, nil)
	var miss *MissingError
	if !errors.As(err, &miss) {
		t.Fatalf("want MissingError, got %v", err)
	}
	if miss.Path != "gone" {
		t.Fatalf("path = %q, want gone", miss.Path)
	}
}
