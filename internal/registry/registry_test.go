package registry

import (
	"testing"

	"github.com/dembrandt/dtcg-validator/internal/dtcg"
)

func mustParse(t *testing.T, raw string) *dtcg.Object {
	t.Helper()
	obj, err := dtcg.ParseObject([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return obj
}

func TestBuildRegistersNestedTokens(t *testing.T) {
	reg := Build(mustParse(t, `{
		"color": {
			"brand": {
				"primary": {"$type": "color", "$value": "#336699"}
			}
		},
		"spacing": {"small": {"$type": "dimension", "$value": "4px"}}
	}`))

	if reg.Size() != 2 {
		t.Fatalf("size = %d, want 2", reg.Size())
	}
	tok, ok := reg.Lookup("color.brand.primary")
	if !ok {
		t.Fatal("color.brand.primary not registered")
	}
	if tok.Type != "color" || tok.Value != "#336699" {
		t.Fatalf("got %+v", tok)
	}
	if _, ok := reg.Lookup("color.brand"); ok {
		t.Fatal("groups must not be registered")
	}
}

func TestBuildGroupTypePropagation(t *testing.T) {
	reg := Build(mustParse(t, `{
		"sizes": {
			"$type": "dimension",
			"small": {"$value": "4px"},
			"override": {"$type": "number", "$value": 4},
			"nested": {"large": {"$value": "32px"}}
		}
	}`))

	small, _ := reg.Lookup("sizes.small")
	if small.Type != "dimension" {
		t.Fatalf("small.Type = %q, want dimension", small.Type)
	}
	override, _ := reg.Lookup("sizes.override")
	if override.Type != "number" {
		t.Fatalf("own $type must win, got %q", override.Type)
	}
	nested, _ := reg.Lookup("sizes.nested.large")
	if nested.Type != "dimension" {
		t.Fatalf("group type must reach nested groups, got %q", nested.Type)
	}
}

func TestBuildSkipsScalarChildren(t *testing.T) {
	reg := Build(mustParse(t, `{"a": 5, "b": {"$value": 1}}`))
	if reg.Size() != 1 {
		t.Fatalf("size = %d, want 1", reg.Size())
	}
}

func TestBuildNilRoot(t *testing.T) {
	reg := Build(nil)
	if reg.Size() != 0 {
		t.Fatalf("size = %d, want 0", reg.Size())
	}
}

func TestLookupNormalizesNFC(t *testing.T) {
	// "é" spelled decomposed in the document, composed in the lookup.
	reg := Build(mustParse(t, `{"théme": {"$type": "number", "$value": 1}}`))
	if _, ok := reg.Lookup("théme"); !ok {
		t.Fatal("composed spelling must find the decomposed key")
	}
}
