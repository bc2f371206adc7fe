// Package registry builds the flat path lookup over a token document and
// resolves brace-delimited references through it.
package registry

import (
	"golang.org/x/text/unicode/norm"

	"github.com/dembrandt/dtcg-validator/internal/dtcg"
)

// Token is one registry record: the raw $value, the effective $type (own if
// present, else the nearest enclosing group's), and the dotted path.
type Token struct {
	Value any
	Type  string
	Path  string
}

// Registry is the flat path -> token mapping for one validation run. It is
// built once, read-only afterwards, and never shared across runs.
type Registry struct {
	tokens map[string]Token
}

// Build walks the document once and registers every node carrying a $value.
// The builder is tolerant: it reports nothing and registers whatever it can,
// so resolution can still be attempted against documents the tree validator
// will reject.
func Build(root *dtcg.Object) *Registry {
	r := &Registry{tokens: make(map[string]Token)}
	if root != nil {
		r.walk(root, "", "")
	}
	return r
}

func (r *Registry) walk(node *dtcg.Object, path, groupType string) {
	if dtcg.IsToken(node) {
		value, _ := node.Get(dtcg.KeyValue)
		typ := groupType
		if own, ok := node.GetString(dtcg.KeyType); ok {
			typ = own
		}
		r.tokens[Normalize(path)] = Token{Value: value, Type: typ, Path: path}
		return
	}
	if own, ok := node.GetString(dtcg.KeyType); ok {
		groupType = own
	}
	for _, name := range dtcg.ChildNames(node) {
		child, _ := node.Get(name)
		obj, ok := child.(*dtcg.Object)
		if !ok {
			// Non-object children are malformed; the tree validator
			// reports them.
			continue
		}
		r.walk(obj, dtcg.JoinPath(path, name), groupType)
	}
}

// Lookup returns the token registered at path (already normalized or not).
func (r *Registry) Lookup(path string) (Token, bool) {
	t, ok := r.tokens[Normalize(path)]
	return t, ok
}

// Size returns the number of registered tokens.
func (r *Registry) Size() int {
	return len(r.tokens)
}

// Normalize maps a dotted path to NFC so composed and decomposed spellings of
// the same key address the same token.
func Normalize(path string) string {
	return norm.NFC.String(path)
}
