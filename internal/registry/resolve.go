package registry

import (
	"fmt"
	"strings"

	"github.com/dembrandt/dtcg-validator/internal/dtcg"
)

// Resolution is the concrete value and effective type a reference chain
// lands on.
type Resolution struct {
	Value any
	Type  string
}

// MissingError reports a reference whose target is not in the registry.
type MissingError struct {
	Path string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("Reference '{%s}' points to non-existent token", e.Path)
}

// CycleError reports a circular reference chain. Chain holds every path
// visited in order, ending with the revisited path.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "Circular reference detected: " + strings.Join(e.Chain, " → ")
}

// Resolve follows the reference chain starting at path until a concrete value
// is reached. The cycle check runs before the registry lookup, so a token
// referencing itself is caught on the first revisit. visited belongs to one
// top-level resolution; callers pass nil to start fresh.
func Resolve(path string, reg *Registry, visited []string) (Resolution, error) {
	for {
		p := Normalize(path)
		for _, seen := range visited {
			if seen == p {
				chain := make([]string, 0, len(visited)+1)
				chain = append(chain, visited...)
				chain = append(chain, p)
				return Resolution{}, &CycleError{Chain: chain}
			}
		}
		tok, ok := reg.Lookup(p)
		if !ok {
			return Resolution{}, &MissingError{Path: path}
		}
		visited = append(visited, p)
		if dtcg.IsReference(tok.Value) {
			path = dtcg.ReferencePath(tok.Value.(string))
			continue
		}
		return Resolution{Value: tok.Value, Type: tok.Type}, nil
	}
}
