package validate

import "github.com/dembrandt/dtcg-validator/internal/dtcg"

// CountTokens counts leaf tokens (nodes carrying a $value). Counting is
// independent of validation and never affects validity.
func CountTokens(node *dtcg.Object) int {
	if node == nil {
		return 0
	}
	if dtcg.IsToken(node) {
		return 1
	}
	count := 0
	for _, name := range dtcg.ChildNames(node) {
		child, _ := node.Get(name)
		if obj, ok := child.(*dtcg.Object); ok {
			count += CountTokens(obj)
		}
	}
	return count
}
