package dtcg

import "strings"

// Reserved keys carried by token and group nodes. Any key starting with the
// reserved prefix is metadata, never a child name.
const (
	MetaPrefix     = "$"
	KeyValue       = "$value"
	KeyType        = "$type"
	KeyDescription = "$description"
)

// IsMetaKey reports whether key is metadata rather than a child name.
func IsMetaKey(key string) bool {
	return strings.HasPrefix(key, MetaPrefix)
}

// IsToken reports whether node is a token, i.e. carries a $value.
func IsToken(node *Object) bool {
	return node.Has(KeyValue)
}

// ChildNames returns the non-metadata keys of node in declaration order.
func ChildNames(node *Object) []string {
	names := make([]string, 0, node.Len())
	for _, key := range node.Keys() {
		if IsMetaKey(key) {
			continue
		}
		names = append(names, key)
	}
	return names
}

// IsReference reports whether value is a brace-delimited token reference.
// Only the "{...}" shape counts; a string like "{incomplete" is a plain
// literal and flows to the type validator untouched.
func IsReference(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return len(s) >= 2 && strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

// ReferencePath strips the surrounding braces. An empty reference "{}" yields
// the empty path, which no registry contains.
func ReferencePath(value string) string {
	return strings.TrimSuffix(strings.TrimPrefix(value, "{"), "}")
}

// JoinPath appends a child name to a dotted path.
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
