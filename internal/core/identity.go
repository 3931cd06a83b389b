package core

import "strings"

// NamespaceSeparator separates segments of a namespace and joins the
// namespace to the function name in a canonical identity.
const NamespaceSeparator = `\`

// CanonicalIdentity derives the registry key for a function from its
// namespace and name. Outer separators on the namespace are trimmed, the
// namespace and name are joined with the separator, and the result is
// case-folded. Two mocks whose components normalize to the same string
// target the same function.
func CanonicalIdentity(namespace, name string) string {
	trimmed := strings.Trim(namespace, NamespaceSeparator)

	return strings.ToLower(trimmed + NamespaceSeparator + name)
}
