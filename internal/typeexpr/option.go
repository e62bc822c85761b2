// Package typeexpr recognizes the one generic type-name shape the
// resolver cares about: an optional wrapper with a single parameter.
//
// Declarations arrive as canonical type names ("Option<u32>",
// "Option<Vec<u8>>"). This is a dedicated grammar for that shape, not
// a general type-expression parser.
package typeexpr

import "strings"

// Option reports whether decl names an optional wrapper and returns
// the inner parameter's declaration when it does. A wrapper with more
// than one top-level parameter is not Option-shaped and is left to the
// definition-based resolution path.
func Option(decl string) (string, bool) {
	const prefix = "Option<"
	if !strings.HasPrefix(decl, prefix) || !strings.HasSuffix(decl, ">") {
		return "", false
	}
	inner := decl[len(prefix) : len(decl)-1]
	if !singleParameter(inner) {
		return "", false
	}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return "", false
	}
	return inner, true
}

// singleParameter checks bracket nesting and rejects top-level commas,
// which would mean more than one type parameter.
func singleParameter(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
			if depth < 0 {
				return false
			}
		case ',':
			if depth == 0 {
				return false
			}
		}
	}
	return depth == 0
}
