package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/nordwire/borshgen/internal/ir"
)

// Import preamble for the serialization decorators every emitted
// declaration uses.
//
//go:embed imports.ts
var importsTS string

// TypeScript renders the table as decorated TypeScript classes for the
// @dao-xyz/borsh runtime. The target language has no closed sum types,
// so unions render as a marker class plus one subclass per variant.
type TypeScript struct{}

func (TypeScript) Language() string      { return "typescript" }
func (TypeScript) FileExtension() string { return ".ts" }

func (TypeScript) Render(entries []ir.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(importsTS)
	for _, entry := range entries {
		switch target := entry.Target.(type) {
		case *ir.WellKnown, *ir.PlainString:
			// Rendered inline wherever a field references them.
		case *ir.Record:
			writeClass(&b, target.Symbol, target.Fields)
		case *ir.Alias:
			writeClass(&b, target.Name, []ir.Field{{Name: "_0", Target: target.Elem}})
		case *ir.Union:
			writeUnion(&b, target)
		default:
			return nil, fmt.Errorf("gen: no typescript rendering for %T (%s)", target, entry.Declaration)
		}
	}
	return b.Bytes(), nil
}

func writeClass(b *bytes.Buffer, name string, fields []ir.Field) {
	fmt.Fprintf(b, "\nexport class %s {\n", name)
	for _, field := range fields {
		fmt.Fprintf(b, "  @field({ type: %s })\n", fieldAnnotation(field.Target))
		fmt.Fprintf(b, "  %s: %s;\n\n", field.Name, field.Target.DisplayName())
	}
	fmt.Fprintf(b, "  constructor(data: %s) {\n", name)
	b.WriteString("    Object.assign(this, data);\n")
	b.WriteString("  }\n}\n")
}

func writeUnion(b *bytes.Buffer, u *ir.Union) {
	discriminants := make([]string, 0, len(u.Variants))
	for _, v := range u.Variants {
		discriminants = append(discriminants, fmt.Sprintf("%d", v.Discriminant))
	}
	fmt.Fprintf(b, "\n@variant([%s])\nexport class %s {}\n", strings.Join(discriminants, ", "), u.Symbol)

	base := strings.TrimSuffix(u.Symbol, "Enum")
	for _, v := range u.Variants {
		fmt.Fprintf(b, "\n@variant(%d)\nexport class %s extends %s ", v.Discriminant, v.Symbol, u.Symbol)
		if v.Inner == nil {
			b.WriteString("{}\n")
			continue
		}
		// The payload surfaces under its display name with the union's
		// own base name stripped out of it.
		payload := strings.ReplaceAll(v.Inner.DisplayName(), base, "")
		fmt.Fprintf(b, "{\n  @field({ type: %q })\n  _0: %s;\n}\n", payload, payload)
	}
}

// fieldAnnotation derives the serialization descriptor for one field.
// Primitives are quoted descriptor strings with fixed-length and
// optional shapes rendered as wrapper calls; compound targets are
// referenced by symbol.
func fieldAnnotation(target ir.Target) string {
	switch t := target.(type) {
	case *ir.WellKnown:
		switch {
		case t.Fixed:
			return fmt.Sprintf("fixedArray(%q, %d)", t.Borsh, t.FixedLen)
		case t.Optional:
			return fmt.Sprintf("option(%q)", t.Borsh)
		default:
			return fmt.Sprintf("%q", t.Borsh)
		}
	case *ir.PlainString:
		return "'string'"
	default:
		return target.DisplayName()
	}
}
