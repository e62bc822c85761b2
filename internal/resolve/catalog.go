package resolve

import (
	"strings"

	"github.com/nordwire/borshgen/internal/ir"
)

// wellKnown maps primitive declarations straight to inline targets.
// 64-bit and wider integers exceed the double range and surface as
// bigint; everything narrower fits number. The boolean primitive also
// maps to number, matching how the serialization layer reads it back.
func wellKnown(decl string) (*ir.WellKnown, bool) {
	switch decl {
	case "i64", "u64", "i128", "u128",
		"NonZeroI64", "NonZeroU64", "NonZeroI128", "NonZeroU128":
		return ir.Bigint(nonZero(decl)), true
	case "i8", "i16", "i32", "u8", "u16", "u32",
		"NonZeroI8", "NonZeroI16", "NonZeroI32", "NonZeroU8", "NonZeroU16", "NonZeroU32":
		return ir.Number(nonZero(decl)), true
	case "bool":
		return ir.Number(decl), true
	}
	return nil, false
}

// nonZero strips the non-zero marker: "NonZeroU64" becomes "u64". The
// target type system has no non-zero integers, so the plain descriptor
// drives serialization.
func nonZero(decl string) string {
	return strings.ToLower(strings.ReplaceAll(decl, "NonZero", ""))
}
