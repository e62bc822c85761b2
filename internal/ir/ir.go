// Package ir defines the target-facing intermediate representation
// produced by the resolver and consumed by code renderers. This
// package is internal and not part of the public API.
package ir

// TargetKind identifies an IR target type.
type TargetKind int

const (
	TargetWellKnown TargetKind = iota
	TargetPlainString
	TargetRecord
	TargetAlias
	TargetUnion
)

// Target is the resolved representation of one schema declaration.
// The set of implementations is closed.
type Target interface {
	Kind() TargetKind
	// DisplayName is the type name a field of this target is written
	// with at reference sites.
	DisplayName() string
}

// WellKnown represents a primitive or a fixed-length primitive array.
// It needs no standalone declaration and is rendered inline wherever
// it is referenced.
type WellKnown struct {
	Borsh    string // serialization descriptor ("u64", "u8", ...)
	TS       string // display type ("number", "bigint", "Uint8Array", ...)
	FixedLen uint16 // element count, meaningful when Fixed is set
	Fixed    bool
	Optional bool
}

func (w *WellKnown) Kind() TargetKind { return TargetWellKnown }

func (w *WellKnown) DisplayName() string {
	if w.Optional {
		return w.TS + " | undefined"
	}
	return w.TS
}

// Number maps an integer that fits the double range.
func Number(borsh string) *WellKnown { return &WellKnown{Borsh: borsh, TS: "number"} }

// Boolean maps a logical primitive onto the native boolean type.
func Boolean(borsh string) *WellKnown { return &WellKnown{Borsh: borsh, TS: "boolean"} }

// Bigint maps 64-bit and wider integers, which do not fit the double
// range.
func Bigint(borsh string) *WellKnown { return &WellKnown{Borsh: borsh, TS: "bigint"} }

// FixedArray maps a fixed-length run of elements. Byte runs surface as
// Uint8Array rather than number[].
func FixedArray(element string, length uint16, elementDisplay string) *WellKnown {
	ts := elementDisplay + "[]"
	if element == "u8" {
		ts = "Uint8Array"
	}
	return &WellKnown{Borsh: element, TS: ts, FixedLen: length, Fixed: true}
}

// Option wraps an already-resolved inner type as optional. Borsh keeps
// the inner declaration; DisplayName widens the inner display with
// undefined.
func Option(inner string, innerDisplay string) *WellKnown {
	return &WellKnown{Borsh: inner, TS: innerDisplay, Optional: true}
}

// PlainString represents a variable-length sequence mapped onto the
// opaque string type. Binary payloads are not distinguished from text.
type PlainString struct{}

func (*PlainString) Kind() TargetKind    { return TargetPlainString }
func (*PlainString) DisplayName() string { return "string" }

// Field couples one record field name with its resolved target.
type Field struct {
	Name   string
	Target Target
}

// Record represents a named product type emitted as its own
// declaration.
type Record struct {
	Symbol string
	Fields []Field
}

func (r *Record) Kind() TargetKind    { return TargetRecord }
func (r *Record) DisplayName() string { return r.Symbol }

// Alias represents a single-field transparent wrapper. Name is chosen
// during resolution and depends on the context the wrapper was reached
// from.
type Alias struct {
	Name string
	Elem Target
}

func (a *Alias) Kind() TargetKind    { return TargetAlias }
func (a *Alias) DisplayName() string { return a.Name }

// Variant is one tagged alternative of a Union.
type Variant struct {
	Symbol       string
	Discriminant uint8
	Inner        Target // nil when the variant carries no payload
}

// Union represents a tagged choice emitted as a marker declaration
// plus one subtype per variant.
type Union struct {
	Symbol   string
	Variants []Variant
}

func (u *Union) Kind() TargetKind    { return TargetUnion }
func (u *Union) DisplayName() string { return u.Symbol }
