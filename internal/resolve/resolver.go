// Package resolve translates schema declarations into the
// renderer-facing IR, one world at a time. Resolution is depth-first
// and memoized in a single table; the table's insertion order doubles
// as a dependency order for rendering, because a declaration is only
// inserted after everything it references.
package resolve

import (
	"fmt"

	"github.com/nordwire/borshgen/internal/ir"
	"github.com/nordwire/borshgen/internal/typeexpr"
	"github.com/nordwire/borshgen/schema"
)

// Parent says how a declaration is being reached. The two type
// systems do not correspond one to one, so single-field wrappers pick
// their display name from this context. It is recursion-time state
// only and is never memoized.
type Parent int

const (
	// ParentUnspecified marks world roots and positions where the
	// context has no naming effect.
	ParentUnspecified Parent = iota
	// ParentRecord marks resolution of a named struct field.
	ParentRecord
	// ParentUnion marks resolution of a union variant payload.
	ParentUnion
)

// resolveState tracks the lifecycle of one declaration. Absence from
// the state map means the declaration was never visited.
type resolveState int

const (
	stateInProgress resolveState = iota + 1
	stateDone
)

// Resolver resolves the declarations of one container into a shared
// table. It is single-use: build one world, hand the table to the
// renderer, discard.
type Resolver struct {
	container *schema.Container
	table     *ir.Table
	state     map[schema.Declaration]resolveState
}

// NewResolver returns a resolver over c with an empty table. The
// container must already have passed Validate.
func NewResolver(c *schema.Container) *Resolver {
	return &Resolver{
		container: c,
		table:     ir.NewTable(),
		state:     make(map[schema.Declaration]resolveState),
	}
}

// Table exposes the resolution table being populated.
func (r *Resolver) Table() *ir.Table { return r.table }

// Resolve translates decl into its IR target, memoizing the result.
// Reaching a declaration whose resolution is still in progress means
// the schema graph is cyclic, which is rejected rather than recursed
// into.
func (r *Resolver) Resolve(decl schema.Declaration, parent Parent) (ir.Target, error) {
	if target, ok := r.table.Lookup(decl); ok {
		return target, nil
	}
	if r.state[decl] == stateInProgress {
		return nil, coded(codeRecursiveSchema, decl, "recursive schema graphs are not supported")
	}
	r.state[decl] = stateInProgress
	target, err := r.resolveFresh(decl, parent)
	if err != nil {
		return nil, err
	}
	r.state[decl] = stateDone
	return target, nil
}

func (r *Resolver) resolveFresh(decl schema.Declaration, parent Parent) (ir.Target, error) {
	if target, ok := wellKnown(decl); ok {
		return r.table.Insert(decl, target), nil
	}
	if inner, ok := typeexpr.Option(decl); ok {
		innerTarget, err := r.Resolve(inner, ParentUnspecified)
		if err != nil {
			return nil, err
		}
		// Memoized under the wrapper's own synthesized name, so every
		// later reference to the same instantiation reuses it.
		return r.table.Insert(decl, ir.Option(inner, innerTarget.DisplayName())), nil
	}
	def, ok := r.container.Definition(decl)
	if !ok {
		panic(fmt.Sprintf("resolve: no definition for %q; container must be validated first", decl))
	}
	switch d := def.(type) {
	case schema.Primitive:
		panic(fmt.Sprintf("resolve: primitive %q is missing from the catalog", decl))
	case schema.Sequence:
		return r.resolveSequence(d)
	case schema.Tuple:
		return nil, coded(codeBareTuple, decl, "tuple types are not allowed in the public type surface")
	case schema.Enum:
		return r.resolveEnum(decl, d)
	case schema.Struct:
		return r.resolveStruct(decl, d, parent)
	default:
		panic(fmt.Sprintf("resolve: unhandled definition %T for %q", def, decl))
	}
}

// resolveSequence maps fixed-length sequences to inline array targets
// and variable-length sequences to the opaque string target. Neither
// is memoized: both render inline at every reference site and have no
// standalone declaration.
func (r *Resolver) resolveSequence(d schema.Sequence) (ir.Target, error) {
	if d.LengthWidth != 0 {
		return &ir.PlainString{}, nil
	}
	element, err := r.Resolve(d.Elements, ParentUnspecified)
	if err != nil {
		return nil, err
	}
	return ir.FixedArray(d.Elements, uint16(d.LengthRange.Start), elementDisplay(element)), nil
}

// elementDisplay derives the display name a fixed array writes its
// elements with. Only inline-displayable element shapes are supported;
// anything else is a defect in the pattern catalog, not a schema
// error.
func elementDisplay(element ir.Target) string {
	switch t := element.(type) {
	case *ir.WellKnown:
		return t.TS
	case *ir.Record:
		return t.Symbol
	case *ir.Alias:
		switch e := t.Elem.(type) {
		case *ir.WellKnown:
			return e.TS
		case *ir.Record:
			return e.Symbol
		}
	}
	panic(fmt.Sprintf("resolve: fixed array element %T has no inline display", element))
}

func (r *Resolver) resolveEnum(decl schema.Declaration, d schema.Enum) (ir.Target, error) {
	if d.TagWidth != 1 {
		return nil, fmt.Errorf("resolve: enum %q: tag width %d is not supported", decl, d.TagWidth)
	}
	variants := make([]ir.Variant, 0, len(d.Variants))
	for _, v := range d.Variants {
		variant := ir.Variant{Symbol: v.Name + "Variant", Discriminant: uint8(v.Discriminant)}
		if !r.emptyPayload(v.Declaration) {
			inner, err := r.Resolve(v.Declaration, ParentUnion)
			if err != nil {
				return nil, err
			}
			// The payload declaration is synthetic and anonymous: it
			// renders inside the variant, never standalone.
			r.table.Remove(v.Declaration)
			variant.Inner = inner
		}
		variants = append(variants, variant)
	}
	return r.table.Insert(decl, &ir.Union{Symbol: decl + "Enum", Variants: variants}), nil
}

// emptyPayload reports whether decl is defined as a unit struct.
// Undefined declarations (optional-wrapper instantiations have no
// stored definition) are not empty.
func (r *Resolver) emptyPayload(decl schema.Declaration) bool {
	def, ok := r.container.Definition(decl)
	if !ok {
		return false
	}
	s, ok := def.(schema.Struct)
	if !ok {
		return false
	}
	_, empty := s.Fields.(schema.EmptyFields)
	return empty
}

func (r *Resolver) resolveStruct(decl schema.Declaration, d schema.Struct, parent Parent) (ir.Target, error) {
	switch fields := d.Fields.(type) {
	case schema.NamedFields:
		resolved := make([]ir.Field, 0, len(fields))
		for _, f := range fields {
			target, err := r.Resolve(f.Declaration, ParentRecord)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, ir.Field{Name: f.Name, Target: target})
		}
		return r.table.Insert(decl, &ir.Record{Symbol: decl, Fields: resolved}), nil
	case schema.UnnamedFields:
		if len(fields) != 1 {
			return nil, coded(codeMultiField, decl, "unnamed struct carries %d fields, want exactly 1", len(fields))
		}
		// The wrapper is transparent, so the inner type is resolved
		// under the caller's own context, not a fresh one.
		inner, err := r.Resolve(fields[0], parent)
		if err != nil {
			return nil, err
		}
		if inner.Kind() == ir.TargetAlias {
			return nil, coded(codeNestedWrapper, decl, "wrapper wraps another single-field wrapper; flatten the layering")
		}
		name := decl
		if parent == ParentUnion {
			// A variant payload surfaces under the wrapped type's own
			// name; the wrapper's declaration stays out of the output.
			name = inner.DisplayName()
		}
		return r.table.Insert(decl, &ir.Alias{Name: name, Elem: inner}), nil
	case schema.EmptyFields:
		return nil, coded(codeEmptyStruct, decl, "unit structs have no encodable payload")
	default:
		panic(fmt.Sprintf("resolve: unhandled field layout %T for %q", d.Fields, decl))
	}
}
