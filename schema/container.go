package schema

import (
	"fmt"
	"sort"

	"github.com/nordwire/borshgen/internal/typeexpr"
)

// Container holds the definitions of one schema, keyed by declaration,
// plus the root declaration generation starts from. Definitions are
// supplied in full before resolution begins and are treated as
// immutable afterwards.
type Container struct {
	root Declaration
	defs map[Declaration]Definition
}

// NewContainer returns an empty container rooted at root.
func NewContainer(root Declaration) *Container {
	return &Container{root: root, defs: make(map[Declaration]Definition)}
}

// Root returns the declaration generation starts from.
func (c *Container) Root() Declaration { return c.root }

// Define records the definition for decl, replacing any earlier one.
func (c *Container) Define(decl Declaration, def Definition) {
	c.defs[decl] = def
}

// Definition looks up the definition for decl.
func (c *Container) Definition(decl Declaration) (Definition, bool) {
	def, ok := c.defs[decl]
	return def, ok
}

// Len reports the number of definitions.
func (c *Container) Len() int { return len(c.defs) }

// Declarations returns every defined declaration in sorted order, for
// deterministic diagnostics.
func (c *Container) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(c.defs))
	for d := range c.defs {
		decls = append(decls, d)
	}
	sort.Strings(decls)
	return decls
}

// Validate checks that the root is defined and that every declaration
// referenced by a definition is itself defined. Optional wrappers are
// the one exception: "Option<T>" needs no stored definition because
// the generator resolves that shape by name, so only its parameter is
// checked.
func (c *Container) Validate() error {
	if c.root == "" {
		return fmt.Errorf("schema: container has no root declaration")
	}
	if err := c.checkRef(c.root); err != nil {
		return fmt.Errorf("schema: root: %w", err)
	}
	for _, decl := range c.Declarations() {
		if err := c.checkDefinition(decl, c.defs[decl]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) checkDefinition(decl Declaration, def Definition) error {
	if def == nil {
		return fmt.Errorf("schema: %q has a nil definition", decl)
	}
	if s, ok := def.(Struct); ok && s.Fields == nil {
		return fmt.Errorf("schema: %q: struct definition has no field layout", decl)
	}
	for _, ref := range references(def) {
		if err := c.checkRef(ref); err != nil {
			return fmt.Errorf("schema: %q: %w", decl, err)
		}
	}
	return nil
}

func (c *Container) checkRef(ref Declaration) error {
	if _, ok := c.defs[ref]; ok {
		return nil
	}
	if inner, ok := typeexpr.Option(ref); ok {
		return c.checkRef(inner)
	}
	return fmt.Errorf("dangling reference %q", ref)
}

// references lists the declarations a definition points at.
func references(def Definition) []Declaration {
	switch d := def.(type) {
	case Primitive:
		return nil
	case Sequence:
		return []Declaration{d.Elements}
	case Tuple:
		return d.Elements
	case Enum:
		refs := make([]Declaration, 0, len(d.Variants))
		for _, v := range d.Variants {
			refs = append(refs, v.Declaration)
		}
		return refs
	case Struct:
		switch f := d.Fields.(type) {
		case NamedFields:
			refs := make([]Declaration, 0, len(f))
			for _, nf := range f {
				refs = append(refs, nf.Declaration)
			}
			return refs
		case UnnamedFields:
			return f
		}
	}
	return nil
}
