package resolve

import (
	"fmt"

	"github.com/nordwire/borshgen/internal/ir"
	"github.com/nordwire/borshgen/schema"
)

// World is one resolved output unit: the root tuple's targets plus the
// table every declaration reachable from them was memoized into.
type World struct {
	Roots []ir.Target
	Table *ir.Table
}

// BuildWorld resolves every element of the container's root tuple as
// an independent top-level type. All elements share one table, so
// declarations reachable from several roots resolve once.
func BuildWorld(c *schema.Container) (*World, error) {
	root := c.Root()
	def, ok := c.Definition(root)
	if !ok {
		return nil, fmt.Errorf("resolve: world %q has no definition", root)
	}
	tuple, ok := def.(schema.Tuple)
	if !ok {
		return nil, fmt.Errorf("resolve: world declaration %q must be a tuple", root)
	}
	r := NewResolver(c)
	roots := make([]ir.Target, 0, len(tuple.Elements))
	for _, element := range tuple.Elements {
		target, err := r.Resolve(element, ParentUnspecified)
		if err != nil {
			return nil, err
		}
		roots = append(roots, target)
	}
	return &World{Roots: roots, Table: r.table}, nil
}
