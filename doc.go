package borshgen

// Package borshgen provides:
//
// - Translation of borsh schema containers into TypeScript declarations
//   with @dao-xyz/borsh field annotations (Render/Generate)
// - A JSON report of the resolved world for tooling (Inspect)
// - A closed, E-numbered error taxonomy for schema shapes that do not
//   map onto the target type system (Error/IsCode)
// - Non-fatal diagnostics via Diag (today: a missing formatter binary)
//
// Design policy:
// - Keep only public APIs in the root package; put the resolver,
//   renderer and other implementations under internal/.
// - Place the schema model under schema/ and the CLI under
//   cmd/borshgen.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	c, err := schema.LoadFile("nord.json")
//	path, diag, err := borshgen.Generate(c, borshgen.Options{World: "nord"})
//
//	src, err := borshgen.Render(c)
