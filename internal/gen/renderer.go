// Package gen renders a resolved table into target-language source.
// Rendering strategies live behind Renderer so resolution stays
// decoupled from any one language convention.
package gen

import "github.com/nordwire/borshgen/internal/ir"

// Renderer turns a table snapshot into one source file.
type Renderer interface {
	// Render writes one declaration block per renderable entry, in the
	// order given. Entries that render inline at their reference sites
	// produce nothing.
	Render(entries []ir.Entry) ([]byte, error)

	// Language names the target language (e.g. "typescript").
	Language() string

	// FileExtension is the extension for generated files, dot included.
	FileExtension() string
}
