package borshgen

import "fmt"

// Options controls where and how Generate writes one world.
type Options struct {
	// Dir is the output directory. When empty, the OUT_DIR environment
	// variable is consulted, then DefaultOutDir.
	Dir string
	// World names the output file (<world>.ts). Defaults to "world".
	World string
	// SkipFormat suppresses the post-generation formatter pass.
	SkipFormat bool
}

// Diag carries non-fatal warnings produced during generation.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
