package borshgen

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/nordwire/borshgen/internal/gen"
	"github.com/nordwire/borshgen/internal/resolve"
	"github.com/nordwire/borshgen/schema"
)

const (
	// EnvOutDir selects the output directory when Options.Dir is empty.
	EnvOutDir = "OUT_DIR"
	// DefaultOutDir is the fallback when neither Options.Dir nor
	// EnvOutDir is set.
	DefaultOutDir = "outdir"
)

// fmtBinary is the external formatter launched after generation. A
// package variable so tests can point it elsewhere.
var fmtBinary = "deno"

// Render validates c, resolves its world and renders the TypeScript
// source without touching the filesystem.
func Render(c *schema.Container) ([]byte, error) {
	world, err := buildWorld(c)
	if err != nil {
		return nil, err
	}
	logTable(world)
	return gen.TypeScript{}.Render(world.Table.Entries())
}

// Inspect resolves c and reports the world table as JSON, one entry
// per declaration the generated code would carry.
func Inspect(c *schema.Container) ([]byte, error) {
	world, err := buildWorld(c)
	if err != nil {
		return nil, err
	}
	return gen.JSON{}.Render(world.Table.Entries())
}

func buildWorld(c *schema.Container) (*resolve.World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	world, err := resolve.BuildWorld(c)
	if err != nil {
		return nil, fromResolve(err)
	}
	return world, nil
}

// Generate renders c and writes <world>.ts into the output directory,
// replacing any stale file from an earlier run. The formatter pass is
// launched without waiting for it; a missing formatter binary is the
// one non-fatal condition and surfaces through Diag.
func Generate(c *schema.Container, opts Options) (string, Diag, error) {
	d := &simpleDiag{}
	src, err := Render(c)
	if err != nil {
		return "", d, err
	}

	dir := outputDir(opts)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", d, fmt.Errorf("borshgen: creating output dir: %w", err)
	}
	world := opts.World
	if world == "" {
		world = "world"
	}
	path := filepath.Join(dir, world+gen.TypeScript{}.FileExtension())
	if err := writeExclusive(path, src); err != nil {
		return "", d, err
	}

	if !opts.SkipFormat {
		if err := launchFormatter(dir, d); err != nil {
			return "", d, err
		}
	}
	slog.Debug("world generated", "world", world, "path", path)
	return path, d, nil
}

func outputDir(opts Options) string {
	if opts.Dir != "" {
		return opts.Dir
	}
	if dir := os.Getenv(EnvOutDir); dir != "" {
		return dir
	}
	return DefaultOutDir
}

// writeExclusive replaces path in two steps: delete the stale file,
// then create exclusively. A file surviving the delete fails the
// create instead of being silently truncated mid-run.
func writeExclusive(path string, data []byte) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("borshgen: removing stale %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("borshgen: creating %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("borshgen: writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("borshgen: writing %s: %w", path, err)
	}
	return nil
}

// launchFormatter fires the external formatter against dir. The exit
// status is intentionally unobserved.
func launchFormatter(dir string, d *simpleDiag) error {
	cmd := exec.Command(fmtBinary, "fmt", dir)
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			d.warnf("formatter %q not found in PATH; generated output is left unformatted", fmtBinary)
			slog.Warn("formatter not found", "binary", fmtBinary)
			return nil
		}
		return fmt.Errorf("borshgen: launching formatter: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// logTable dumps the resolved table at debug level, one line per
// entry in insertion order.
func logTable(world *resolve.World) {
	for _, e := range world.Table.Entries() {
		slog.Debug("resolved declaration",
			"declaration", e.Declaration,
			"target", fmt.Sprintf("%T", e.Target),
			"display", e.Target.DisplayName(),
		)
	}
}
