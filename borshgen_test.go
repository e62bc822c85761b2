package borshgen_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	borshgen "github.com/nordwire/borshgen"
	"github.com/nordwire/borshgen/schema"
)

// exampleContainer builds a world with one record and one tagged
// union: StructY{id: u64, tag: Option<u8>} and EnumX{A, B(u32)}.
func exampleContainer(t *testing.T, roots ...string) *schema.Container {
	t.Helper()
	root := "(" + strings.Join(roots, ", ") + ")"
	c := schema.NewContainer(root)
	c.Define(root, schema.Tuple{Elements: roots})
	c.Define("u8", schema.Primitive{Size: 1})
	c.Define("u32", schema.Primitive{Size: 4})
	c.Define("u64", schema.Primitive{Size: 8})
	c.Define("StructY", schema.Struct{Fields: schema.NamedFields{
		{Name: "id", Declaration: "u64"},
		{Name: "tag", Declaration: "Option<u8>"},
	}})
	c.Define("EnumX", schema.Enum{TagWidth: 1, Variants: []schema.EnumVariant{
		{Discriminant: 0, Name: "A", Declaration: "EnumXA"},
		{Discriminant: 1, Name: "B", Declaration: "u32"},
	}})
	c.Define("EnumXA", schema.Struct{Fields: schema.EmptyFields{}})
	return c
}

const exampleRendered = `import { field, variant, option, fixedArray } from "@dao-xyz/borsh";

export class StructY {
  @field({ type: "u64" })
  id: bigint;

  @field({ type: option("u8") })
  tag: number | undefined;

  constructor(data: StructY) {
    Object.assign(this, data);
  }
}

@variant([0, 1])
export class EnumXEnum {}

@variant(0)
export class AVariant extends EnumXEnum {}

@variant(1)
export class BVariant extends EnumXEnum {
  @field({ type: "number" })
  _0: number;
}
`

func TestRender_EndToEnd(t *testing.T) {
	src, err := borshgen.Render(exampleContainer(t, "StructY", "EnumX"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(src) != exampleRendered {
		t.Fatalf("rendered output:\n%s\nwant:\n%s", src, exampleRendered)
	}
}

func TestRender_BlocksFollowResolutionOrder(t *testing.T) {
	src, err := borshgen.Render(exampleContainer(t, "EnumX", "StructY"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	union := strings.Index(string(src), "export class EnumXEnum")
	record := strings.Index(string(src), "export class StructY")
	if union < 0 || record < 0 {
		t.Fatalf("missing blocks:\n%s", src)
	}
	if union > record {
		t.Fatalf("first world root should be emitted first:\n%s", src)
	}
}

func TestRender_RejectsInvalidContainer(t *testing.T) {
	c := schema.NewContainer("Missing")
	if _, err := borshgen.Render(c); err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestInspect_ReportsResolvedWorld(t *testing.T) {
	out, err := borshgen.Inspect(exampleContainer(t, "StructY", "EnumX"))
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var report []struct {
		Declaration string `json:"declaration"`
		Kind        string `json:"kind"`
		Display     string `json:"display"`
	}
	if err := json.Unmarshal(out, &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	kinds := map[string]string{}
	displays := map[string]string{}
	for _, e := range report {
		kinds[e.Declaration] = e.Kind
		displays[e.Declaration] = e.Display
	}
	if kinds["StructY"] != "record" || kinds["EnumX"] != "union" {
		t.Fatalf("kinds = %v", kinds)
	}
	if displays["EnumX"] != "EnumXEnum" {
		t.Fatalf("displays = %v", displays)
	}
	if kinds["Option<u8>"] != "wellknown" {
		t.Fatalf("optional wrapper missing from report: %v", kinds)
	}
}

func TestGenerate_WritesWorldFile(t *testing.T) {
	dir := t.TempDir()
	c := exampleContainer(t, "StructY", "EnumX")
	path, diag, err := borshgen.Generate(c, borshgen.Options{Dir: dir, World: "nord", SkipFormat: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if path != filepath.Join(dir, "nord.ts") {
		t.Fatalf("path = %q", path)
	}
	if diag.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", diag.Warnings())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != exampleRendered {
		t.Fatalf("file content:\n%s", data)
	}
}

func TestGenerate_SafeRegeneration(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "nord.ts")
	if err := os.WriteFile(stale, []byte("// stale output\n"), 0o644); err != nil {
		t.Fatalf("seed stale: %v", err)
	}

	c := exampleContainer(t, "StructY", "EnumX")
	first, _, err := borshgen.Generate(c, borshgen.Options{Dir: dir, World: "nord", SkipFormat: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	a, _ := os.ReadFile(first)

	second, _, err := borshgen.Generate(c, borshgen.Options{Dir: dir, World: "nord", SkipFormat: true})
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	b, _ := os.ReadFile(second)

	if !bytes.Equal(a, b) {
		t.Fatalf("regeneration is not byte-identical")
	}
	if bytes.Contains(a, []byte("stale")) {
		t.Fatalf("stale content survived")
	}
}

func TestGenerate_FailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	c := schema.NewContainer("(Holder,)")
	c.Define("(Holder,)", schema.Tuple{Elements: []schema.Declaration{"Holder"}})
	c.Define("u32", schema.Primitive{Size: 4})
	c.Define("Pair", schema.Tuple{Elements: []schema.Declaration{"u32", "u32"}})
	c.Define("Holder", schema.Struct{Fields: schema.NamedFields{
		{Name: "pair", Declaration: "Pair"},
	}})

	_, _, err := borshgen.Generate(c, borshgen.Options{Dir: dir, World: "nord", SkipFormat: true})
	if err == nil {
		t.Fatalf("expected tuple failure")
	}
	if !borshgen.IsCode(err, borshgen.CodeBareTuple) {
		t.Fatalf("err = %v, want %s", err, borshgen.CodeBareTuple)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "nord.ts")); !os.IsNotExist(statErr) {
		t.Fatalf("failed generation left an output file")
	}
}

func TestGenerate_OutputDirFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(borshgen.EnvOutDir, dir)
	c := exampleContainer(t, "StructY", "EnumX")
	path, _, err := borshgen.Generate(c, borshgen.Options{SkipFormat: true})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// World name defaults when unset.
	if path != filepath.Join(dir, "world.ts") {
		t.Fatalf("path = %q", path)
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("running world: %w", &borshgen.Error{
		Code:        borshgen.CodeMultiField,
		Declaration: "Triple",
		Message:     "unnamed struct carries 3 fields, want exactly 1",
	})
	if !borshgen.IsCode(err, borshgen.CodeMultiField) {
		t.Fatalf("IsCode should unwrap")
	}
	if borshgen.IsCode(err, borshgen.CodeBareTuple) {
		t.Fatalf("IsCode matched the wrong code")
	}
	if borshgen.IsCode(nil, borshgen.CodeBareTuple) {
		t.Fatalf("IsCode(nil) = true")
	}
}

func TestErrorText(t *testing.T) {
	err := &borshgen.Error{Code: borshgen.CodeEmptyStruct, Declaration: "Nothing", Message: "unit structs have no encodable payload"}
	want := `borshgen: E0005 at "Nothing": unit structs have no encodable payload`
	if err.Error() != want {
		t.Fatalf("Error() = %q", err.Error())
	}
	if borshgen.CodeText(borshgen.CodeEmptyStruct) == "" {
		t.Fatalf("missing canonical text for %s", borshgen.CodeEmptyStruct)
	}
	if borshgen.CodeText("E9999") != "" {
		t.Fatalf("unknown codes should map to empty text")
	}
}
