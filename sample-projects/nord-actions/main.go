package main

import (
	"flag"
	"fmt"
	"os"

	borshgen "github.com/nordwire/borshgen"
	"github.com/nordwire/borshgen/schema"
)

// actionsContainer describes a small on-chain action vocabulary the way
// a contract build would hand it over: every reachable declaration is
// defined, the root is the world tuple.
func actionsContainer() *schema.Container {
	c := schema.NewContainer("(ActionKind, Action)")
	c.Define("(ActionKind, Action)", schema.Tuple{Elements: []schema.Declaration{"ActionKind", "Action"}})
	c.Define("u8", schema.Primitive{Size: 1})
	c.Define("u32", schema.Primitive{Size: 4})
	c.Define("u64", schema.Primitive{Size: 8})
	c.Define("AccountId", schema.Sequence{LengthRange: schema.Range{Start: 32, End: 32}, Elements: "u8"})
	c.Define("Transfer", schema.Struct{Fields: schema.NamedFields{
		{Name: "to", Declaration: "AccountId"},
		{Name: "amount", Declaration: "u64"},
	}})
	c.Define("ActionKindNoop", schema.Struct{Fields: schema.EmptyFields{}})
	c.Define("ActionKindTransfer", schema.Struct{Fields: schema.UnnamedFields{"Transfer"}})
	c.Define("ActionKind", schema.Enum{TagWidth: 1, Variants: []schema.EnumVariant{
		{Discriminant: 0, Name: "Noop", Declaration: "ActionKindNoop"},
		{Discriminant: 1, Name: "Transfer", Declaration: "ActionKindTransfer"},
	}})
	c.Define("Action", schema.Struct{Fields: schema.NamedFields{
		{Name: "nonce", Declaration: "u64"},
		{Name: "kind", Declaration: "ActionKind"},
		{Name: "memo", Declaration: "Option<u32>"},
	}})
	return c
}

func main() {
	out := flag.String("o", "", "output directory (defaults to $OUT_DIR, then ./outdir)")
	noFmt := flag.Bool("no-fmt", false, "skip the deno fmt pass over the output")
	flag.Parse()

	path, diag, err := borshgen.Generate(actionsContainer(), borshgen.Options{
		Dir:        *out,
		World:      "actions",
		SkipFormat: *noFmt,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ generation failed: %v\n", err)
		os.Exit(1)
	}
	for _, w := range diag.Warnings() {
		fmt.Println("⚠️  " + w)
	}
	fmt.Println("✅ generated " + path)
}
