package schema_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/nordwire/borshgen/schema"
)

const containerJSON = `{
  "declaration": "(Action,)",
  "definitions": {
    "(Action,)": {"tuple": {"elements": ["Action"]}},
    "u8":  {"primitive": {"size": 1}},
    "u32": {"primitive": {"size": 4}},
    "u64": {"primitive": {"size": 8}},
    "AccountId": {"sequence": {"length_width": 0, "length_range": {"start": 32, "end": 32}, "elements": "u8"}},
    "Memo": {"sequence": {"length_width": 4, "length_range": {"start": 0, "end": 4294967295}, "elements": "u8"}},
    "Kind": {"enum": {"tag_width": 1, "variants": [
      {"discriminant": 0, "name": "Noop", "declaration": "KindNoop"},
      {"discriminant": 1, "name": "Transfer", "declaration": "KindTransfer"}
    ]}},
    "KindNoop": {"struct": {}},
    "KindTransfer": {"struct": {"unnamed": ["u64"]}},
    "Action": {"struct": {"named": [
      {"name": "nonce", "declaration": "u64"},
      {"name": "kind", "declaration": "Kind"},
      {"name": "memo", "declaration": "Option<u32>"}
    ]}}
  }
}`

func TestParseContainer_AllDefinitionKinds(t *testing.T) {
	c, err := schema.ParseContainer([]byte(containerJSON))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if c.Root() != "(Action,)" {
		t.Fatalf("Root() = %q", c.Root())
	}
	if c.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", c.Len())
	}

	want := map[string]schema.Definition{
		"(Action,)": schema.Tuple{Elements: []schema.Declaration{"Action"}},
		"u64":       schema.Primitive{Size: 8},
		"AccountId": schema.Sequence{LengthRange: schema.Range{Start: 32, End: 32}, Elements: "u8"},
		"Memo":      schema.Sequence{LengthWidth: 4, LengthRange: schema.Range{End: 4294967295}, Elements: "u8"},
		"Kind": schema.Enum{TagWidth: 1, Variants: []schema.EnumVariant{
			{Discriminant: 0, Name: "Noop", Declaration: "KindNoop"},
			{Discriminant: 1, Name: "Transfer", Declaration: "KindTransfer"},
		}},
		"KindNoop":     schema.Struct{Fields: schema.EmptyFields{}},
		"KindTransfer": schema.Struct{Fields: schema.UnnamedFields{"u64"}},
		"Action": schema.Struct{Fields: schema.NamedFields{
			{Name: "nonce", Declaration: "u64"},
			{Name: "kind", Declaration: "Kind"},
			{Name: "memo", Declaration: "Option<u32>"},
		}},
	}
	for decl, wantDef := range want {
		got, ok := c.Definition(decl)
		if !ok {
			t.Fatalf("definition %q missing", decl)
		}
		if !reflect.DeepEqual(got, wantDef) {
			t.Fatalf("definition %q = %#v, want %#v", decl, got, wantDef)
		}
	}

	if err := c.Validate(); err != nil {
		t.Fatalf("decoded container should validate: %v", err)
	}
}

func TestParseContainer_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "invalid json",
			in:   `{"declaration": "x",`,
			want: "invalid JSON",
		},
		{
			name: "missing root",
			in:   `{"definitions": {}}`,
			want: "missing root declaration",
		},
		{
			name: "no branch set",
			in:   `{"declaration": "x", "definitions": {"x": {}}}`,
			want: "exactly one of",
		},
		{
			name: "two branches set",
			in:   `{"declaration": "x", "definitions": {"x": {"primitive": {"size": 1}, "tuple": {"elements": []}}}}`,
			want: "exactly one of",
		},
		{
			name: "named and unnamed",
			in:   `{"declaration": "x", "definitions": {"x": {"struct": {"named": [{"name": "a", "declaration": "u8"}], "unnamed": ["u8"]}}}}`,
			want: "both named and unnamed",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schema.ParseContainer([]byte(tc.in))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFile_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "world.json")
	if err := os.WriteFile(jsonPath, []byte(containerJSON), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := schema.LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if c.Root() != "(Action,)" {
		t.Fatalf("json root = %q", c.Root())
	}

	yamlPath := filepath.Join(dir, "world.yaml")
	yamlDoc := "declaration: Action\ndefinitions:\n  u8:\n    primitive:\n      size: 1\n  Action:\n    struct:\n      named:\n        - name: tag\n          declaration: u8\n"
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err = schema.LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if c.Root() != "Action" {
		t.Fatalf("yaml root = %q", c.Root())
	}

	if _, err := schema.LoadFile(filepath.Join(dir, "absent.json")); err == nil {
		t.Fatalf("expected read error for missing file")
	}
}
