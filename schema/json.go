package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

// Wire form of a container. Exactly one definition branch must be set
// per entry; the struct branch distinguishes its three layouts by
// which field list is present.
type rawContainer struct {
	Declaration string            `json:"declaration"`
	Definitions map[string]rawDef `json:"definitions"`
}

type rawDef struct {
	Primitive *rawPrimitive `json:"primitive,omitempty"`
	Sequence  *rawSequence  `json:"sequence,omitempty"`
	Tuple     *rawTuple     `json:"tuple,omitempty"`
	Enum      *rawEnum      `json:"enum,omitempty"`
	Struct    *rawStruct    `json:"struct,omitempty"`
}

type rawPrimitive struct {
	Size uint8 `json:"size"`
}

type rawRange struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
}

type rawSequence struct {
	LengthWidth uint8    `json:"length_width"`
	LengthRange rawRange `json:"length_range"`
	Elements    string   `json:"elements"`
}

type rawTuple struct {
	Elements []string `json:"elements"`
}

type rawEnumVariant struct {
	Discriminant int64  `json:"discriminant"`
	Name         string `json:"name"`
	Declaration  string `json:"declaration"`
}

type rawEnum struct {
	TagWidth uint8            `json:"tag_width"`
	Variants []rawEnumVariant `json:"variants"`
}

type rawNamedField struct {
	Name        string `json:"name"`
	Declaration string `json:"declaration"`
}

type rawStruct struct {
	Named   []rawNamedField `json:"named,omitempty"`
	Unnamed []string        `json:"unnamed,omitempty"`
}

// ParseContainer decodes the JSON wire form of a schema container. The
// result is not validated; callers run Validate before handing it to
// the generator.
func ParseContainer(data []byte) (*Container, error) {
	var raw rawContainer
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: invalid JSON: %w", err)
	}
	if raw.Declaration == "" {
		return nil, fmt.Errorf("schema: missing root declaration")
	}
	c := NewContainer(raw.Declaration)
	for decl, rd := range raw.Definitions {
		def, err := rd.definition()
		if err != nil {
			return nil, fmt.Errorf("schema: definition %q: %w", decl, err)
		}
		c.Define(decl, def)
	}
	return c, nil
}

// LoadFile reads a container from path, decoding YAML when the file
// extension is .yaml or .yml and JSON otherwise.
func LoadFile(path string) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseContainerYAML(data)
	default:
		return ParseContainer(data)
	}
}

func (rd rawDef) definition() (Definition, error) {
	set := 0
	for _, present := range []bool{
		rd.Primitive != nil,
		rd.Sequence != nil,
		rd.Tuple != nil,
		rd.Enum != nil,
		rd.Struct != nil,
	} {
		if present {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("want exactly one of primitive/sequence/tuple/enum/struct, got %d", set)
	}
	switch {
	case rd.Primitive != nil:
		return Primitive{Size: rd.Primitive.Size}, nil
	case rd.Sequence != nil:
		return Sequence{
			LengthWidth: rd.Sequence.LengthWidth,
			LengthRange: Range{Start: rd.Sequence.LengthRange.Start, End: rd.Sequence.LengthRange.End},
			Elements:    rd.Sequence.Elements,
		}, nil
	case rd.Tuple != nil:
		return Tuple{Elements: append([]Declaration(nil), rd.Tuple.Elements...)}, nil
	case rd.Enum != nil:
		variants := make([]EnumVariant, 0, len(rd.Enum.Variants))
		for _, v := range rd.Enum.Variants {
			variants = append(variants, EnumVariant{
				Discriminant: v.Discriminant,
				Name:         v.Name,
				Declaration:  v.Declaration,
			})
		}
		return Enum{TagWidth: rd.Enum.TagWidth, Variants: variants}, nil
	default:
		return rd.Struct.definition()
	}
}

func (rs *rawStruct) definition() (Definition, error) {
	if len(rs.Named) > 0 && len(rs.Unnamed) > 0 {
		return nil, fmt.Errorf("struct cannot carry both named and unnamed fields")
	}
	switch {
	case len(rs.Named) > 0:
		fields := make(NamedFields, 0, len(rs.Named))
		for _, f := range rs.Named {
			fields = append(fields, NamedField{Name: f.Name, Declaration: f.Declaration})
		}
		return Struct{Fields: fields}, nil
	case len(rs.Unnamed) > 0:
		return Struct{Fields: UnnamedFields(append([]Declaration(nil), rs.Unnamed...))}, nil
	default:
		// No field list at all marks a unit struct.
		return Struct{Fields: EmptyFields{}}, nil
	}
}
