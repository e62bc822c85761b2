package gen

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/nordwire/borshgen/internal/ir"
)

// reportEntry is one resolved declaration in the JSON report. Keep this
// struct small and extend incrementally.
type reportEntry struct {
	Declaration string          `json:"declaration"`
	Kind        string          `json:"kind"`
	Display     string          `json:"display"`
	Borsh       string          `json:"borsh,omitempty"`
	Elem        string          `json:"elem,omitempty"`
	Fields      []reportField   `json:"fields,omitempty"`
	Variants    []reportVariant `json:"variants,omitempty"`
}

type reportField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type reportVariant struct {
	Symbol       string `json:"symbol"`
	Discriminant uint8  `json:"discriminant"`
	Payload      string `json:"payload,omitempty"`
}

// JSON renders the resolved world as a JSON report, one entry per
// retained declaration. It backs the inspect subcommand.
type JSON struct{}

func (JSON) Language() string { return "json" }

func (JSON) FileExtension() string { return ".json" }

func (JSON) Render(entries []ir.Entry) ([]byte, error) {
	report := make([]reportEntry, 0, len(entries))
	for _, e := range entries {
		re := reportEntry{Declaration: e.Declaration, Display: e.Target.DisplayName()}
		switch t := e.Target.(type) {
		case *ir.WellKnown:
			re.Kind = "wellknown"
			re.Borsh = t.Borsh
		case *ir.PlainString:
			re.Kind = "string"
		case *ir.Record:
			re.Kind = "record"
			re.Fields = make([]reportField, 0, len(t.Fields))
			for _, f := range t.Fields {
				re.Fields = append(re.Fields, reportField{Name: f.Name, Type: f.Target.DisplayName()})
			}
		case *ir.Alias:
			re.Kind = "alias"
			re.Elem = t.Elem.DisplayName()
		case *ir.Union:
			re.Kind = "union"
			re.Variants = make([]reportVariant, 0, len(t.Variants))
			for _, v := range t.Variants {
				rv := reportVariant{Symbol: v.Symbol, Discriminant: v.Discriminant}
				if v.Inner != nil {
					rv.Payload = v.Inner.DisplayName()
				}
				re.Variants = append(re.Variants, rv)
			}
		default:
			return nil, fmt.Errorf("gen: no json rendering for %T (%s)", e.Target, e.Declaration)
		}
		report = append(report, re)
	}
	return json.MarshalIndent(report, "", "  ")
}
