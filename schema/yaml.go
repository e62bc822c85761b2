package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseContainerYAML decodes the YAML rendering of the container wire
// form. The document is normalized into JSON-shaped values first so
// both loaders accept exactly the same structure.
func ParseContainerYAML(data []byte) (*Container, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("schema: invalid YAML: %w", err)
	}
	buf, err := json.Marshal(normalizeYAML(node))
	if err != nil {
		return nil, fmt.Errorf("schema: normalize YAML: %w", err)
	}
	return ParseContainer(buf)
}

// normalizeYAML converts map[any]any trees produced by YAML decoding
// into map[string]any recursively, dropping non-string keys.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
