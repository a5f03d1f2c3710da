package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"zexplorer/internal/transform"
)

// ErrFieldMappingNotMap is returned when field_mapping is not a mapping.
var ErrFieldMappingNotMap = errors.New("transform.field_mapping must be a mapping of old key to new key")

// FieldMapping is an ordered list of renames. It decodes from a YAML (or
// JSON) mapping and keeps the order the pairs were written in, since one
// rename may feed the next.
type FieldMapping []transform.Rename

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *FieldMapping) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w (line %d)", ErrFieldMappingNotMap, node.Line)
	}

	out := make(FieldMapping, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var from, to string

		if err := node.Content[i].Decode(&from); err != nil {
			return fmt.Errorf("field_mapping key at line %d: %w", node.Content[i].Line, err)
		}

		if err := node.Content[i+1].Decode(&to); err != nil {
			return fmt.Errorf("field_mapping value for %q: %w", from, err)
		}

		out = append(out, transform.Rename{From: from, To: to})
	}

	*m = out

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m FieldMapping) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, r := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.From},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.To},
		)
	}

	return node, nil
}
