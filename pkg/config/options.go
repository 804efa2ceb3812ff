package config

import (
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-cdhit/pkg/cdhit"
)

// OptionMap is a YAML mapping of flags to values decoded in document order.
// A null value (`-g: ~` or `-g:`) becomes a key-only flag.
type OptionMap struct {
	*cdhit.Options
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *OptionMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: options must be a mapping", node.Line)
	}

	opts := &cdhit.Options{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		v, err := decodeValue(val)
		if err != nil {
			return fmt.Errorf("line %d: option %q: %w", val.Line, key.Value, err)
		}
		opts.Set(key.Value, v)
	}
	m.Options = opts
	return nil
}

func decodeValue(node *yaml.Node) (cdhit.Value, error) {
	if node.Kind != yaml.ScalarNode {
		return cdhit.Value{}, fmt.Errorf("value must be a scalar")
	}

	switch node.ShortTag() {
	case "!!null":
		return cdhit.Absent(), nil
	case "!!int":
		// YAML 1.1 reads 016000 as octal and accepts 1_0 and 0x1F. Only
		// canonical decimals are decoded; anything else is passed through as
		// written.
		i, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil || strconv.FormatInt(i, 10) != node.Value {
			return cdhit.String(node.Value), nil
		}
		return cdhit.Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil || strconv.FormatFloat(f, 'f', -1, 64) != node.Value {
			return cdhit.String(node.Value), nil
		}
		return cdhit.Float(f), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return cdhit.Value{}, err
		}
		return cdhit.Bool(b), nil
	default:
		return cdhit.String(node.Value), nil
	}
}

// JSONSchema describes OptionMap for the generated configuration schema.
func (OptionMap) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		AdditionalProperties: &jsonschema.Schema{
			AnyOf: []*jsonschema.Schema{
				{Type: "string"},
				{Type: "number"},
				{Type: "boolean"},
				{Type: "null"},
			},
		},
	}
}
