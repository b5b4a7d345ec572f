package cosy

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/yesagainivan/cosy/gomap"
	"github.com/yesagainivan/cosy/ir"
)

// ToYAML renders node as YAML. Comments do not survive.
func ToYAML(node *ir.Node) ([]byte, error) {
	data, err := yaml.Marshal(gomap.ToAny(node))
	if err != nil {
		return nil, fmt.Errorf("to yaml: %w", err)
	}
	return data, nil
}

// ToJSON renders node as indented JSON. Comments do not survive.
func ToJSON(node *ir.Node) ([]byte, error) {
	data, err := json.MarshalIndent(gomap.ToAny(node), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("to json: %w", err)
	}
	return append(data, '\n'), nil
}

// FromYAML parses YAML into a value tree.
func FromYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("from yaml: %w", err)
	}
	return gomap.FromAny(v)
}
