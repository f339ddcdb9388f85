package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validate"
)

// fieldRules is the spec declared for one document field.
type fieldRules struct {
	Field string
	Spec  validate.Spec
}

// rulesFile maps field names to specs, in document order.
type rulesFile []fieldRules

func (r *rulesFile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping of fields", validate.ErrInvalidSpec, node.Line)
	}

	out := make(rulesFile, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var field string
		if err := node.Content[i].Decode(&field); err != nil {
			return err
		}
		var spec validate.Spec
		if err := node.Content[i+1].Decode(&spec); err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		out = append(out, fieldRules{Field: field, Spec: spec})
	}

	*r = out
	return nil
}

func parseRules(data []byte) (rulesFile, error) {
	var rules rulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// parseDocument decodes a YAML or JSON object.
func parseDocument(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
