package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatTable maps format names to label sizes while preserving the
// order in which the YAML document declared them. Declared order is what
// makes the "first available format" fallback deterministic; plain Go
// maps (and yaml.v3's map decoding) would not give us that.
type FormatTable struct {
	names []string
	specs map[string]FormatSpec
}

// Set adds or replaces a format, appending new names at the end.
func (t *FormatTable) Set(name string, spec FormatSpec) {
	key := normalizeFormat(name)
	if t.specs == nil {
		t.specs = map[string]FormatSpec{}
	}
	if _, ok := t.specs[key]; !ok {
		t.names = append(t.names, key)
	}
	t.specs[key] = spec
}

// Get looks a format up by name. Lookup is case-insensitive and ignores
// surrounding whitespace, matching how the flat files spell formats.
func (t *FormatTable) Get(name string) (FormatSpec, bool) {
	spec, ok := t.specs[normalizeFormat(name)]
	return spec, ok
}

// First returns the first declared format.
func (t *FormatTable) First() (string, FormatSpec, bool) {
	if len(t.names) == 0 {
		return "", FormatSpec{}, false
	}
	name := t.names[0]
	return name, t.specs[name], true
}

// Names returns the format names in declared order.
func (t *FormatTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len reports the number of declared formats.
func (t *FormatTable) Len() int { return len(t.names) }

func (t *FormatTable) canonical(name string) string {
	key := normalizeFormat(name)
	if _, ok := t.specs[key]; ok {
		return key
	}
	return name
}

func normalizeFormat(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// UnmarshalYAML decodes a YAML mapping node pairwise so that declared
// order survives.
func (t *FormatTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("label_sizes: expected a mapping, got %s", node.Tag)
	}
	t.names = nil
	t.specs = map[string]FormatSpec{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var spec FormatSpec
		if err := valNode.Decode(&spec); err != nil {
			return fmt.Errorf("label_sizes[%s]: %w", keyNode.Value, err)
		}
		if spec.WidthMM <= 0 || spec.HeightMM <= 0 {
			return fmt.Errorf("label_sizes[%s]: width_mm and height_mm must be positive", keyNode.Value)
		}
		t.Set(keyNode.Value, spec)
	}
	return nil
}

// MarshalYAML emits the table as a mapping in declared order.
func (t FormatTable) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range t.names {
		var keyNode, valNode yaml.Node
		keyNode.SetString(name)
		if err := valNode.Encode(t.specs[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &keyNode, &valNode)
	}
	return node, nil
}
