package cssorder

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes cfg as a stylelint YAML config. Keys keep the JSON order.
func WriteYAML(w io.Writer, cfg Config) error {
	data, err := marshalJSON(cfg)
	if err != nil {
		return err
	}

	// JSON is a YAML subset; decoding into a node tree preserves key order.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode config document: %w", err)
	}
	resetStyle(&doc)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}

// resetStyle drops the flow and quoting styles inherited from JSON
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
