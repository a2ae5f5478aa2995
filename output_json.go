package cssorder

import (
	"bytes"
	"encoding/json"
	"io"
)

// jsonConfig is the stylelint configuration document
type jsonConfig struct {
	Plugins []string  `json:"plugins"`
	Rules   jsonRules `json:"rules"`
}

// jsonRules holds the primary and secondary options of both order rules
type jsonRules struct {
	Order           []any `json:"order/order"`
	PropertiesOrder []any `json:"order/properties-order"`
}

// jsonMatcher is a structured order/order entry
type jsonMatcher struct {
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
	HasBlock bool   `json:"hasBlock,omitempty"`
	Selector string `json:"selector,omitempty"`
}

// jsonPropertyGroup is one order/properties-order group
type jsonPropertyGroup struct {
	GroupName          string   `json:"groupName"`
	Properties         []string `json:"properties"`
	EmptyLineBefore    string   `json:"emptyLineBefore,omitempty"`
	NoEmptyLineBetween bool     `json:"noEmptyLineBetween,omitempty"`
}

// jsonPropertiesOptions is the secondary option of order/properties-order
type jsonPropertiesOptions struct {
	Unspecified                string `json:"unspecified"`
	EmptyLineBeforeUnspecified string `json:"emptyLineBeforeUnspecified,omitempty"`
}

// WriteJSON writes cfg as an indented stylelint JSON config.
func WriteJSON(w io.Writer, cfg Config) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(buildJSONConfig(cfg))
}

// marshalJSON returns the WriteJSON document as bytes
func marshalJSON(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildJSONConfig converts Config to the document layout stylelint expects
func buildJSONConfig(cfg Config) jsonConfig {
	order := make([]any, len(cfg.Order))
	for i, m := range cfg.Order {
		order[i] = buildJSONMatcher(m)
	}

	groups := make([]jsonPropertyGroup, len(cfg.Properties))
	for i, g := range cfg.Properties {
		props := g.Properties
		if props == nil {
			props = []string{}
		}
		groups[i] = jsonPropertyGroup{
			GroupName:          g.GroupName,
			Properties:         props,
			EmptyLineBefore:    g.EmptyLineBefore,
			NoEmptyLineBetween: g.NoEmptyLineBetween,
		}
	}

	plugins := cfg.Plugins
	if plugins == nil {
		plugins = []string{}
	}

	return jsonConfig{
		Plugins: plugins,
		Rules: jsonRules{
			Order: []any{order},
			PropertiesOrder: []any{
				groups,
				jsonPropertiesOptions{
					Unspecified:                cfg.Unspecified,
					EmptyLineBeforeUnspecified: cfg.EmptyLineBeforeUnspecified,
				},
			},
		},
	}
}

func buildJSONMatcher(m RuleMatcher) any {
	if m.IsKeyword() {
		return string(m.Keyword)
	}

	jm := jsonMatcher{
		Type:     string(m.Type),
		Name:     m.Name,
		HasBlock: m.HasBlock,
	}
	if m.Selector != nil {
		jm.Selector = m.Selector.String()
	}
	return jm
}
