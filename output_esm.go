package cssorder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteJS writes cfg as an ES module. Selectors become regex literals.
func WriteJS(w io.Writer, cfg Config) error {
	data, err := marshalJSON(cfg)
	if err != nil {
		return err
	}

	body := strings.TrimRight(string(data), "\n")
	for _, m := range cfg.Order {
		if m.Selector == nil {
			continue
		}
		quoted, err := jsonString(m.Selector.String())
		if err != nil {
			return err
		}
		body = strings.ReplaceAll(body,
			`"selector": `+quoted,
			`"selector": `+regexLiteral(m.Selector.String()))
	}

	if _, err := fmt.Fprintf(w, "export default %s;\n", body); err != nil {
		return fmt.Errorf("write module: %w", err)
	}
	return nil
}

// jsonString quotes s the way WriteJSON does
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// regexLiteral renders a RegExp source as /source/
func regexLiteral(source string) string {
	var b strings.Builder
	b.WriteByte('/')
	escaped := false
	for _, r := range source {
		if r == '/' && !escaped {
			b.WriteByte('\\')
		}
		escaped = r == '\\' && !escaped
		b.WriteRune(r)
	}
	b.WriteByte('/')
	return b.String()
}
