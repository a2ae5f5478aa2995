package cssorder

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownFormat is returned for output formats other than json, yaml and js.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is the serialization of a generated Config.
type Format string

const (
	// FormatJSON writes a .stylelintrc.json document
	FormatJSON Format = "json"
	// FormatYAML writes a .stylelintrc.yaml document
	FormatYAML Format = "yaml"
	// FormatJS writes an ES module with a default export
	FormatJS Format = "js"
)

// ParseFormat resolves a format name. An empty name selects JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "js", "mjs", "esm":
		return FormatJS, nil
	}
	return "", fmt.Errorf("%w %q (want json, yaml or js)", ErrUnknownFormat, name)
}

// DefaultFilename returns the file stylelint looks up for the format.
func (f Format) DefaultFilename() string {
	switch f {
	case FormatYAML:
		return ".stylelintrc.yaml"
	case FormatJS:
		return "stylelint.config.mjs"
	default:
		return ".stylelintrc.json"
	}
}

// Write serializes cfg to w in the given format.
func Write(w io.Writer, cfg Config, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, cfg)
	case FormatYAML:
		return WriteYAML(w, cfg)
	case FormatJS:
		return WriteJS(w, cfg)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}
