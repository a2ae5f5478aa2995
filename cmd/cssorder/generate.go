package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssorder"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Write the stylelint-order configuration",
	Long: `Build the order/order and order/properties-order rules and write them as
JSON, YAML or an ES module. Without --output the configuration goes to stdout.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd.Flags())
}

// addGenerateFlags registers the generate flags; the root command shares them
// because it runs generate by default.
func addGenerateFlags(f *pflag.FlagSet) {
	f.StringP("format", "f", "", "Output format: json|yaml|js (default: from --output, else json)")
	f.StringP("output", "o", "", "Output file (default: stdout)")
	f.String("empty-line-before", cssorder.EmptyLineAlways, "Empty line before each group: always|never|threshold")
	f.Bool("no-empty-line-between", true, "Forbid empty lines within a group")
	f.String("unspecified", cssorder.UnspecifiedBottomAlphabetical, "Placement of unlisted properties: top|bottom|bottomAlphabetical|ignore")
	f.String("empty-line-before-unspecified", cssorder.EmptyLineAlways, "Empty line before unlisted properties: always|never|threshold")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := buildStylelintConfig()
	if err != nil {
		return err
	}

	output := getStringWithFallback("output", "generate.output", "")
	format, err := cssorder.ParseFormat(resolveFormatName(
		getStringWithFallback("format", "generate.format", ""), output))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := cssorder.Write(&buf, cfg, format); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logger.Debug("built configuration",
		"groups", len(cfg.Properties), "matchers", len(cfg.Order), "format", format)

	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil { // #nosec G306 - config files are meant to be shared
		return fmt.Errorf("writing %s: %w", output, err)
	}

	logger.Info("wrote stylelint config", "file", output, "format", format)
	return nil
}

// resolveFormatName falls back to the output file extension when no
// format is configured.
func resolveFormatName(name, output string) string {
	if name != "" || output == "" {
		return name
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".yaml", ".yml":
		return string(cssorder.FormatYAML)
	case ".js", ".mjs":
		return string(cssorder.FormatJS)
	}
	return string(cssorder.FormatJSON)
}
