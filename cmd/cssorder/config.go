package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssorder"
	"github.com/yacobolo/cssorder/internal/verify"
)

const defaultConfigPath = ".cssorder.yaml"

var k = koanf.New(".")

// defaultVerifyPaths are checked when neither arguments nor verify.paths are given
var defaultVerifyPaths = []string{"**/*.{css,scss,less}"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags, only those set on the command line. Flag defaults live
	// in the build* fallbacks so they never shadow file or env values.
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, changedFlag(cmd.Flags())), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// changedFlag skips flags the user did not set
func changedFlag(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSORDER_* prefix)
	if err := k.Load(env.Provider("CSSORDER_", ".", func(s string) string {
		// CSSORDER_GENERATE_FORMAT -> generate.format
		// CSSORDER_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSORDER_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildOptions constructs the library's Options from koanf state.
// Validation happens in cssorder.BuildConfig.
func buildOptions() cssorder.Options {
	defaults := cssorder.DefaultOptions()
	return cssorder.Options{
		EmptyLineBefore: getStringWithFallback("empty-line-before", "generate.empty-line-before",
			defaults.EmptyLineBefore),
		NoEmptyLineBetween: getBoolWithFallback("no-empty-line-between", "generate.no-empty-line-between",
			defaults.NoEmptyLineBetween),
		Unspecified: getStringWithFallback("unspecified", "generate.unspecified",
			defaults.Unspecified),
		EmptyLineBeforeUnspecified: getStringWithFallback("empty-line-before-unspecified", "generate.empty-line-before-unspecified",
			defaults.EmptyLineBeforeUnspecified),
	}
}

// buildStylelintConfig builds the stylelint configuration from koanf state.
func buildStylelintConfig() (cssorder.Config, error) {
	cfg, err := cssorder.BuildConfig(cssorder.DefaultTable(), buildOptions())
	if err != nil {
		return cssorder.Config{}, fmt.Errorf("building stylelint config: %w", err)
	}
	return cfg, nil
}

// buildVerifyConfig constructs the verification Config from koanf state.
// Positional arguments take precedence over verify.paths.
func buildVerifyConfig(args []string, stylelint cssorder.Config) verify.Config {
	var paths []string
	switch {
	case len(args) > 0:
		paths = args
	case len(k.Strings("verify.paths")) > 0:
		paths = k.Strings("verify.paths")
	default:
		paths = defaultVerifyPaths
	}

	return verify.Config{
		Paths:            paths,
		GitIgnore:        getStringWithFallback("gitignore", "verify.gitignore", ".gitignore"),
		Stylelint:        stylelint,
		PrintIssuedLines: getBoolWithFallback("print-lines", "verify.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "verify.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
