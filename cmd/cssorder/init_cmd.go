package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssorder.yaml config file",
	Long:  `Create a .cssorder.yaml configuration file in the current directory with the default settings.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil { // #nosec G306 - project config
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssorder configuration
# Docs: https://github.com/yacobolo/cssorder

# Shared settings
verbose: false
color: false

# Generation settings
generate:
  format: json                            # json | yaml | js
  output: .stylelintrc.json               # empty = stdout
  empty-line-before: always               # always | never | threshold
  no-empty-line-between: true
  unspecified: bottomAlphabetical         # top | bottom | bottomAlphabetical | ignore
  empty-line-before-unspecified: always   # always | never | threshold

# Verification settings
verify:
  paths:
    - "**/*.{css,scss,less}"
  gitignore: .gitignore
  output-format: issues                   # issues | json
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
