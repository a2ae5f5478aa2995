package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssorder/internal/verify"
)

// errIssuesFound fails the command after the report has been written
var errIssuesFound = errors.New("ordering issues found")

var verifyCmd = &cobra.Command{
	Use:   "verify [PATTERN...]",
	Short: "Check stylesheets against the generated configuration",
	Long: `Check CSS, SCSS and Less files against the order/order and
order/properties-order rules and report what stylelint would reorder.
Files are never modified. Exits 1 when any issue is found.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runVerify,
}

func init() {
	f := verifyCmd.Flags()
	addGenerateFlags(f)
	// the rules are checked in memory, nothing is written
	_ = f.MarkHidden("format")
	_ = f.MarkHidden("output")
	f.String("gitignore", ".gitignore", "Gitignore file used to skip relative paths")
	f.String("output-format", "", "Output format: issues|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (order/order) suffix on issues")
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	stylelint, err := buildStylelintConfig()
	if err != nil {
		return err
	}

	config := buildVerifyConfig(args, stylelint)
	config.Logger = logger

	result, err := verify.Run(config)
	if result == nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	if err != nil {
		logger.Error("some stylesheets could not be read", "err", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := verify.DetermineOutputFormat(getStringWithFallback("output-format", "verify.output-format", ""))
	if !quiet {
		if werr := verify.WriteOutput(cmd.OutOrStdout(), result, format, config); werr != nil {
			return werr
		}
	}

	logger.Debug("verification finished",
		"files", result.FilesScanned, "blocks", result.BlocksChecked, "issues", len(result.Issues))

	// unreadable files fail the run as well
	if result.ErrorCount > 0 || err != nil {
		return errIssuesFound
	}
	return nil
}
