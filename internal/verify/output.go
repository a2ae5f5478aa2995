package verify

import (
	"fmt"
	"io"
	"strings"
)

// DetermineOutputFormat selects the report format from the flag value.
// Unknown values fall back to issues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch strings.ToLower(formatFlag) {
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the result in format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json report: %w", err)
		}
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}
