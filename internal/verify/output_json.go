package verify

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the --output-format json document
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary holds the run totals
type JSONSummary struct {
	TotalIssues    int `json:"total_issues"`
	RuleIssues     int `json:"rule_order_issues"`
	PropertyIssues int `json:"property_order_issues"`
	FilesScanned   int `json:"files_scanned"`
	FilesSkipped   int `json:"files_skipped"`
	BlocksChecked  int `json:"blocks_checked"`
}

// JSONIssue is one ordering issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // first offending line
}

// WriteJSON writes the result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}

// buildJSONOutput flattens result into the report document
func buildJSONOutput(result *Result, now time.Time) JSONOutput {
	sortIssues(result.Issues)

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:    len(result.Issues),
			RuleIssues:     result.RuleIssues,
			PropertyIssues: result.PropertyIssues,
			FilesScanned:   result.FilesScanned,
			FilesSkipped:   result.FilesSkipped,
			BlocksChecked:  result.BlocksChecked,
		},
		Issues: jsonIssues,
	}
}
