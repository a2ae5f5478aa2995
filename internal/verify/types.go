package verify

import (
	"github.com/charmbracelet/log"
	"github.com/yacobolo/cssorder"
)

// Issue represents a single ordering violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "order/order" or "order/properties-order"
	Text        string   `json:"Text"`        // `Expected "display" to come before "color"`
	Severity    string   `json:"Severity"`    // "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Config holds verification settings
type Config struct {
	Paths     []string        // Glob patterns of stylesheets (e.g., "web/**/*.scss")
	GitIgnore string          // .gitignore used to filter relative paths ("" disables)
	Stylelint cssorder.Config // Configuration the stylesheets must satisfy
	Logger    *log.Logger     // Optional; nil discards

	PrintIssuedLines bool // Show source lines with issues
	PrintLinterName  bool // Show (order/order) suffix
	UseColors        bool // Force color output
}

// Result contains verification results
type Result struct {
	Issues         []Issue
	FilesScanned   int
	FilesSkipped   int
	BlocksChecked  int
	ErrorCount     int
	RuleIssues     int // order/order
	PropertyIssues int // order/properties-order
}

// OutputFormat represents the report format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format
	OutputJSON OutputFormat = "json"
)
