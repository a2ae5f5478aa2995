// Package verify checks stylesheets against a generated stylelint-order
// configuration. It reports what stylelint would reorder and never rewrites
// files.
package verify

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"
)

// Run checks every stylesheet matched by config.Paths.
// Unreadable files don't stop the run: their errors are combined and returned
// together with the result for the remaining files.
func Run(config Config) (*Result, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	files, stats, err := expandGlobPatterns(config.Paths, loadFileFilter(config.GitIgnore))
	if err != nil {
		return nil, fmt.Errorf("expand patterns: %w", err)
	}
	logger.Debug("discovered stylesheets",
		"found", stats.FilesDiscovered, "checked", stats.FilesScanned, "skipped", stats.FilesSkipped)

	checker := NewChecker(config.Stylelint)
	result := &Result{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}

	var errs error
	for _, file := range files {
		// #nosec G304 - path comes from user-supplied patterns
		content, readErr := os.ReadFile(file)
		if readErr != nil {
			errs = multierr.Append(errs, fmt.Errorf("read %s: %w", file, readErr))
			continue
		}

		issues, blocks := CheckSource(file, string(content), checker)
		logger.Debug("checked stylesheet", "file", file, "blocks", blocks, "issues", len(issues))

		result.BlocksChecked += blocks
		result.Issues = append(result.Issues, issues...)
	}

	sortIssues(result.Issues)
	result.tally()
	return result, errs
}

// CheckSource checks a single stylesheet and returns its issues and the
// number of blocks checked.
func CheckSource(filename, content string, checker *Checker) ([]Issue, int) {
	violations, blocks := checker.Check(ParseStylesheet(content))
	if len(violations) == 0 {
		return nil, blocks
	}

	lines := strings.Split(content, "\n")
	issues := make([]Issue, 0, len(violations))
	for _, v := range violations {
		issue := Issue{
			FromLinter: v.Linter,
			Text:       v.Message,
			Severity:   SeverityError,
			Pos: IssuePos{
				Filename: filename,
				Line:     v.Pos.Line,
				Column:   v.Pos.Column,
			},
		}
		if v.Pos.Line > 0 && v.Pos.Line <= len(lines) {
			issue.SourceLines = []string{strings.TrimRight(lines[v.Pos.Line-1], "\r")}
		}
		issues = append(issues, issue)
	}

	return issues, blocks
}

// tally fills the per-linter and severity counters
func (r *Result) tally() {
	r.ErrorCount, r.RuleIssues, r.PropertyIssues = 0, 0, 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			r.ErrorCount++
		}
		switch issue.FromLinter {
		case LinterOrder:
			r.RuleIssues++
		case LinterPropertiesOrder:
			r.PropertyIssues++
		}
	}
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}
