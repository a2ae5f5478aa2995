package verify

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter prints ordering issues and the run summary for humans.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       colorsEnabled(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// colorsEnabled resolves --color, NO_COLOR, FORCE_COLOR and the terminal
// check, in that order of precedence.
func colorsEnabled(config Config) bool {
	switch {
	case config.UseColors:
		return true
	case os.Getenv("NO_COLOR") != "":
		return false
	case os.Getenv("FORCE_COLOR") != "", os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}

	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// PrintIssues prints issues sorted by file and position, one
// "file:line:col: text (linter)" line each.
func (r *Reporter) PrintIssues(issues []Issue) {
	sortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	var linter string
	if r.printLinterName {
		linter = " (" + issue.FromLinter + ")"
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, linter, r.useColors))

	if !r.printLines || len(issue.SourceLines) == 0 {
		return
	}
	for _, line := range issue.SourceLines {
		fmt.Fprintf(r.w, "\t%s\n", line)
	}
	caret := caretLine(issue.SourceLines[0], issue.Pos.Column)
	fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
}

// caretLine places "^" under the 1-based rune column of sourceLine,
// copying tabs from the line so indentation matches.
func caretLine(sourceLine string, column int) string {
	var b strings.Builder
	n := 0
	for _, ch := range sourceLine {
		if n >= column-1 {
			break
		}
		if ch == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		n++
	}
	b.WriteByte('^')
	return b.String()
}

// PrintSummary prints the issue total and a per-linter breakdown.
func (r *Reporter) PrintSummary(result Result) {
	files := countOf(result.FilesScanned, "file", "files")

	fmt.Fprintln(r.w)

	if len(result.Issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues ("+files+" checked)", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s in %s:\n", countOf(len(result.Issues), "issue", "issues"), files)

	perLinter := make(map[string]int)
	for _, issue := range result.Issues {
		perLinter[issue.FromLinter]++
	}
	linters := make([]string, 0, len(perLinter))
	for linter := range perLinter {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, perLinter[linter])
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run stylelint --fix with the generated config to reorder", r.useColors))
}

func countOf(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// UseColors reports whether output is styled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
