package verify

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag string
		want OutputFormat
	}{
		{"", OutputIssues},
		{"issues", OutputIssues},
		{"json", OutputJSON},
		{"JSON", OutputJSON},
		{"markdown", OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag))
		})
	}
}

func TestBuildJSONOutput(t *testing.T) {
	result := &Result{
		Issues:         sampleIssues(),
		FilesScanned:   2,
		FilesSkipped:   1,
		BlocksChecked:  7,
		RuleIssues:     1,
		PropertyIssues: 1,
	}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	out := buildJSONOutput(result, now)

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, "2024-05-01T12:00:00Z", out.Timestamp)
	assert.Equal(t, JSONSummary{
		TotalIssues:    2,
		RuleIssues:     1,
		PropertyIssues: 1,
		FilesScanned:   2,
		FilesSkipped:   1,
		BlocksChecked:  7,
	}, out.Summary)

	require.Len(t, out.Issues, 2)
	assert.Equal(t, JSONIssue{
		File:     "a.scss",
		Line:     9,
		Column:   3,
		Severity: SeverityError,
		Message:  "Expected declaration to come before rule",
		Linter:   LinterOrder,
		Source:   "  top: 0;",
	}, out.Issues[0])
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOutput(&buf, &Result{Issues: sampleIssues()}, OutputJSON, Config{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "summary")
	assert.Len(t, decoded["issues"], 2)
	// quotes in messages stay readable
	assert.Contains(t, buf.String(), `Expected \"display\" to come before \"color\"`)
}

func TestWriteOutputIssues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	err := WriteOutput(&buf, &Result{Issues: sampleIssues(), FilesScanned: 2}, OutputIssues, Config{PrintLinterName: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "a.scss:9:3: Expected declaration to come before rule")
	assert.Contains(t, out, "2 issues in 2 files:")
}

func TestWriteJSONEmptyIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Result{}))
	assert.Contains(t, buf.String(), `"issues": []`)
}
