package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssorder"
)

func TestRunOrderedFixture(t *testing.T) {
	result, err := Run(Config{
		Paths:     []string{filepath.Join("testdata", "ordered.scss")},
		Stylelint: cssorder.DefaultConfig(),
	})
	require.NoError(t, err)

	assert.Empty(t, result.Issues)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 5, result.BlocksChecked) // .card, @media, &:hover, &::before, .card__title
	assert.Zero(t, result.ErrorCount)
}

func TestRunUnorderedFixture(t *testing.T) {
	file := filepath.Join("testdata", "unordered.scss")
	result, err := Run(Config{
		Paths:     []string{file},
		Stylelint: cssorder.DefaultConfig(),
	})
	require.NoError(t, err)

	type found struct {
		linter string
		line   int
		column int
		text   string
	}
	var got []found
	for _, issue := range result.Issues {
		assert.Equal(t, file, issue.Pos.Filename)
		assert.Equal(t, SeverityError, issue.Severity)
		require.Len(t, issue.SourceLines, 1)
		got = append(got, found{issue.FromLinter, issue.Pos.Line, issue.Pos.Column, issue.Text})
	}

	assert.Equal(t, []found{
		{LinterPropertiesOrder, 3, 3, `Expected "display" to come before "color" (group "container" precedes "styling")`},
		{LinterOrder, 9, 3, `Expected declaration to come before rule "pseudo classes"`},
		{LinterOrder, 10, 3, `Expected $-variable to come before rule "pseudo classes"`},
	}, got)

	assert.Equal(t, 3, result.ErrorCount)
	assert.Equal(t, 2, result.RuleIssues)
	assert.Equal(t, 1, result.PropertyIssues)
	assert.Equal(t, "  cursor: pointer;", result.Issues[1].SourceLines[0])
}

func TestRunGlobAcrossFixtures(t *testing.T) {
	result, err := Run(Config{
		Paths:     []string{filepath.Join("testdata", "*")},
		Stylelint: cssorder.DefaultConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesScanned)
	assert.Len(t, result.Issues, 4)

	// plain.css sorts first
	first := result.Issues[0]
	assert.Equal(t, filepath.Join("testdata", "plain.css"), first.Pos.Filename)
	assert.Equal(t, 4, first.Pos.Line)
	assert.Equal(t, `Expected "position" to come before "inset"`, first.Text)
}

func TestRunRespectsOptions(t *testing.T) {
	opts := cssorder.DefaultOptions()
	opts.Unspecified = cssorder.UnspecifiedTop
	cfg, err := cssorder.BuildConfig(cssorder.DefaultTable(), opts)
	require.NoError(t, err)

	result, err := Run(Config{
		Paths:     []string{filepath.Join("testdata", "ordered.scss")},
		Stylelint: cssorder.DefaultConfig(),
	})
	require.NoError(t, err)
	require.Empty(t, result.Issues)

	result, err = Run(Config{
		Paths:     []string{filepath.Join("testdata", "ordered.scss")},
		Stylelint: cfg,
	})
	require.NoError(t, err)
	// -webkit-tap-highlight-color now belongs above the known properties
	assert.Equal(t, 1, result.PropertyIssues)
}

func TestRunNoMatches(t *testing.T) {
	result, err := Run(Config{
		Paths:     []string{filepath.Join(t.TempDir(), "*.css")},
		Stylelint: cssorder.DefaultConfig(),
	})
	require.NoError(t, err)
	assert.Zero(t, result.FilesScanned)
	assert.Empty(t, result.Issues)
}

func TestRunUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root can read any file")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "locked.css")
	require.NoError(t, os.WriteFile(path, []byte("a { top: 0; }"), 0o000))

	result, err := Run(Config{
		Paths:     []string{path},
		Stylelint: cssorder.DefaultConfig(),
	})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Issues)
}

func TestCheckSourceWithoutIssues(t *testing.T) {
	issues, blocks := CheckSource("x.css", "a { top: 0; }", NewChecker(cssorder.DefaultConfig()))
	assert.Nil(t, issues)
	assert.Equal(t, 1, blocks)
}
