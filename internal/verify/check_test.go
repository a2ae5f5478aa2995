package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssorder"
)

func checkCSS(t *testing.T, cfg cssorder.Config, css string) []Violation {
	t.Helper()
	violations, _ := NewChecker(cfg).Check(ParseStylesheet(css))
	return violations
}

func TestCheckRuleOrder(t *testing.T) {
	cfg := cssorder.DefaultConfig()

	tests := []struct {
		name string
		css  string
		want []string
	}{
		{
			name: "ordered content",
			css:  "a { $x: 1; --y: 2; @include m; color: red; @media print { top: 0; } &:hover { top: 0; } &::after { top: 0; } b { top: 0; } }",
		},
		{
			name: "declaration after nested rule",
			css:  "a { b { top: 0; } color: red; }",
			want: []string{"Expected declaration to come before rule"},
		},
		{
			name: "variable after declaration",
			css:  "a { color: red; $x: 1; }",
			want: []string{"Expected $-variable to come before declaration"},
		},
		{
			name: "include after media block",
			css:  "a { @media print { top: 0; } @include m; }",
			want: []string{"Expected @include at-rule to come before @media at-rule with a block"},
		},
		{
			name: "pseudo element before pseudo class",
			css:  "a { &::after { top: 0; } &:hover { top: 0; } }",
			want: []string{`Expected rule "pseudo classes" to come before rule "pseudo elements"`},
		},
		{
			name: "unmatched at-rule ignored",
			css:  "a { color: red; @supports (display: grid) { top: 0; } $x: 1; }",
			want: []string{"Expected $-variable to come before declaration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, v := range checkCSS(t, cfg, tt.css) {
				if v.Linter == LinterOrder {
					got = append(got, v.Message)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckRuleOrderKeepsHighWaterMark(t *testing.T) {
	// both declarations trail the nested rule, so both are reported
	violations := checkCSS(t, cssorder.DefaultConfig(), "a { b { top: 0; } color: red; cursor: pointer; }")

	require.Len(t, violations, 2)
	for _, v := range violations {
		assert.Equal(t, LinterOrder, v.Linter)
	}
}

func TestCheckPropertiesKeepsHighWaterMark(t *testing.T) {
	// display is flagged against color, so width is compared with color too
	violations := checkCSS(t, cssorder.DefaultConfig(), "a { color: red; display: block; width: 1px; }")

	require.Len(t, violations, 2)
	assert.Equal(t, LinterPropertiesOrder, violations[0].Linter)
	assert.Equal(t, `Expected "display" to come before "color" (group "container" precedes "styling")`, violations[0].Message)
	assert.Equal(t, LinterPropertiesOrder, violations[1].Linter)
	assert.Equal(t, `Expected "width" to come before "color" (group "box size" precedes "styling")`, violations[1].Message)
}

func TestCheckPropertiesOrder(t *testing.T) {
	tests := []struct {
		name        string
		unspecified string
		css         string
		want        []string
	}{
		{
			name:        "grouped order",
			unspecified: cssorder.UnspecifiedBottomAlphabetical,
			css:         "a { position: absolute; display: flex; width: 1px; margin: 0; color: red; }",
		},
		{
			name:        "cross group",
			unspecified: cssorder.UnspecifiedBottomAlphabetical,
			css:         "a { color: red; display: block; }",
			want:        []string{`Expected "display" to come before "color" (group "container" precedes "styling")`},
		},
		{
			name:        "same group",
			unspecified: cssorder.UnspecifiedBottomAlphabetical,
			css:         "a { padding: 0; margin: 0; }",
			want:        []string{`Expected "margin" to come before "padding"`},
		},
		{
			name:        "vendor prefix ranks as unprefixed",
			unspecified: cssorder.UnspecifiedBottomAlphabetical,
			css:         "a { display: flex; -webkit-box-sizing: border-box; width: 1px; }",
		},
		{
			name:        "bottom alphabetical sorts unknown",
			unspecified: cssorder.UnspecifiedBottomAlphabetical,
			css:         "a { color: red; zoom: 1; foo: 2; }",
			want:        []string{`Expected "foo" to come before "zoom"`},
		},
		{
			name:        "bottom keeps unknown order",
			unspecified: cssorder.UnspecifiedBottom,
			css:         "a { color: red; zoom: 1; foo: 2; }",
		},
		{
			name:        "bottom rejects known after unknown",
			unspecified: cssorder.UnspecifiedBottom,
			css:         "a { zoom: 1; color: red; }",
			want:        []string{`Expected "color" to come before "zoom"`},
		},
		{
			name:        "top wants unknown first",
			unspecified: cssorder.UnspecifiedTop,
			css:         "a { color: red; zoom: 1; }",
			want:        []string{`Expected "zoom" to come before "color"`},
		},
		{
			name:        "top accepts unknown first",
			unspecified: cssorder.UnspecifiedTop,
			css:         "a { zoom: 1; color: red; }",
		},
		{
			name:        "ignore skips unknown",
			unspecified: cssorder.UnspecifiedIgnore,
			css:         "a { display: block; zoom: 1; position: absolute; }",
			want:        []string{`Expected "position" to come before "display" (group "positioning" precedes "container")`},
		},
		{
			name:        "variables are not declarations",
			unspecified: cssorder.UnspecifiedBottomAlphabetical,
			css:         "a { color: red; --z: 1; display: block; }",
			want:        []string{`Expected "display" to come before "color" (group "container" precedes "styling")`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := cssorder.DefaultOptions()
			opts.Unspecified = tt.unspecified
			cfg, err := cssorder.BuildConfig(cssorder.DefaultTable(), opts)
			require.NoError(t, err)

			var got []string
			for _, v := range checkCSS(t, cfg, tt.css) {
				if v.Linter == LinterPropertiesOrder {
					got = append(got, v.Message)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckCountsBlocks(t *testing.T) {
	_, blocks := NewChecker(cssorder.DefaultConfig()).Check(ParseStylesheet(
		"a { b { top: 0; } } @media print { c { top: 0; } } @import 'x';",
	))
	assert.Equal(t, 4, blocks)
}

func TestCheckViolationPosition(t *testing.T) {
	violations := checkCSS(t, cssorder.DefaultConfig(), "a {\n  color: red;\n  display: block;\n}")

	require.Len(t, violations, 1)
	assert.Equal(t, Position{Line: 3, Column: 3}, violations[0].Pos)
}

func TestMatchScore(t *testing.T) {
	media := &Node{Kind: NodeAtRule, Name: "media", HasBlock: true}
	inline := &Node{Kind: NodeAtRule, Name: "media"}
	hover := &Node{Kind: NodeRule, Selector: "&:hover"}
	plain := &Node{Kind: NodeRule, Selector: ".x"}

	assert.Equal(t, 3, matchScore(cssorder.AtRule("media").WithBlock(), media))
	assert.Equal(t, 0, matchScore(cssorder.AtRule("media").WithBlock(), inline))
	assert.Equal(t, 2, matchScore(cssorder.AtRule("MEDIA"), inline))
	assert.Equal(t, 1, matchScore(cssorder.KeywordMatcher(cssorder.KeywordAtRules), media))
	assert.Equal(t, 2, matchScore(cssorder.RuleSelector("pseudo classes", `^&:[\w-]+`), hover))
	assert.Equal(t, 0, matchScore(cssorder.RuleSelector("pseudo classes", `^&:[\w-]+`), plain))
	assert.Equal(t, 1, matchScore(cssorder.KeywordMatcher(cssorder.KeywordRules), plain))
	assert.Equal(t, 0, matchScore(cssorder.KeywordMatcher(cssorder.KeywordDeclarations), plain))
}
