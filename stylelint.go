package cssorder

import (
	"errors"
	"fmt"
	"regexp"
)

// Plugin is the stylelint plugin providing the order rules.
const Plugin = "stylelint-order"

// Rule names within the emitted configuration
const (
	RuleOrder           = "order/order"
	RulePropertiesOrder = "order/properties-order"
)

// ErrInvalidOption is returned by BuildConfig for option values stylelint-order
// does not accept.
var ErrInvalidOption = errors.New("invalid option")

// Keyword is a fixed content category understood by order/order.
type Keyword string

// Content categories
const (
	KeywordCustomProperties Keyword = "custom-properties"
	KeywordDollarVariables  Keyword = "dollar-variables"
	KeywordAtVariables      Keyword = "at-variables"
	KeywordLessMixins       Keyword = "less-mixins"
	KeywordDeclarations     Keyword = "declarations"
	KeywordRules            Keyword = "rules"
	KeywordAtRules          Keyword = "at-rules"
)

// MatcherType is the node kind a structured matcher applies to.
type MatcherType string

// Matcher types
const (
	TypeAtRule MatcherType = "at-rule"
	TypeRule   MatcherType = "rule"
)

// RuleMatcher is one entry of the order/order list: either a Keyword or a
// structured matcher. For rules, Name is a human-readable label; for
// at-rules it is the at-rule name without "@".
type RuleMatcher struct {
	Keyword  Keyword
	Type     MatcherType
	Name     string
	HasBlock bool
	Selector *regexp.Regexp
}

// KeywordMatcher returns a matcher for a fixed category.
func KeywordMatcher(k Keyword) RuleMatcher {
	return RuleMatcher{Keyword: k}
}

// AtRule returns a matcher for the named at-rule.
func AtRule(name string) RuleMatcher {
	return RuleMatcher{Type: TypeAtRule, Name: name}
}

// RuleSelector returns a matcher for nested rules whose selector matches
// pattern. label names the matcher in reports.
func RuleSelector(label, pattern string) RuleMatcher {
	return RuleMatcher{Type: TypeRule, Name: label, Selector: regexp.MustCompile(pattern)}
}

// WithBlock restricts an at-rule matcher to at-rules that have a block.
func (m RuleMatcher) WithBlock() RuleMatcher {
	m.HasBlock = true
	return m
}

// IsKeyword reports whether m is a fixed category.
func (m RuleMatcher) IsKeyword() bool {
	return m.Keyword != ""
}

// String describes the matcher in report messages.
func (m RuleMatcher) String() string {
	switch m.Keyword {
	case KeywordCustomProperties:
		return "custom property"
	case KeywordDollarVariables:
		return "$-variable"
	case KeywordAtVariables:
		return "@-variable"
	case KeywordLessMixins:
		return "Less mixin"
	case KeywordDeclarations:
		return "declaration"
	case KeywordRules:
		return "rule"
	case KeywordAtRules:
		return "at-rule"
	}

	switch m.Type {
	case TypeAtRule:
		desc := "at-rule"
		if m.Name != "" {
			desc = fmt.Sprintf("@%s at-rule", m.Name)
		}
		if m.HasBlock {
			desc += " with a block"
		}
		return desc
	case TypeRule:
		if m.Name != "" {
			return fmt.Sprintf("rule %q", m.Name)
		}
		if m.Selector != nil {
			return fmt.Sprintf("rule matching /%s/", m.Selector)
		}
		return "rule"
	}
	return string(m.Type)
}

// DefaultRuleOrder returns the intra-rule order: imports and module rules,
// variables, definitions, mixin calls, declarations, media blocks, pseudo
// classes, pseudo elements, nested rules.
func DefaultRuleOrder() []RuleMatcher {
	return []RuleMatcher{
		AtRule("import"),
		// sass modules
		AtRule("forward"),
		AtRule("use"),
		KeywordMatcher(KeywordDollarVariables),
		KeywordMatcher(KeywordAtVariables),
		KeywordMatcher(KeywordCustomProperties),
		AtRule("custom-media"),
		AtRule("function"),
		AtRule("mixin"),
		KeywordMatcher(KeywordLessMixins),
		AtRule("extend"),
		AtRule("include"),
		KeywordMatcher(KeywordDeclarations),
		AtRule("media").WithBlock(),
		RuleSelector("pseudo classes", `^&:[\w-]+`),
		RuleSelector("pseudo elements", `^&::[\w-]+`),
		KeywordMatcher(KeywordRules),
	}
}

// Unspecified property policies
const (
	UnspecifiedTop                = "top"
	UnspecifiedBottom             = "bottom"
	UnspecifiedBottomAlphabetical = "bottomAlphabetical"
	UnspecifiedIgnore             = "ignore"
)

// Empty line directives
const (
	EmptyLineAlways    = "always"
	EmptyLineNever     = "never"
	EmptyLineThreshold = "threshold"
)

// Options controls the formatting directives attached to property groups and
// the policy for properties missing from the table.
type Options struct {
	EmptyLineBefore            string
	NoEmptyLineBetween         bool
	Unspecified                string
	EmptyLineBeforeUnspecified string
}

// DefaultOptions returns blank lines between groups, none within a group, and
// unlisted properties last in alphabetical order.
func DefaultOptions() Options {
	return Options{
		EmptyLineBefore:            EmptyLineAlways,
		NoEmptyLineBetween:         true,
		Unspecified:                UnspecifiedBottomAlphabetical,
		EmptyLineBeforeUnspecified: EmptyLineAlways,
	}
}

func (o Options) validate() error {
	switch o.Unspecified {
	case UnspecifiedTop, UnspecifiedBottom, UnspecifiedBottomAlphabetical, UnspecifiedIgnore:
	default:
		return fmt.Errorf("%w: unspecified %q", ErrInvalidOption, o.Unspecified)
	}
	if !validEmptyLine(o.EmptyLineBefore) {
		return fmt.Errorf("%w: emptyLineBefore %q", ErrInvalidOption, o.EmptyLineBefore)
	}
	if !validEmptyLine(o.EmptyLineBeforeUnspecified) {
		return fmt.Errorf("%w: emptyLineBeforeUnspecified %q", ErrInvalidOption, o.EmptyLineBeforeUnspecified)
	}
	return nil
}

func validEmptyLine(v string) bool {
	switch v {
	case "", EmptyLineAlways, EmptyLineNever, EmptyLineThreshold:
		return true
	}
	return false
}

// PropertyGroup is one record of the order/properties-order list.
type PropertyGroup struct {
	GroupName          string
	Properties         []string
	EmptyLineBefore    string
	NoEmptyLineBetween bool
}

// Config is the stylelint configuration handed to the linter.
type Config struct {
	Plugins                    []string
	Order                      []RuleMatcher
	Properties                 []PropertyGroup
	Unspecified                string
	EmptyLineBeforeUnspecified string
}

// BuildConfig combines the default rule order with the groups of table.
func BuildConfig(table *Table, opts Options) (Config, error) {
	if err := opts.validate(); err != nil {
		return Config{}, err
	}

	groups := table.Groups()
	props := make([]PropertyGroup, len(groups))
	for i, g := range groups {
		props[i] = PropertyGroup{
			GroupName:          g.Name,
			Properties:         g.Properties,
			EmptyLineBefore:    opts.EmptyLineBefore,
			NoEmptyLineBetween: opts.NoEmptyLineBetween,
		}
	}

	return Config{
		Plugins:                    []string{Plugin},
		Order:                      DefaultRuleOrder(),
		Properties:                 props,
		Unspecified:                opts.Unspecified,
		EmptyLineBeforeUnspecified: opts.EmptyLineBeforeUnspecified,
	}, nil
}

// DefaultConfig builds the configuration from the default table and options.
func DefaultConfig() Config {
	cfg, err := BuildConfig(DefaultTable(), DefaultOptions())
	if err != nil {
		panic(err)
	}
	return cfg
}

// PropertyPosition locates a property within the configured groups.
type PropertyPosition struct {
	Index int    // position across all groups
	Group string // owning group
}

// PropertyIndex maps every configured property to its first position.
func (c Config) PropertyIndex() map[string]PropertyPosition {
	index := make(map[string]PropertyPosition)
	i := 0
	for _, g := range c.Properties {
		for _, p := range g.Properties {
			if _, seen := index[p]; !seen {
				index[p] = PropertyPosition{Index: i, Group: g.GroupName}
			}
			i++
		}
	}
	return index
}
