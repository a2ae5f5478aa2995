package verify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yacobolo/cssorder"
)

// Linter names reported on issues
const (
	LinterOrder           = cssorder.RuleOrder
	LinterPropertiesOrder = cssorder.RulePropertiesOrder
)

var vendorPrefix = regexp.MustCompile(`^-(webkit|moz|ms|o)-`)

// Violation is an ordering problem found in a parsed stylesheet
type Violation struct {
	Linter  string
	Message string
	Pos     Position
}

// Checker verifies node trees against a stylelint-order configuration
type Checker struct {
	order       []cssorder.RuleMatcher
	index       map[string]cssorder.PropertyPosition
	unspecified string
}

// NewChecker prepares the lookups for cfg
func NewChecker(cfg cssorder.Config) *Checker {
	return &Checker{
		order:       cfg.Order,
		index:       cfg.PropertyIndex(),
		unspecified: cfg.Unspecified,
	}
}

// Check walks every rule and at-rule block below root and returns the
// violations in document order, along with the number of blocks checked.
func (c *Checker) Check(root *Node) ([]Violation, int) {
	var violations []Violation
	blocks := 0

	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind != NodeRoot {
			blocks++
			violations = append(violations, c.checkOrder(n)...)
			violations = append(violations, c.checkProperties(n)...)
		}
		for _, child := range n.Children {
			if child.HasBlock {
				walk(child)
			}
		}
	}
	walk(root)

	return violations, blocks
}

// checkOrder verifies that block content follows the order/order list
func (c *Checker) checkOrder(block *Node) []Violation {
	var violations []Violation
	prev := -1

	for _, child := range block.Children {
		idx := c.matchIndex(child)
		if idx < 0 {
			continue
		}
		if idx < prev {
			violations = append(violations, Violation{
				Linter:  LinterOrder,
				Message: fmt.Sprintf("Expected %s to come before %s", c.order[idx], c.order[prev]),
				Pos:     child.Pos,
			})
			continue
		}
		prev = idx
	}

	return violations
}

// matchIndex returns the position of the most specific matcher for n, or -1.
// Ties go to the earlier matcher.
func (c *Checker) matchIndex(n *Node) int {
	best, bestScore := -1, 0
	for i, m := range c.order {
		if score := matchScore(m, n); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// matchScore rates how specifically m describes n; 0 means no match
func matchScore(m cssorder.RuleMatcher, n *Node) int {
	if m.IsKeyword() {
		if keywordKind(m.Keyword) == n.Kind {
			return 1
		}
		return 0
	}

	switch m.Type {
	case cssorder.TypeAtRule:
		if n.Kind != NodeAtRule {
			return 0
		}
		score := 1
		if m.Name != "" {
			if !strings.EqualFold(m.Name, n.Name) {
				return 0
			}
			score++
		}
		if m.HasBlock {
			if !n.HasBlock {
				return 0
			}
			score++
		}
		return score
	case cssorder.TypeRule:
		if n.Kind != NodeRule {
			return 0
		}
		if m.Selector != nil {
			if !m.Selector.MatchString(n.Selector) {
				return 0
			}
			return 2
		}
		return 1
	}
	return 0
}

func keywordKind(k cssorder.Keyword) NodeKind {
	switch k {
	case cssorder.KeywordCustomProperties:
		return NodeCustomProperty
	case cssorder.KeywordDollarVariables:
		return NodeDollarVariable
	case cssorder.KeywordAtVariables:
		return NodeAtVariable
	case cssorder.KeywordLessMixins:
		return NodeLessMixin
	case cssorder.KeywordDeclarations:
		return NodeDeclaration
	case cssorder.KeywordRules:
		return NodeRule
	case cssorder.KeywordAtRules:
		return NodeAtRule
	}
	return NodeRoot
}

// propertyRank places a declaration for comparison
type propertyRank struct {
	name    string // unprefixed, lowercase
	known   bool
	index   int
	group   string
	ignored bool
}

func (c *Checker) rank(property string) propertyRank {
	name := vendorPrefix.ReplaceAllString(strings.ToLower(property), "")
	if pos, ok := c.index[name]; ok {
		return propertyRank{name: name, known: true, index: pos.Index, group: pos.Group}
	}
	return propertyRank{name: name, ignored: c.unspecified == cssorder.UnspecifiedIgnore}
}

// before reports whether a may precede b
func (c *Checker) before(a, b propertyRank) bool {
	switch {
	case a.known && b.known:
		return a.index <= b.index
	case a.known != b.known:
		if c.unspecified == cssorder.UnspecifiedTop {
			return !a.known
		}
		return a.known
	case c.unspecified == cssorder.UnspecifiedBottomAlphabetical:
		return a.name <= b.name
	}
	return true
}

// checkProperties verifies declaration order against the property groups.
// A flagged declaration does not move the comparison point, matching
// checkOrder, so every declaration is compared with the highest rank so far.
func (c *Checker) checkProperties(block *Node) []Violation {
	var violations []Violation
	var prev *propertyRank
	var prevName string

	for _, child := range block.Children {
		if child.Kind != NodeDeclaration {
			continue
		}
		r := c.rank(child.Name)
		if r.ignored {
			continue
		}
		if prev != nil && !c.before(*prev, r) {
			violations = append(violations, Violation{
				Linter:  LinterPropertiesOrder,
				Message: propertyMessage(child.Name, r, prevName, *prev),
				Pos:     child.Pos,
			})
			continue
		}
		prev, prevName = &r, child.Name
	}

	return violations
}

func propertyMessage(name string, r propertyRank, prevName string, prev propertyRank) string {
	msg := fmt.Sprintf("Expected %q to come before %q", name, prevName)
	if r.known && prev.known && r.group != prev.group {
		msg += fmt.Sprintf(" (group %q precedes %q)", r.group, prev.group)
	}
	return msg
}
