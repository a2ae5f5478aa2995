package verify

import (
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// NodeKind classifies a stylesheet node
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeRule
	NodeAtRule
	NodeDeclaration
	NodeCustomProperty
	NodeDollarVariable
	NodeAtVariable
	NodeLessMixin
)

// Position is a 1-based location in a stylesheet
type Position struct {
	Line   int
	Column int
}

// Node is one statement of a stylesheet. Rules and at-rules with a block
// carry their content in Children.
type Node struct {
	Kind     NodeKind
	Name     string // property, variable or at-rule name
	Selector string // rule selector or at-rule params
	HasBlock bool
	Pos      Position
	Children []*Node
}

// token is a lexer token with its start position
type token struct {
	tt   css.TokenType
	text string
	pos  Position
}

// sheetState tracks the open block and pending statement while scanning
type sheetState struct {
	stack  []*Node
	stmt   []token // tokens of the pending statement
	parens int     // open ( depth within the statement
	interp int     // open #{ depth within the statement
	pos    Position
}

// ParseStylesheet scans CSS, SCSS or Less source into a node tree.
// It tracks only what ordering needs: statement kinds, names, selectors and
// nesting. Values are not interpreted.
func ParseStylesheet(content string) *Node {
	root := &Node{Kind: NodeRoot, HasBlock: true, Pos: Position{Line: 1, Column: 1}}
	state := &sheetState{
		stack: []*Node{root},
		pos:   Position{Line: 1, Column: 1},
	}

	lexer := css.NewLexer(parse.NewInputString(stripLineComments(content)))

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		tok := token{tt: tt, text: string(data), pos: state.pos}
		state.advance(tok.text)

		switch tt {
		case css.CommentToken:
			continue
		case css.WhitespaceToken:
			if len(state.stmt) > 0 {
				state.stmt = append(state.stmt, tok)
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			state.parens++
			state.stmt = append(state.stmt, tok)
		case css.RightParenthesisToken:
			if state.parens > 0 {
				state.parens--
			}
			state.stmt = append(state.stmt, tok)
		case css.LeftBraceToken:
			if state.startsInterpolation() || state.parens > 0 {
				state.interp++
				state.stmt = append(state.stmt, tok)
				continue
			}
			state.open()
		case css.RightBraceToken:
			if state.interp > 0 {
				state.interp--
				state.stmt = append(state.stmt, tok)
				continue
			}
			state.close()
		case css.SemicolonToken:
			if state.parens > 0 || state.interp > 0 {
				state.stmt = append(state.stmt, tok)
				continue
			}
			state.flush()
		default:
			state.stmt = append(state.stmt, tok)
		}
	}
	state.flush()

	return root
}

// advance moves the position past text
func (s *sheetState) advance(text string) {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		if r == '\n' {
			s.pos.Line++
			s.pos.Column = 1
		} else {
			s.pos.Column++
		}
	}
}

// startsInterpolation reports whether the pending statement ends with a bare #
func (s *sheetState) startsInterpolation() bool {
	if len(s.stmt) == 0 {
		return false
	}
	last := s.stmt[len(s.stmt)-1]
	return last.tt == css.DelimToken && last.text == "#"
}

func (s *sheetState) top() *Node {
	return s.stack[len(s.stack)-1]
}

// open turns the pending statement into a block node and descends into it
func (s *sheetState) open() {
	sig := significant(s.stmt)

	node := &Node{Kind: NodeRule, HasBlock: true, Pos: s.pos}
	if len(sig) > 0 {
		node.Pos = sig[0].pos
		if sig[0].tt == css.AtKeywordToken {
			node.Kind = NodeAtRule
			node.Name = strings.ToLower(strings.TrimPrefix(sig[0].text, "@"))
			node.Selector = joinTokens(s.stmt[1:])
		} else {
			node.Selector = joinTokens(s.stmt)
		}
	}

	parent := s.top()
	parent.Children = append(parent.Children, node)
	s.stack = append(s.stack, node)
	s.reset()
}

// close finishes the pending statement and returns to the parent block
func (s *sheetState) close() {
	s.flush()
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// flush turns the pending statement into a leaf node
func (s *sheetState) flush() {
	defer s.reset()

	sig := significant(s.stmt)
	if len(sig) == 0 {
		return
	}

	node := classifyStatement(sig)
	if node == nil {
		return
	}

	parent := s.top()
	parent.Children = append(parent.Children, node)
}

func (s *sheetState) reset() {
	s.stmt = s.stmt[:0]
	s.parens = 0
	s.interp = 0
}

// classifyStatement recognizes the leaf statements that ordering cares about
func classifyStatement(sig []token) *Node {
	first := sig[0]
	node := &Node{Pos: first.pos}
	colonAt := func(i int) bool {
		return len(sig) > i && sig[i].tt == css.ColonToken
	}

	switch {
	case first.tt == css.AtKeywordToken && colonAt(1):
		node.Kind = NodeAtVariable
		node.Name = strings.TrimPrefix(first.text, "@")
	case first.tt == css.AtKeywordToken:
		node.Kind = NodeAtRule
		node.Name = strings.ToLower(strings.TrimPrefix(first.text, "@"))
		node.Selector = joinTokens(sig[1:])
	case first.tt == css.DelimToken && first.text == "$" && len(sig) > 1 && sig[1].tt == css.IdentToken && colonAt(2):
		node.Kind = NodeDollarVariable
		node.Name = sig[1].text
	case first.tt == css.CustomPropertyNameToken,
		first.tt == css.IdentToken && strings.HasPrefix(first.text, "--") && colonAt(1):
		node.Kind = NodeCustomProperty
		node.Name = first.text
	case first.tt == css.IdentToken && colonAt(1):
		node.Kind = NodeDeclaration
		node.Name = strings.ToLower(first.text)
	case first.tt == css.DelimToken && first.text == ".", first.tt == css.HashToken:
		node.Kind = NodeLessMixin
		node.Name = joinTokens(sig)
	default:
		return nil
	}
	return node
}

// significant drops whitespace tokens
func significant(tokens []token) []token {
	out := make([]token, 0, len(tokens))
	for _, t := range tokens {
		if t.tt != css.WhitespaceToken {
			out = append(out, t)
		}
	}
	return out
}

// joinTokens renders tokens as text with whitespace collapsed
func joinTokens(tokens []token) string {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		if t.tt == css.WhitespaceToken {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteString(t.text)
	}
	return b.String()
}

// stripLineComments blanks out // comments (SCSS, Less) so the CSS lexer
// does not see them. Newlines are kept so positions stay valid. A // only
// starts a comment at the start of a line or after whitespace, ';', '{' or '}'
// which leaves url(//host) and http:// alone.
func stripLineComments(src string) string {
	if !strings.Contains(src, "//") {
		return src
	}

	out := []byte(src)
	var quote byte
	inBlock := false

	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case inBlock:
			if c == '*' && i+1 < len(out) && out[i+1] == '/' {
				inBlock = false
				i++
			}
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote || c == '\n' {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			inBlock = true
			i++
		case c == '/' && i+1 < len(out) && out[i+1] == '/' && startsComment(out, i):
			for ; i < len(out) && out[i] != '\n'; i++ {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

func startsComment(src []byte, i int) bool {
	if i == 0 {
		return true
	}
	switch src[i-1] {
	case ' ', '\t', '\n', '\r', ';', '{', '}':
		return true
	}
	return false
}
