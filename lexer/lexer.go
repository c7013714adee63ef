// Package lexer turns raw source text into the token trees the macro engines
// consume. The host compiler would normally provide these; the lexer exists
// so the CLI and end-to-end tests can drive the engines from plain text.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/macroforge/macrokit/token"
)

// Lexer scans one input string into a token stream.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int
}

// New returns a Lexer over the given input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Lex is a convenience wrapper: scan the whole input into one stream.
func Lex(input string) (token.Stream, error) {
	return New(input).Tokenize()
}

// Tokenize scans the entire input. Delimiters must balance; anything else is
// reported with its position.
func (l *Lexer) Tokenize() (token.Stream, error) {
	stream, err := l.lexStream(0)
	if err != nil {
		return nil, err
	}
	if l.pos < len(l.input) {
		return nil, fmt.Errorf("%s: unmatched closing delimiter %q", l.here(), l.input[l.pos])
	}
	return stream, nil
}

// lexStream scans tokens until the closing delimiter `until` (0 for EOF).
// It stops with the closer still unconsumed.
func (l *Lexer) lexStream(until byte) (token.Stream, error) {
	var stream token.Stream
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case isSpace(c):
			l.advance()

		case c == until:
			return stream, nil

		case c == ')' || c == ']' || c == '}':
			return nil, fmt.Errorf("%s: unmatched closing delimiter %q", l.here(), c)

		case c == '(' || c == '[' || c == '{':
			grp, err := l.lexGroup(c)
			if err != nil {
				return nil, err
			}
			stream = append(stream, grp)

		case c == '"' || c == '\'':
			lit, err := l.lexQuoted("")
			if err != nil {
				return nil, err
			}
			stream = append(stream, lit)

		case c >= '0' && c <= '9':
			stream = append(stream, l.lexNumber())

		case isIdentStart(c):
			tok, err := l.lexIdentOrPrefixedLit()
			if err != nil {
				return nil, err
			}
			stream = append(stream, tok)

		default:
			p, err := l.lexPunct()
			if err != nil {
				return nil, err
			}
			stream = append(stream, p)
		}
	}
	if until != 0 {
		return nil, fmt.Errorf("%s: missing closing delimiter %q", l.here(), until)
	}
	return stream, nil
}

// lexGroup consumes an open delimiter, its inner stream, and the matching
// closer, producing one Group token.
func (l *Lexer) lexGroup(open byte) (*token.Group, error) {
	pos := l.here()
	var delim token.Delim
	var closer byte
	switch open {
	case '(':
		delim, closer = token.Paren, ')'
	case '[':
		delim, closer = token.Bracket, ']'
	case '{':
		delim, closer = token.Brace, '}'
	}
	l.advance() // opener
	inner, err := l.lexStream(closer)
	if err != nil {
		return nil, err
	}
	if l.pos >= len(l.input) {
		return nil, fmt.Errorf("%s: missing closing delimiter %q", l.here(), closer)
	}
	l.advance() // closer
	return token.NewGroup(delim, inner, pos), nil
}

// lexIdentOrPrefixedLit scans an identifier, re-interpreting the string and
// char prefixes (b, c, r, br, cr) as the start of a literal when a quote
// follows directly.
func (l *Lexer) lexIdentOrPrefixedLit() (token.Tree, error) {
	pos := l.here()
	start := l.pos
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.advance()
	}
	name := l.input[start:l.pos]

	if l.pos < len(l.input) && (l.input[l.pos] == '"' || l.input[l.pos] == '\'' || l.input[l.pos] == '#') {
		switch name {
		case "b", "c", "r", "br", "cr":
			return l.lexQuoted(name)
		}
	}
	return token.NewIdent(name, pos), nil
}

// lexQuoted scans a (possibly prefixed, possibly raw) string or char literal.
// The prefix has already been consumed; its text is passed in so the literal
// token carries the full source spelling.
func (l *Lexer) lexQuoted(prefix string) (*token.Lit, error) {
	pos := l.here()
	pos.Offset -= len(prefix)
	pos.Column -= len(prefix)
	start := l.pos - len(prefix)

	raw := strings.HasSuffix(prefix, "r")
	hashes := 0
	for raw && l.pos < len(l.input) && l.input[l.pos] == '#' {
		hashes++
		l.advance()
	}
	if l.pos >= len(l.input) || (l.input[l.pos] != '"' && l.input[l.pos] != '\'') {
		return nil, fmt.Errorf("%s: malformed literal prefix %q", l.here(), prefix)
	}
	quote := l.input[l.pos]
	l.advance()

	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '\\' && !raw {
			l.advance()
			if l.pos < len(l.input) {
				l.advance()
			}
			continue
		}
		if c == quote {
			l.advance()
			if raw {
				for i := 0; i < hashes; i++ {
					if l.pos >= len(l.input) || l.input[l.pos] != '#' {
						return nil, fmt.Errorf("%s: unterminated raw literal", l.here())
					}
					l.advance()
				}
			}
			return token.NewLit(l.input[start:l.pos], pos), nil
		}
		l.advance()
	}
	return nil, fmt.Errorf("%s: unterminated literal", l.here())
}

// lexNumber scans a numeric literal together with its type suffix as one
// token, e.g. `42i32`, `3.14f32`, `0xFFu8`, `1e-5`.
func (l *Lexer) lexNumber() *token.Lit {
	pos := l.here()
	start := l.pos
	sawDot := false
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case isIdentPart(c) || (c >= '0' && c <= '9'):
			// Exponent sign: 1e-5, 2.5E+10.
			if (c == 'e' || c == 'E') && l.pos+1 < len(l.input) &&
				(l.input[l.pos+1] == '+' || l.input[l.pos+1] == '-') && !isHexLiteral(l.input[start:]) {
				l.advance()
			}
			l.advance()
		case c == '.' && !sawDot && l.pos+1 < len(l.input) && l.input[l.pos+1] != '.':
			sawDot = true
			l.advance()
		case c == '.' && !sawDot && l.pos+1 == len(l.input):
			sawDot = true
			l.advance()
		default:
			return token.NewLit(l.input[start:l.pos], pos)
		}
	}
	return token.NewLit(l.input[start:l.pos], pos)
}

// lexPunct scans one punctuation character. Spacing is Joint when the very
// next byte is another punctuation character, which is how multi-character
// operators such as `=>` keep their shape through the token tree.
func (l *Lexer) lexPunct() (*token.Punct, error) {
	pos := l.here()
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		return nil, fmt.Errorf("%s: invalid UTF-8 in input", l.here())
	}
	if !isPunctRune(r) {
		return nil, fmt.Errorf("%s: unexpected character %q", l.here(), r)
	}
	for i := 0; i < size; i++ {
		l.advance()
	}
	spacing := token.Alone
	if l.pos < len(l.input) && isPunctByte(l.input[l.pos]) {
		spacing = token.Joint
	}
	return token.NewPunct(r, spacing, pos), nil
}

// here returns the position of the current byte.
func (l *Lexer) here() token.Pos {
	return token.Pos{Offset: l.pos, Line: l.line, Column: l.column}
}

// advance moves one byte forward, tracking line and column.
func (l *Lexer) advance() {
	if l.pos < len(l.input) && l.input[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func isSpace(c byte) bool { return unicode.IsSpace(rune(c)) }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isHexLiteral(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

func isPunctRune(r rune) bool {
	return r < utf8.RuneSelf && isPunctByte(byte(r))
}

func isPunctByte(c byte) bool {
	switch c {
	case '!', '#', '$', '%', '&', '*', '+', ',', '-', '.', '/', ':', ';',
		'<', '=', '>', '?', '@', '^', '|', '~':
		return true
	}
	return false
}
