// Package token defines the token-tree representation shared by every macro
// engine in this module: an ordered forest of identifiers, literals,
// single-character punctuation, and delimited groups, each carrying its
// source position.
package token

import (
	"fmt"
	"strings"
)

// Pos is a source position attached to every token. Synthesized tokens copy
// the position of a designated anchor token so diagnostics still point at
// real input.
type Pos struct {
	Offset int // byte offset in the original input
	Line   int // 1-based line number
	Column int // 1-based column number
}

// NoPos is the position of tokens with no usable anchor, e.g. diagnostics
// about input that ended too early.
var NoPos = Pos{Offset: -1}

// IsValid reports whether the position points at actual input.
func (p Pos) IsValid() bool { return p.Offset >= 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Spacing records whether a punctuation character is glued to the token that
// follows it. Multi-character operators such as `=>` arrive as two
// single-character tokens; the first is Joint, the last is Alone.
type Spacing int

const (
	Alone Spacing = iota
	Joint
)

func (s Spacing) String() string {
	if s == Joint {
		return "joint"
	}
	return "alone"
}

// Delim identifies the delimiter of a Group.
type Delim int

const (
	Paren   Delim = iota // ( ... )
	Bracket              // [ ... ]
	Brace                // { ... }
	None                 // invisible grouping inserted around substituted macro arguments
)

func (d Delim) String() string {
	switch d {
	case Paren:
		return "paren"
	case Bracket:
		return "bracket"
	case Brace:
		return "brace"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// open and close return the delimiter characters, empty for None.
func (d Delim) open() string {
	switch d {
	case Paren:
		return "("
	case Bracket:
		return "["
	case Brace:
		return "{"
	default:
		return ""
	}
}

func (d Delim) close() string {
	switch d {
	case Paren:
		return ")"
	case Bracket:
		return "]"
	case Brace:
		return "}"
	default:
		return ""
	}
}

// Kind discriminates the concrete token types.
type Kind int

const (
	KindIdent Kind = iota
	KindLit
	KindPunct
	KindGroup
)

// Tree is a single node of the token tree. It is a closed sum: the only
// implementations are Ident, Lit, Punct, and Group.
type Tree interface {
	Kind() Kind
	Pos() Pos
	String() string
}

var (
	_ Tree = (*Ident)(nil)
	_ Tree = (*Lit)(nil)
	_ Tree = (*Punct)(nil)
	_ Tree = (*Group)(nil)
)

// Ident is an identifier token.
type Ident struct {
	Name string
	pos  Pos
}

func NewIdent(name string, pos Pos) *Ident { return &Ident{Name: name, pos: pos} }

func (i *Ident) Kind() Kind     { return KindIdent }
func (i *Ident) Pos() Pos       { return i.pos }
func (i *Ident) String() string { return i.Name }

// Lit is a literal token holding the raw source text, suffix included.
// Classifying the text into a literal kind is the lit package's job.
type Lit struct {
	Text string
	pos  Pos
}

func NewLit(text string, pos Pos) *Lit { return &Lit{Text: text, pos: pos} }

func (l *Lit) Kind() Kind     { return KindLit }
func (l *Lit) Pos() Pos       { return l.pos }
func (l *Lit) String() string { return l.Text }

// Punct is a single punctuation character with its spacing flag.
type Punct struct {
	Ch      rune
	Spacing Spacing
	pos     Pos
}

func NewPunct(ch rune, spacing Spacing, pos Pos) *Punct {
	return &Punct{Ch: ch, Spacing: spacing, pos: pos}
}

func (p *Punct) Kind() Kind     { return KindPunct }
func (p *Punct) Pos() Pos       { return p.pos }
func (p *Punct) String() string { return string(p.Ch) }

// Group is a delimited subtree. Its inner stream is itself a well-formed
// token sequence; the structure is a tree, never a graph.
type Group struct {
	Delim  Delim
	Stream Stream
	pos    Pos
}

func NewGroup(delim Delim, stream Stream, pos Pos) *Group {
	return &Group{Delim: delim, Stream: stream, pos: pos}
}

func (g *Group) Kind() Kind { return KindGroup }
func (g *Group) Pos() Pos   { return g.pos }

func (g *Group) String() string {
	var b strings.Builder
	b.WriteString(g.Delim.open())
	inner := g.Stream.String()
	if inner != "" {
		b.WriteString(inner)
	}
	b.WriteString(g.Delim.close())
	return b.String()
}
