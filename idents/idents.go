// Package idents implements the identifier-synthesis engine. It walks a
// token stream depth-first and rewrites two bracket conventions into freshly
// minted identifiers:
//
//   - paste form `[< a _ b >]`: one identifier concatenated from the bracket's
//     contents;
//   - enumeration form `{< Name@... item0, item1 >}`: one identifier per
//     comma-separated item, named by an optional pattern with `@` substituted
//     by the item's zero-based ordinal, or `T<ordinal>` without a pattern.
//
// Everything else passes through unchanged, including bracket and brace
// groups whose contents do not begin with `<` — that is how the engine stays
// out of the way of ordinary indexing and block syntax.
package idents

import (
	"strconv"
	"strings"

	"github.com/macroforge/macrokit/diag"
	"github.com/macroforge/macrokit/token"
)

// Expand rewrites every recognized construct in the stream, recursing through
// unrelated delimited groups. For a stream with no recognized construct the
// result is structurally identical to the input.
func Expand(ts token.Stream) (token.Stream, *diag.SyntaxError) {
	out := make(token.Stream, 0, len(ts))
	for _, t := range ts {
		g, ok := t.(*token.Group)
		if !ok {
			out = append(out, t)
			continue
		}
		switch {
		case g.Delim == token.Bracket && startsWithLess(g.Stream):
			id, err := expandPaste(g)
			if err != nil {
				return nil, err
			}
			out = append(out, id)
		case g.Delim == token.Brace && startsWithLess(g.Stream):
			toks, err := expandEnum(g)
			if err != nil {
				return nil, err
			}
			out = append(out, toks...)
		default:
			inner, err := Expand(g.Stream)
			if err != nil {
				return nil, err
			}
			out = append(out, token.NewGroup(g.Delim, inner, g.Pos()))
		}
	}
	return out, nil
}

// startsWithLess reports whether the stream's first token is the punctuation
// `<`, the marker that distinguishes engine syntax from ordinary groups.
func startsWithLess(ts token.Stream) bool {
	if len(ts) == 0 {
		return false
	}
	p, ok := ts[0].(*token.Punct)
	return ok && p.Ch == '<'
}

// expandPaste rewrites a `[< ... >]` group into a single identifier. The text
// of every identifier, literal, and underscore inside contributes to the
// name; parenthesized and invisible sub-groups are skipped. The synthesized
// identifier carries the position of the first consumed token.
func expandPaste(g *token.Group) (*token.Ident, *diag.SyntaxError) {
	cur := token.NewCursor(g.Stream)
	cur.Next() // leading `<`

	var name strings.Builder
	anchor := token.NoPos
	for {
		t := cur.Next()
		if t == nil {
			return nil, diag.New(g.Pos(), "Expected '>'")
		}
		if p, ok := t.(*token.Punct); ok && p.Ch == '>' {
			break
		}
		if !anchor.IsValid() {
			anchor = t.Pos()
		}
		switch tt := t.(type) {
		case *token.Ident:
			name.WriteString(tt.Name)
		case *token.Lit:
			name.WriteString(tt.Text)
		case *token.Punct:
			if tt.Ch == '_' {
				name.WriteString("_")
			}
		}
	}
	if extra := cur.Next(); extra != nil {
		return nil, diag.New(extra.Pos(), "Expected nothing after '>'")
	}
	if !anchor.IsValid() {
		anchor = g.Pos()
	}
	return token.NewIdent(name.String(), anchor), nil
}

// segment is one piece of an enumeration naming pattern: either literal text
// or the `@` placeholder to be substituted by the item ordinal.
type segment struct {
	text        string
	placeholder bool
}

// apply builds the identifier text for item ordinal i, concatenating segments
// in written order. A pattern with no placeholder yields the same text for
// every item; that degenerate case is deliberate.
func apply(pattern []segment, i int) string {
	var b strings.Builder
	for _, s := range pattern {
		if s.placeholder {
			b.WriteString(strconv.Itoa(i))
		} else {
			b.WriteString(s.text)
		}
	}
	return b.String()
}

// expandEnum rewrites a `{< pattern... items >}` group into one synthesized
// identifier per item, joined by the original comma tokens.
func expandEnum(g *token.Group) (token.Stream, *diag.SyntaxError) {
	cur := token.NewCursor(g.Stream)
	cur.Next() // leading `<`

	pattern, err := parsePattern(cur, g.Pos())
	if err != nil {
		return nil, err
	}
	return parseItems(cur, g, pattern)
}

// parsePattern parses the optional naming pattern and the exactly-three dots
// that end it. With no pattern the dots must come first.
func parsePattern(cur *token.Cursor, groupPos token.Pos) ([]segment, *diag.SyntaxError) {
	var pattern []segment
	for {
		t := cur.Peek()
		if t == nil {
			if len(pattern) == 0 {
				return nil, diag.New(groupPos, "Expected identifier pattern OR three dots before ident list")
			}
			return nil, diag.New(groupPos, "Expected three dots to end pattern")
		}
		if isDot(t) {
			if err := expectThreeDots(cur, len(pattern) > 0, groupPos); err != nil {
				return nil, err
			}
			return pattern, nil
		}
		segs, ok := patternSegments(t)
		if !ok {
			if len(pattern) == 0 {
				return nil, diag.New(t.Pos(), "Expected identifier pattern OR three dots before ident list")
			}
			return nil, diag.New(t.Pos(), "Expected three dots to end pattern")
		}
		cur.Next()
		pattern = append(pattern, segs...)
	}
}

// patternSegments converts one token into pattern segments: identifiers and
// literals contribute text, `@` contributes a placeholder, and invisible
// groups are unwrapped with their contents folded in. Any other token is not
// part of a pattern.
func patternSegments(t token.Tree) ([]segment, bool) {
	switch tt := t.(type) {
	case *token.Ident:
		return []segment{{text: tt.Name}}, true
	case *token.Lit:
		return []segment{{text: tt.Text}}, true
	case *token.Punct:
		if tt.Ch == '@' {
			return []segment{{placeholder: true}}, true
		}
		return nil, false
	case *token.Group:
		if tt.Delim != token.None {
			return nil, false
		}
		var segs []segment
		for _, inner := range tt.Stream {
			s, ok := patternSegments(inner)
			if !ok {
				return nil, false
			}
			segs = append(segs, s...)
		}
		return segs, true
	default:
		return nil, false
	}
}

// isDot reports whether the token is the punctuation `.`.
func isDot(t token.Tree) bool {
	p, ok := t.(*token.Punct)
	return ok && p.Ch == '.'
}

// expectThreeDots consumes exactly three consecutive `.` tokens. The cursor
// is positioned at the first dot.
func expectThreeDots(cur *token.Cursor, hadPattern bool, groupPos token.Pos) *diag.SyntaxError {
	msg := "Expected three dots before ident list"
	if hadPattern {
		msg = "Expected three dots to end pattern"
	}
	for i := 0; i < 3; i++ {
		t := cur.Next()
		if t == nil {
			return diag.New(groupPos, msg)
		}
		if !isDot(t) {
			return diag.New(t.Pos(), msg)
		}
	}
	// A fourth dot means too many.
	if t := cur.Peek(); t != nil && isDot(t) {
		return diag.New(t.Pos(), msg)
	}
	return nil
}

// parseItems parses the comma-separated item list up to the closing `>` and
// synthesizes one identifier per item, preserving the original commas.
func parseItems(cur *token.Cursor, g *token.Group, pattern []segment) (token.Stream, *diag.SyntaxError) {
	type item struct {
		anchor token.Pos
		tokens int
	}
	var items []item
	var commas []*token.Punct
	current := item{anchor: token.NoPos}

	for {
		t := cur.Next()
		if t == nil {
			return nil, diag.New(g.Pos(), "Expected '>'")
		}
		if p, ok := t.(*token.Punct); ok {
			if p.Ch == '>' {
				break
			}
			if p.Ch == ',' {
				items = append(items, current)
				commas = append(commas, p)
				current = item{anchor: token.NoPos}
				continue
			}
		}
		if current.tokens == 0 {
			current.anchor = t.Pos()
		}
		current.tokens++
	}
	if extra := cur.Next(); extra != nil {
		return nil, diag.New(extra.Pos(), "Expected nothing after '>'")
	}
	// The final item exists unless the whole list was empty.
	if current.tokens > 0 || len(commas) > 0 {
		items = append(items, current)
	}

	out := make(token.Stream, 0, 2*len(items))
	for i, it := range items {
		name := apply(pattern, i)
		if len(pattern) == 0 {
			name = "T" + strconv.Itoa(i)
		}
		anchor := it.anchor
		if !anchor.IsValid() {
			anchor = g.Pos()
		}
		out = append(out, token.NewIdent(name, anchor))
		if i < len(commas) {
			out = append(out, commas[i])
		}
	}
	return out, nil
}
