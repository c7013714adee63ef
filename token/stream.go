package token

import "strings"

// Stream is an ordered token sequence. Each invocation of a macro engine
// consumes one stream and produces another; streams are never shared between
// invocations.
type Stream []Tree

// String renders the stream deterministically. Tokens are separated by a
// single space except after Joint punctuation, which stays glued to its
// successor so operators like `=>` survive the round trip.
func (s Stream) String() string {
	var b strings.Builder
	for i, t := range s {
		b.WriteString(t.String())
		if i == len(s)-1 {
			break
		}
		if p, ok := t.(*Punct); ok && p.Spacing == Joint {
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

// Equal reports structural equality ignoring positions: same kinds, same
// text, same spacing and delimiters, recursively.
func (s Stream) Equal(o Stream) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !TreeEqual(s[i], o[i]) {
			return false
		}
	}
	return true
}

// TreeEqual compares two trees structurally, ignoring positions.
func TreeEqual(a, b Tree) bool {
	switch at := a.(type) {
	case *Ident:
		bt, ok := b.(*Ident)
		return ok && at.Name == bt.Name
	case *Lit:
		bt, ok := b.(*Lit)
		return ok && at.Text == bt.Text
	case *Punct:
		bt, ok := b.(*Punct)
		return ok && at.Ch == bt.Ch && at.Spacing == bt.Spacing
	case *Group:
		bt, ok := b.(*Group)
		return ok && at.Delim == bt.Delim && at.Stream.Equal(bt.Stream)
	default:
		return false
	}
}

// Cursor is a raw forward iterator over one stream. Both engines parse with
// nothing more than Next and Peek.
type Cursor struct {
	stream Stream
	idx    int
}

func NewCursor(s Stream) *Cursor { return &Cursor{stream: s} }

// Next returns the next token and advances, or nil at the end.
func (c *Cursor) Next() Tree {
	if c.idx >= len(c.stream) {
		return nil
	}
	t := c.stream[c.idx]
	c.idx++
	return t
}

// Peek returns the next token without advancing, or nil at the end.
func (c *Cursor) Peek() Tree {
	if c.idx >= len(c.stream) {
		return nil
	}
	return c.stream[c.idx]
}

// Rest returns the unconsumed tail of the stream.
func (c *Cursor) Rest() Stream {
	return c.stream[c.idx:]
}
