// Package matchlit implements the literal-dispatch engine: it parses
//
//	<literal> { tag1 => tokens1, tag2 => tokens2, ... }
//
// and evaluates to the tokens of the first branch whose matcher tag accepts
// the scrutinee literal's kind and type suffix. Everything resolves before
// the compiled program exists; there is no runtime component.
package matchlit

import (
	"github.com/macroforge/macrokit/diag"
	"github.com/macroforge/macrokit/lit"
	"github.com/macroforge/macrokit/token"
)

// branch is one parsed `tag => tokens` arm, kept in declaration order.
type branch struct {
	tag    string
	m      matcher
	tokens token.Stream
}

// Expand parses the construct and returns the first matching branch's tokens.
// If no branch matches, the whole invocation fails with a diagnostic at the
// scrutinee.
func Expand(ts token.Stream) (token.Stream, *diag.SyntaxError) {
	scrut, branches, err := parse(ts)
	if err != nil {
		return nil, err
	}
	for _, br := range branches {
		if br.m.matches(scrut) {
			return br.tokens, nil
		}
	}
	return nil, diag.New(scrut.Pos, "Unmatched literal type")
}

// parse runs the top-level state machine (Start -> GotLiteral -> GotGroup)
// and then parses the branch group. Any out-of-order or excess token rejects
// immediately.
func parse(ts token.Stream) (lit.Lit, []branch, *diag.SyntaxError) {
	const (
		stateStart = iota
		stateLit
		stateGroup
	)

	var scrut lit.Lit
	var group *token.Group
	state := stateStart
	for _, t := range ts {
		switch state {
		case stateStart:
			l, err := parseLit(t)
			if err != nil {
				return lit.Lit{}, nil, err
			}
			scrut = l
			state = stateLit
		case stateLit:
			g, ok := t.(*token.Group)
			if !ok {
				return lit.Lit{}, nil, diag.New(t.Pos(), "Expected match branches wrapped in `{}`")
			}
			group = g
			state = stateGroup
		case stateGroup:
			return lit.Lit{}, nil, diag.New(t.Pos(), "Expected nothing after the match branches")
		}
	}
	if state != stateGroup {
		return lit.Lit{}, nil, diag.New(token.NoPos, "Expected a literal and then match branches wrapped in `{}`")
	}

	branches, err := parseBranches(group.Stream)
	if err != nil {
		return lit.Lit{}, nil, err
	}
	return scrut, branches, nil
}

// parseLit resolves the leading token to a literal value: a genuine literal
// token, the bare identifiers true/false, or an invisible single-token group
// wrapping either (macro substitution inserts those; they are unwrapped
// transparently).
func parseLit(t token.Tree) (lit.Lit, *diag.SyntaxError) {
	switch tt := t.(type) {
	case *token.Lit:
		l, err := lit.Parse(tt.Text, tt.Pos())
		if err != nil {
			return lit.Lit{}, diag.New(tt.Pos(), "Expected a literal")
		}
		return l, nil

	case *token.Ident:
		if tt.Name == "true" || tt.Name == "false" {
			return lit.Lit{Kind: lit.Bool, Text: tt.Name, Pos: tt.Pos()}, nil
		}
		return lit.Lit{}, diag.New(tt.Pos(), "Expected a literal")

	case *token.Group:
		if tt.Delim == token.None && len(tt.Stream) == 1 {
			return parseLit(tt.Stream[0])
		}
		return lit.Lit{}, diag.New(tt.Pos(), "Expected a literal")

	default:
		return lit.Lit{}, diag.New(t.Pos(), "Expected a literal")
	}
}

// parseBranches repeatedly parses `<tag> => <tokens until comma or end>`.
// The arrow must be the two-character sequence `=` with joint spacing
// followed by `>` with standalone spacing; that spacing is how the host
// lexer transports multi-character operators, so it is checked, not assumed.
func parseBranches(ts token.Stream) ([]branch, *diag.SyntaxError) {
	var branches []branch
	cur := token.NewCursor(ts)
	for {
		head := cur.Next()
		if head == nil {
			return branches, nil
		}
		ident, ok := head.(*token.Ident)
		if !ok {
			return nil, diag.New(head.Pos(), "Expected a match identifier")
		}

		if err := expectArrow(cur); err != nil {
			return nil, err
		}

		var tokens token.Stream
		for {
			t := cur.Next()
			if t == nil {
				break
			}
			if p, ok := t.(*token.Punct); ok && p.Ch == ',' {
				break
			}
			tokens = append(tokens, t)
		}

		m, ok := matchers[ident.Name]
		if !ok {
			return nil, diag.New(ident.Pos(), "Expected a specific literal identifier")
		}
		branches = append(branches, branch{tag: ident.Name, m: m, tokens: tokens})
	}
}

// expectArrow consumes `=`(joint) `>`(alone).
func expectArrow(cur *token.Cursor) *diag.SyntaxError {
	t := cur.Next()
	if t == nil {
		return diag.New(token.NoPos, "Expected '=>'")
	}
	if p, ok := t.(*token.Punct); !ok || p.Ch != '=' || p.Spacing != token.Joint {
		return diag.New(t.Pos(), "Expected '=>'")
	}
	t = cur.Next()
	if t == nil {
		return diag.New(token.NoPos, "Expected '=>'")
	}
	if p, ok := t.(*token.Punct); !ok || p.Ch != '>' || p.Spacing != token.Alone {
		return diag.New(t.Pos(), "Expected '=>'")
	}
	return nil
}
