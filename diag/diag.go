// Package diag builds the diagnostic payloads the macro engines hand back to
// the host compiler. A failed expansion is replaced wholesale by a token
// stream that, once compiled, aborts compilation with the message anchored at
// the offending position.
package diag

import (
	"fmt"
	"strconv"

	"github.com/macroforge/macrokit/token"
)

// SyntaxError is the single error kind the engines produce. It is always
// deterministic for a given input and always recoverable at the boundary of
// one invocation.
type SyntaxError struct {
	Pos token.Pos
	Msg string
}

// New returns a SyntaxError anchored at pos.
func New(pos token.Pos, msg string) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: msg}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Stream synthesizes the error payload: a token sequence invoking the host's
// abort-compilation facility,
//
//	:: core :: compile_error ! ( "msg" )
//
// with every token spanned at the error's position.
func (e *SyntaxError) Stream() token.Stream {
	pos := e.Pos
	return token.Stream{
		token.NewPunct(':', token.Joint, pos),
		token.NewPunct(':', token.Alone, pos),
		token.NewIdent("core", pos),
		token.NewPunct(':', token.Joint, pos),
		token.NewPunct(':', token.Alone, pos),
		token.NewIdent("compile_error", pos),
		token.NewPunct('!', token.Alone, pos),
		token.NewGroup(token.Paren, token.Stream{
			token.NewLit(strconv.Quote(e.Msg), pos),
		}, pos),
	}
}
