package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macroforge/macrokit/token"
)

func TestSyntaxErrorError(t *testing.T) {
	err := New(token.Pos{Offset: 3, Line: 1, Column: 4}, "Expected a literal")
	assert.Equal(t, "1:4: Expected a literal", err.Error())

	err = New(token.NoPos, "Expected '=>'")
	assert.Equal(t, "-: Expected '=>'", err.Error())
}

func TestSyntaxErrorStream(t *testing.T) {
	pos := token.Pos{Offset: 7, Line: 2, Column: 1}
	stream := New(pos, "Unmatched literal type").Stream()

	want := token.Stream{
		token.NewPunct(':', token.Joint, pos),
		token.NewPunct(':', token.Alone, pos),
		token.NewIdent("core", pos),
		token.NewPunct(':', token.Joint, pos),
		token.NewPunct(':', token.Alone, pos),
		token.NewIdent("compile_error", pos),
		token.NewPunct('!', token.Alone, pos),
		token.NewGroup(token.Paren, token.Stream{
			token.NewLit(`"Unmatched literal type"`, pos),
		}, pos),
	}
	require.True(t, stream.Equal(want), "got %s", stream)

	// Every token must be anchored at the error position.
	for _, tok := range stream {
		assert.Equal(t, pos, tok.Pos())
	}

	assert.Equal(t, `:: core :: compile_error ! ("Unmatched literal type")`, stream.String())
}
