package macrokit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macroforge/macrokit/diag"
	"github.com/macroforge/macrokit/lexer"
	"github.com/macroforge/macrokit/token"
)

func TestIdentsSuccess(t *testing.T) {
	stream, err := lexer.Lex("struct [< Foo Bar >] ;")
	require.NoError(t, err)
	out := Idents(stream)
	assert.Equal(t, "struct FooBar ;", out.String())
}

func TestIdentsErrorBecomesDiagnosticStream(t *testing.T) {
	stream, err := lexer.Lex("[< a > b ]")
	require.NoError(t, err)
	out := Idents(stream)
	assert.Equal(t, `:: core :: compile_error ! ("Expected nothing after '>'")`, out.String())
}

func TestMatchLitSuccess(t *testing.T) {
	stream, err := lexer.Lex(`42 { i32 => A , int => B }`)
	require.NoError(t, err)
	out := MatchLit(stream)
	assert.Equal(t, "B", out.String())
}

func TestMatchLitErrorBecomesDiagnosticStream(t *testing.T) {
	stream, err := lexer.Lex(`3.14f32 { int => A }`)
	require.NoError(t, err)
	out := MatchLit(stream)
	assert.Equal(t, `:: core :: compile_error ! ("Unmatched literal type")`, out.String())
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{"idents", "match_lit"} {
		_, ok := Lookup(name)
		assert.True(t, ok, "built-in macro %q missing", name)
	}
	_, ok := Lookup("nope")
	assert.False(t, ok)

	Register("noop", func(ts token.Stream) (token.Stream, *diag.SyntaxError) {
		return ts, nil
	})
	m, ok := Lookup("noop")
	require.True(t, ok)

	in := token.Stream{token.NewIdent("x", token.NoPos)}
	out, serr := m(in)
	require.Nil(t, serr)
	assert.True(t, in.Equal(out))

	assert.Contains(t, Names(), "noop")
}
