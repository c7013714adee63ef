package matchlit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macroforge/macrokit/lexer"
	"github.com/macroforge/macrokit/token"
)

// expand lexes the input and runs the engine.
func expand(t *testing.T, input string) (token.Stream, error) {
	t.Helper()
	stream, err := lexer.Lex(input)
	require.NoError(t, err, "lexing %q", input)
	out, serr := Expand(stream)
	if serr != nil {
		return nil, serr
	}
	return out, nil
}

func TestExpandDispatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "int by kind", input: `42 { int => A , string => B }`, want: "A"},
		{name: "string by kind", input: `"42" { int => A , string => B }`, want: "B"},
		{name: "unsuffixed never matches width tag", input: `42 { i32 => A , int => B }`, want: "B"},
		{name: "suffixed matches width tag first", input: `42i32 { i32 => A , int => B }`, want: "A"},
		{name: "declaration order wins", input: `42i32 { int => B , i32 => A }`, want: "B"},
		{name: "width tag ignores signedness", input: `42u8 { int8 => A , int => B }`, want: "A"},
		{name: "signed tag rejects unsigned", input: `42u8 { i8 => A , u8 => B }`, want: "B"},
		{name: "unsuffixed-only tag", input: `42i32 { int_ => A , int => B }`, want: "B"},
		{name: "pointer size", input: `42usize { usize => A , int => B }`, want: "A"},
		{name: "float", input: `3.14 { int => A , float => B }`, want: "B"},
		{name: "float suffix", input: `1f64 { f32 => A , f64 => B }`, want: "B"},
		{name: "bool via true ident", input: `true { bool => A , int => B }`, want: "A"},
		{name: "bool via false ident", input: `false { boollike => A , _ => B }`, want: "A"},
		{name: "wildcard catches everything", input: `b"x" { int => A , _ => B }`, want: "B"},
		{name: "char family", input: `'a' { byte => A , char => B }`, want: "B"},
		{name: "byte char", input: `b'a' { charlike => A , char => B }`, want: "A"},
		{name: "byte string", input: `b"x" { bytes => A , string => B }`, want: "A"},
		{name: "c string is text", input: `c"x" { text => A , string => B }`, want: "A"},
		{name: "branch tokens pass through verbatim", input: `42 { int => foo ( bar ) + 1 }`, want: "foo (bar) + 1"},
		{name: "empty branch body", input: `42 { int => , string => B }`, want: ""},
		{name: "trailing comma", input: `42 { int => A , }`, want: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := expand(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestExpandInvisibleGroupScrutinee(t *testing.T) {
	// Macro substitution wraps arguments in invisible groups; a single-token
	// wrapper is unwrapped transparently.
	branches, err := lexer.Lex(`{ int => A , string => B }`)
	require.NoError(t, err)
	require.Len(t, branches, 1)

	pos := token.Pos{Offset: 0, Line: 1, Column: 1}
	input := token.Stream{
		token.NewGroup(token.None, token.Stream{token.NewLit("42", pos)}, pos),
		branches[0],
	}
	out, serr := Expand(input)
	require.Nil(t, serr)
	assert.Equal(t, "A", out.String())

	// Nested invisible wrappers unwrap recursively.
	input = token.Stream{
		token.NewGroup(token.None, token.Stream{
			token.NewGroup(token.None, token.Stream{token.NewLit(`"x"`, pos)}, pos),
		}, pos),
		branches[0],
	}
	out, serr = Expand(input)
	require.Nil(t, serr)
	assert.Equal(t, "B", out.String())
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "ident scrutinee", input: `foo { int => A }`, wantMsg: "Expected a literal"},
		{name: "punct scrutinee", input: `+ { int => A }`, wantMsg: "Expected a literal"},
		{name: "missing branch group", input: `42 43`, wantMsg: "Expected match branches wrapped in `{}`"},
		{name: "tokens after branches", input: `42 { int => A } extra`, wantMsg: "Expected nothing after the match branches"},
		{name: "empty input", input: ``, wantMsg: "Expected a literal and then match branches wrapped in `{}`"},
		{name: "missing branches", input: `42`, wantMsg: "Expected a literal and then match branches wrapped in `{}`"},
		{name: "non-ident branch head", input: `42 { 1 => A }`, wantMsg: "Expected a match identifier"},
		{name: "split arrow", input: `42 { int = > A }`, wantMsg: "Expected '=>'"},
		{name: "wrong arrow", input: `42 { int -> A }`, wantMsg: "Expected '=>'"},
		{name: "missing arrow at end", input: `42 { int }`, wantMsg: "Expected '=>'"},
		{name: "unknown tag", input: `42 { wibble => A }`, wantMsg: "Expected a specific literal identifier"},
		{name: "no branch matches", input: `3.14f32 { int => A }`, wantMsg: "Unmatched literal type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expand(t, tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestExpandUnmatchedAnchorsScrutinee(t *testing.T) {
	stream, err := lexer.Lex(`3.14f32 { int => A }`)
	require.NoError(t, err)
	_, serr := Expand(stream)
	require.NotNil(t, serr)
	assert.Equal(t, "Unmatched literal type", serr.Msg)
	assert.Equal(t, 0, serr.Pos.Offset)
	assert.Equal(t, 1, serr.Pos.Column)
}

func TestExpandDeterminism(t *testing.T) {
	const input = `42 { i32 => A , int => B }`
	first, err := expand(t, input)
	require.NoError(t, err)
	second, err := expand(t, input)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
