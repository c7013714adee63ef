package lit

import (
	"testing"

	"github.com/macroforge/macrokit/token"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantKind   Kind
		wantSuffix string
		wantErr    bool
	}{
		{name: "unsuffixed int", text: "42", wantKind: Int},
		{name: "suffixed int", text: "42i32", wantKind: Int, wantSuffix: "i32"},
		{name: "unsigned suffix", text: "255u8", wantKind: Int, wantSuffix: "u8"},
		{name: "pointer size suffix", text: "7usize", wantKind: Int, wantSuffix: "usize"},
		{name: "hex with suffix", text: "0xFFu8", wantKind: Int, wantSuffix: "u8"},
		{name: "binary", text: "0b1010", wantKind: Int},
		{name: "octal", text: "0o777", wantKind: Int},
		{name: "digit separators", text: "1_000_000", wantKind: Int},
		{name: "unsuffixed float", text: "3.14", wantKind: Float},
		{name: "suffixed float", text: "3.14f32", wantKind: Float, wantSuffix: "f32"},
		{name: "float by suffix alone", text: "1f64", wantKind: Float, wantSuffix: "f64"},
		{name: "exponent", text: "1e5", wantKind: Float},
		{name: "signed exponent", text: "2.5e-10", wantKind: Float},
		{name: "string", text: `"42"`, wantKind: Str},
		{name: "raw string", text: `r"raw"`, wantKind: Str},
		{name: "hashed raw string", text: `r#"raw"#`, wantKind: Str},
		{name: "byte string", text: `b"bytes"`, wantKind: ByteStr},
		{name: "raw byte string", text: `br"bytes"`, wantKind: ByteStr},
		{name: "c string", text: `c"text"`, wantKind: CStr},
		{name: "char", text: "'a'", wantKind: Char},
		{name: "byte char", text: "b'a'", wantKind: Byte},
		{name: "true", text: "true", wantKind: Bool},
		{name: "false", text: "false", wantKind: Bool},
		{name: "empty", text: "", wantErr: true},
		{name: "bare ident", text: "abc", wantErr: true},
		{name: "double dot", text: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, token.NoPos)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Parse(%q).Kind = %v, want %v", tt.text, got.Kind, tt.wantKind)
			}
			if got.Suffix != tt.wantSuffix {
				t.Errorf("Parse(%q).Suffix = %q, want %q", tt.text, got.Suffix, tt.wantSuffix)
			}
			if got.Text != tt.text {
				t.Errorf("Parse(%q).Text = %q, raw text must be preserved", tt.text, got.Text)
			}
		})
	}
}

func TestParseKeepsPosition(t *testing.T) {
	pos := token.Pos{Offset: 12, Line: 2, Column: 5}
	got, err := Parse("42i32", pos)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.Pos != pos {
		t.Errorf("Parse().Pos = %v, want %v", got.Pos, pos)
	}
}
