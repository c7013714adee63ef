// Package lit classifies raw literal text into a literal kind plus an
// optional numeric type suffix. The dispatch engine consumes it as a black
// box; it never inspects literal syntax itself.
package lit

import (
	"fmt"
	"strings"

	"github.com/macroforge/macrokit/token"
)

// Kind is the structural class of a literal.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	Char    // 'a'
	Byte    // b'a'
	Str     // "..." or r"..."
	ByteStr // b"..." or br"..."
	CStr    // c"..." or cr"..."
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Char:
		return "char"
	case Byte:
		return "byte"
	case Str:
		return "string"
	case ByteStr:
		return "byte string"
	case CStr:
		return "c string"
	default:
		return "unknown"
	}
}

// Lit is one classified literal value.
type Lit struct {
	Kind   Kind
	Text   string // raw source text, suffix included
	Suffix string // numeric type suffix ("i32", "usize", "f64", ...), empty if none
	Pos    token.Pos
}

// Parse classifies raw literal text. It assumes the text was already accepted
// by the host's lexer as a single literal token; it only decides kind and
// suffix, it does not re-validate escapes or digits.
func Parse(text string, pos token.Pos) (Lit, error) {
	if text == "" {
		return Lit{}, fmt.Errorf("empty literal")
	}

	switch {
	case strings.HasPrefix(text, "\""), strings.HasPrefix(text, "r\""), strings.HasPrefix(text, "r#"):
		return Lit{Kind: Str, Text: text, Pos: pos}, nil
	case strings.HasPrefix(text, "b\""), strings.HasPrefix(text, "br"):
		return Lit{Kind: ByteStr, Text: text, Pos: pos}, nil
	case strings.HasPrefix(text, "c\""), strings.HasPrefix(text, "cr"):
		return Lit{Kind: CStr, Text: text, Pos: pos}, nil
	case strings.HasPrefix(text, "b'"):
		return Lit{Kind: Byte, Text: text, Pos: pos}, nil
	case strings.HasPrefix(text, "'"):
		return Lit{Kind: Char, Text: text, Pos: pos}, nil
	}

	if text == "true" || text == "false" {
		return Lit{Kind: Bool, Text: text, Pos: pos}, nil
	}

	if text[0] >= '0' && text[0] <= '9' {
		return parseNumeric(text, pos)
	}

	return Lit{}, fmt.Errorf("unrecognized literal %q", text)
}

// parseNumeric splits a numeric literal into its digits and type suffix and
// decides between Int and Float. A literal with a `.`, an exponent, or an
// f32/f64 suffix is a float; everything else is an integer.
func parseNumeric(text string, pos token.Pos) (Lit, error) {
	digits := "0123456789_"
	i := 0
	hex := false
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		digits = "0123456789abcdefABCDEF_"
		hex = true
		i = 2
	} else if strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0O") ||
		strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B") {
		i = 2
	}

	isFloat := false
	for i < len(text) {
		c := text[i]
		switch {
		case strings.IndexByte(digits, c) >= 0:
			i++
		case c == '.' && !hex:
			// A second dot ends the number (range syntax is not a literal).
			if isFloat {
				return Lit{}, fmt.Errorf("malformed numeric literal %q", text)
			}
			isFloat = true
			i++
		case (c == 'e' || c == 'E') && !hex && i+1 < len(text) &&
			(text[i+1] == '+' || text[i+1] == '-' || (text[i+1] >= '0' && text[i+1] <= '9')):
			isFloat = true
			i++
			if text[i] == '+' || text[i] == '-' {
				i++
			}
		default:
			goto suffix
		}
	}

suffix:
	suf := text[i:]
	if suf != "" && !isSuffixStart(suf[0]) {
		return Lit{}, fmt.Errorf("malformed numeric literal %q", text)
	}
	kind := Int
	if isFloat || suf == "f32" || suf == "f64" {
		kind = Float
	}
	return Lit{Kind: kind, Text: text, Suffix: suf, Pos: pos}, nil
}

func isSuffixStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
