package matchlit

import "github.com/macroforge/macrokit/lit"

// sign constrains the signedness a numeric suffix must declare.
type sign int

const (
	signAny sign = iota
	signSigned
	signUnsigned
)

// Width of a numeric suffix; widthSize stands for the pointer-size suffixes
// isize/usize, widthAny accepts every width.
const (
	widthAny  = 0
	widthSize = -1
)

// suffixRule constrains the numeric type suffix of a scrutinee.
type suffixRule int

const (
	suffixIgnored suffixRule = iota // non-numeric families, and the `_` wildcard
	suffixAnyOrNone                 // suffixed or not, e.g. `int`
	suffixNone                      // unsuffixed only, e.g. `int_`
	suffixRequired                  // must carry a suffix satisfying sign/width
)

// matcher is one row of the tag vocabulary: the literal kinds it accepts
// structurally plus the suffix constraint for numeric literals. The table is
// data so evaluation stays a single uniform check.
type matcher struct {
	kinds  []lit.Kind
	suffix suffixRule
	sign   sign
	width  int
}

// matchers is the closed matcher-tag vocabulary, keyed by the branch
// identifier as written.
var matchers = map[string]matcher{
	// Wildcard: every literal kind, any suffix.
	"_": {kinds: nil, suffix: suffixIgnored},

	// Booleans.
	"bool":     {kinds: []lit.Kind{lit.Bool}},
	"boollike": {kinds: []lit.Kind{lit.Bool}},

	// Integers.
	"int":     {kinds: []lit.Kind{lit.Int}, suffix: suffixAnyOrNone},
	"intlike": {kinds: []lit.Kind{lit.Int}, suffix: suffixAnyOrNone},
	"int_":    {kinds: []lit.Kind{lit.Int}, suffix: suffixNone},
	"int8":    {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, width: 8},
	"int16":   {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, width: 16},
	"int32":   {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, width: 32},
	"int64":   {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, width: 64},
	"int128":  {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, width: 128},
	"size":    {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, width: widthSize},
	"sint":    {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signSigned},
	"i8":      {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signSigned, width: 8},
	"i16":     {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signSigned, width: 16},
	"i32":     {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signSigned, width: 32},
	"i64":     {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signSigned, width: 64},
	"i128":    {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signSigned, width: 128},
	"isize":   {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signSigned, width: widthSize},
	"uint":    {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signUnsigned},
	"u8":      {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signUnsigned, width: 8},
	"u16":     {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signUnsigned, width: 16},
	"u32":     {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signUnsigned, width: 32},
	"u64":     {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signUnsigned, width: 64},
	"u128":    {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signUnsigned, width: 128},
	"usize":   {kinds: []lit.Kind{lit.Int}, suffix: suffixRequired, sign: signUnsigned, width: widthSize},

	// Floats.
	"float":     {kinds: []lit.Kind{lit.Float}, suffix: suffixAnyOrNone},
	"floatlike": {kinds: []lit.Kind{lit.Float}, suffix: suffixAnyOrNone},
	"float_":    {kinds: []lit.Kind{lit.Float}, suffix: suffixNone},
	"f32":       {kinds: []lit.Kind{lit.Float}, suffix: suffixRequired, width: 32},
	"f64":       {kinds: []lit.Kind{lit.Float}, suffix: suffixRequired, width: 64},

	// Characters.
	"charlike": {kinds: []lit.Kind{lit.Char, lit.Byte}},
	"char":     {kinds: []lit.Kind{lit.Char}},
	"byte":     {kinds: []lit.Kind{lit.Byte}},

	// Strings.
	"stringlike": {kinds: []lit.Kind{lit.Str, lit.ByteStr, lit.CStr}},
	"bytes":      {kinds: []lit.Kind{lit.ByteStr}},
	"bstring":    {kinds: []lit.Kind{lit.ByteStr}},
	"text":       {kinds: []lit.Kind{lit.Str, lit.CStr}},
	"string":     {kinds: []lit.Kind{lit.Str}},
	"cstring":    {kinds: []lit.Kind{lit.CStr}},
}

// matches reports whether the scrutinee satisfies this matcher: structural
// kind first, then the suffix constraint for numeric literals.
func (m matcher) matches(l lit.Lit) bool {
	if m.kinds != nil {
		found := false
		for _, k := range m.kinds {
			if l.Kind == k {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch m.suffix {
	case suffixIgnored:
		return true
	case suffixNone:
		return l.Suffix == ""
	case suffixAnyOrNone:
		if l.Suffix == "" {
			return true
		}
		_, _, ok := parseSuffix(l.Kind, l.Suffix)
		return ok
	case suffixRequired:
		sg, w, ok := parseSuffix(l.Kind, l.Suffix)
		if !ok {
			return false
		}
		if m.sign != signAny && sg != m.sign {
			return false
		}
		if m.width != widthAny && w != m.width {
			return false
		}
		return true
	default:
		return false
	}
}

// parseSuffix decodes a numeric type suffix into signedness and width.
// Integer suffixes: i8..i128, isize, u8..u128, usize. Float suffixes: f32,
// f64 (reported as signAny).
func parseSuffix(kind lit.Kind, suffix string) (sign, int, bool) {
	if suffix == "" {
		return signAny, 0, false
	}
	if kind == lit.Float {
		switch suffix {
		case "f32":
			return signAny, 32, true
		case "f64":
			return signAny, 64, true
		}
		return signAny, 0, false
	}

	var sg sign
	switch suffix[0] {
	case 'i':
		sg = signSigned
	case 'u':
		sg = signUnsigned
	default:
		return signAny, 0, false
	}
	switch suffix[1:] {
	case "8":
		return sg, 8, true
	case "16":
		return sg, 16, true
	case "32":
		return sg, 32, true
	case "64":
		return sg, 64, true
	case "128":
		return sg, 128, true
	case "size":
		return sg, widthSize, true
	}
	return signAny, 0, false
}
