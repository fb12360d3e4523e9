package operators

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"github.com/sunholo/pylattice/internal/ty"
)

// Repr implements repr(τ): the literal string the analyzed
// language's repr() builtin would produce, where that value is statically
// known; everything else degrades to Instance(str).
func (c *Context) Repr(t ty.Type) ty.Type {
	switch v := t.(type) {
	case ty.TIntLiteral:
		return ty.TStringLiteral{Value: strconv.FormatInt(v.Value, 10)}
	case ty.TBooleanLiteral:
		word := "False"
		if v.Value {
			word = "True"
		}
		return ty.TStringLiteral{Value: word}
	case ty.TStringLiteral:
		return ty.TStringLiteral{Value: reprEscape(v.Value)}
	case ty.TLiteralString:
		return ty.LiteralString
	default:
		return c.instanceOf(ty.KnownClassStr)
	}
}

// Str implements str(τ): int/bool route through Repr; the
// string-literal forms are identity; everything else degrades to
// Instance(str).
func (c *Context) Str(t ty.Type) ty.Type {
	switch t.(type) {
	case ty.TIntLiteral, ty.TBooleanLiteral:
		return c.Repr(t)
	case ty.TStringLiteral, ty.TLiteralString:
		return t
	default:
		return c.instanceOf(ty.KnownClassStr)
	}
}

// reprEscape quotes s the way the analyzed language's repr() would:
// single-quoted, with backslashes and embedded single quotes escaped.
func reprEscape(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// TruncateForDisplay shortens s to at most maxWidth display columns,
// appending an ellipsis when truncated. It is used when rendering
// "Revealed type is `...`" diagnostic messages so that a
// deeply nested union/intersection type does not blow out a single-line
// diagnostic. Column width is computed with golang.org/x/text/width so
// East Asian wide/fullwidth characters in a str/bytes literal's contents
// count as two columns rather than one.
func TruncateForDisplay(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		w := runeWidth(r)
		if col+w > maxWidth {
			b.WriteRune('…')
			return b.String()
		}
		b.WriteRune(r)
		col += w
	}
	return b.String()
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
