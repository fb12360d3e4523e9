package repl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/errors"
	"github.com/sunholo/pylattice/internal/operators"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
	"github.com/sunholo/pylattice/internal/ty/builder"
)

// ExprParser parses the REPL's small type-expression language: a way to
// write down a type form directly, since the kernel itself never parses
// the analyzed language. Grammar:
//
//	union        := intersection ( '|' intersection )*
//	intersection := unary ( '&' unary )*
//	unary        := '~' unary | postfix
//	postfix      := atom ( '(' [ union ( ',' union )* ] ')' )*
//	atom         := 'Any' | 'Unknown' | 'Todo' | 'Never' | 'Unbound' | 'None'
//	              | INT | 'True' | 'False' | STRING | 'b' STRING
//	              | 'Instance' '(' IDENT ')' | 'Class' '(' IDENT ')'
//	              | 'Module' '(' IDENT ')'
//	              | '(' union ( ',' union )* ')'
//	              | IDENT
//
// A bare IDENT resolves to Class(c) if c is a registered class name —
// the type of the name `int` used as a value. A call suffix evaluates
// call(τ, args) through
// internal/operators and substitutes the return type; the TYC reports the
// call produced (revealed types, non-callable diagnostics) accumulate on
// the parser for the caller to drain with Reports.
type ExprParser struct {
	db       *db.DB
	checker  *relations.Checker
	registry *Registry
	ops      *operators.Context
	toks     []token
	pos      int
	reports  []*errors.Report
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokString
	tokBytes
	tokLParen
	tokRParen
	tokComma
	tokPipe
	tokAmp
	tokTilde
)

type token struct {
	kind tokenKind
	text string
	ival int64
}

// NewExprParser creates a parser bound to one DB/Checker/Registry/operators
// context: resolving class names, interning unions/tuples, and evaluating
// call suffixes go through them.
func NewExprParser(d *db.DB, checker *relations.Checker, registry *Registry, ops *operators.Context) *ExprParser {
	return &ExprParser{db: d, checker: checker, registry: registry, ops: ops}
}

// Reports returns the diagnostics the most recent Parse accumulated from
// call suffixes it evaluated.
func (p *ExprParser) Reports() []*errors.Report { return p.reports }

// Parse parses s as a single type expression.
func (p *ExprParser) Parse(s string) (ty.Type, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	p.toks = toks
	p.pos = 0
	p.reports = nil
	t, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("unexpected trailing input at %q", p.peek().text)
	}
	return t, nil
}

func tokenize(s string) ([]token, error) {
	var toks []token
	r := []rune(s)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma})
			i++
		case c == '|':
			toks = append(toks, token{kind: tokPipe})
			i++
		case c == '&':
			toks = append(toks, token{kind: tokAmp})
			i++
		case c == '~':
			toks = append(toks, token{kind: tokTilde})
			i++
		case c == '"':
			lit, n, err := scanString(r[i:])
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokString, text: lit})
			i += n
		case (c == 'b' || c == 'B') && i+1 < len(r) && r[i+1] == '"':
			lit, n, err := scanString(r[i+1:])
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokBytes, text: lit})
			i += n + 1
		case unicode.IsDigit(c) || (c == '-' && i+1 < len(r) && unicode.IsDigit(r[i+1])):
			start := i
			i++
			for i < len(r) && unicode.IsDigit(r[i]) {
				i++
			}
			text := string(r[start:i])
			v, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid integer literal %q: %w", text, err)
			}
			toks = append(toks, token{kind: tokInt, text: text, ival: v})
		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < len(r) && (unicode.IsLetter(r[i]) || unicode.IsDigit(r[i]) || r[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(r[start:i])})
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

// scanString reads a double-quoted string literal starting at r[0] == '"',
// returning its unescaped contents and the number of runes consumed.
func scanString(r []rune) (string, int, error) {
	if len(r) == 0 || r[0] != '"' {
		return "", 0, fmt.Errorf("expected string literal")
	}
	var b strings.Builder
	i := 1
	for i < len(r) {
		c := r[i]
		if c == '"' {
			return b.String(), i + 1, nil
		}
		if c == '\\' && i+1 < len(r) {
			i++
			switch r[i] {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '\\':
				b.WriteRune('\\')
			case '"':
				b.WriteRune('"')
			default:
				b.WriteRune(r[i])
			}
			i++
			continue
		}
		b.WriteRune(c)
		i++
	}
	return "", 0, fmt.Errorf("unterminated string literal")
}

func (p *ExprParser) peek() token { return p.toks[p.pos] }

func (p *ExprParser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *ExprParser) parseUnion() (ty.Type, error) {
	first, err := p.parseIntersection()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPipe {
		return first, nil
	}
	b := builder.NewUnionBuilder(p.db, p.checker)
	b.Add(first)
	for p.peek().kind == tokPipe {
		p.advance()
		next, err := p.parseIntersection()
		if err != nil {
			return nil, err
		}
		b.Add(next)
	}
	return b.Build(), nil
}

func (p *ExprParser) parseIntersection() (ty.Type, error) {
	first, neg, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokAmp {
		if neg {
			return nil, fmt.Errorf("a negative term cannot stand alone outside an intersection")
		}
		return first, nil
	}
	b := builder.NewIntersectionBuilder(p.db, p.checker)
	if neg {
		b.AddNegative(first)
	} else {
		b.AddPositive(first)
	}
	for p.peek().kind == tokAmp {
		p.advance()
		next, negNext, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if negNext {
			b.AddNegative(next)
		} else {
			b.AddPositive(next)
		}
	}
	return b.Build(), nil
}

// parseUnary returns the parsed atom and whether it was negated with '~'.
func (p *ExprParser) parseUnary() (ty.Type, bool, error) {
	if p.peek().kind == tokTilde {
		p.advance()
		t, err := p.parsePostfix()
		return t, true, err
	}
	t, err := p.parsePostfix()
	return t, false, err
}

// parsePostfix parses an atom followed by zero or more call suffixes, each
// evaluated through call(τ, args) with the return type substituted in place
// of the callee.
func (p *ExprParser) parsePostfix() (ty.Type, error) {
	t, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokLParen {
		if p.ops == nil {
			return nil, fmt.Errorf("call expressions are not supported by this parser")
		}
		p.advance()
		var args []ty.Type
		if p.peek().kind != tokRParen {
			for {
				a, err := p.parseUnion()
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.peek().kind != tokComma {
					break
				}
				p.advance()
			}
		}
		if p.peek().kind != tokRParen {
			return nil, fmt.Errorf("expected ')' to close call arguments")
		}
		p.advance()
		ret, reports := p.ops.ReturnTypeResult(p.ops.Call(t, args))
		p.reports = append(p.reports, reports...)
		t = ret
	}
	return t, nil
}

func (p *ExprParser) parseAtom() (ty.Type, error) {
	tok := p.peek()
	switch tok.kind {
	case tokInt:
		p.advance()
		return ty.TIntLiteral{Value: tok.ival}, nil
	case tokString:
		p.advance()
		return ty.TStringLiteral{Value: tok.text}, nil
	case tokBytes:
		p.advance()
		return ty.TBytesLiteral{Value: tok.text}, nil
	case tokLParen:
		return p.parseTuple()
	case tokIdent:
		return p.parseIdentAtom()
	default:
		return nil, fmt.Errorf("expected a type expression, found %q", tok.text)
	}
}

func (p *ExprParser) parseTuple() (ty.Type, error) {
	p.advance() // consume '('
	var elements []ty.Type
	if p.peek().kind != tokRParen {
		for {
			e, err := p.parseUnion()
			if err != nil {
				return nil, err
			}
			elements = append(elements, e)
			if p.peek().kind != tokComma {
				break
			}
			p.advance()
		}
	}
	if p.peek().kind != tokRParen {
		return nil, fmt.Errorf("expected ')' to close tuple")
	}
	p.advance()
	return p.db.InternTuple(elements), nil
}

func (p *ExprParser) parseIdentAtom() (ty.Type, error) {
	tok := p.advance()
	switch tok.text {
	case "Any":
		return ty.Any, nil
	case "Unknown":
		return ty.Unknown, nil
	case "Todo":
		return ty.Todo("requested from REPL"), nil
	case "Never":
		return ty.Never, nil
	case "Unbound":
		return ty.Unbound, nil
	case "None":
		return ty.None, nil
	case "LiteralString":
		return ty.LiteralString, nil
	case "True":
		return ty.TBooleanLiteral{Value: true}, nil
	case "False":
		return ty.TBooleanLiteral{Value: false}, nil
	case "Instance":
		name, err := p.parseParenIdent()
		if err != nil {
			return nil, err
		}
		class, ok := p.registry.Class(name)
		if !ok {
			return nil, fmt.Errorf("unknown class %q", name)
		}
		return ty.Instance(class), nil
	case "Class":
		name, err := p.parseParenIdent()
		if err != nil {
			return nil, err
		}
		class, ok := p.registry.Class(name)
		if !ok {
			return nil, fmt.Errorf("unknown class %q", name)
		}
		return ty.Class(class), nil
	case "Module":
		name, err := p.parseParenIdent()
		if err != nil {
			return nil, err
		}
		mod, ok := p.registry.Module(name)
		if !ok {
			return nil, fmt.Errorf("unknown module %q (define it first with :module)", name)
		}
		return p.db.InternModule(mod), nil
	default:
		if class, ok := p.registry.Class(tok.text); ok {
			return ty.Class(class), nil
		}
		if f, ok := p.registry.Function(tok.text); ok {
			return ty.TFunction{Function: f}, nil
		}
		return nil, fmt.Errorf("unknown name %q (define it first with :class or :func)", tok.text)
	}
}

// parseParenIdent parses "( IDENT )" following a keyword like
// Instance/Class/Module.
func (p *ExprParser) parseParenIdent() (string, error) {
	if p.peek().kind != tokLParen {
		return "", fmt.Errorf("expected '(' after Instance/Class/Module")
	}
	p.advance()
	if p.peek().kind != tokIdent {
		return "", fmt.Errorf("expected a class name")
	}
	name := p.advance().text
	if p.peek().kind != tokRParen {
		return "", fmt.Errorf("expected ')'")
	}
	p.advance()
	return name, nil
}
