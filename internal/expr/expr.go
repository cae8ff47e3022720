// Package expr evaluates whitelisted arithmetic expressions over named
// numeric variables. The grammar is limited to +, -, *, /, unary minus,
// parentheses, number literals, and identifiers; there is no function call,
// indexing, or any other construct, so an expression can never execute code.
package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Expr is a parsed expression ready for repeated evaluation.
type Expr struct {
	root node
	src  string
}

// Parse tokenizes and parses an expression into an AST.
func Parse(src string) (*Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", src, err)
	}
	if !p.eof() {
		return nil, fmt.Errorf("parse %q: unexpected %q", src, p.peek().text)
	}
	return &Expr{root: root, src: src}, nil
}

// Eval evaluates the expression with the given variable bindings.
// Unknown variables, division by zero, and non-finite results are errors.
func (e *Expr) Eval(vars map[string]float64) (float64, error) {
	v, err := e.root.eval(vars)
	if err != nil {
		return 0, fmt.Errorf("eval %q: %w", e.src, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("eval %q: non-finite result", e.src)
	}
	return v, nil
}

// Variables returns the set of identifiers the expression references.
func (e *Expr) Variables() []string {
	seen := make(map[string]bool)
	var out []string
	e.root.walk(func(n node) {
		if v, ok := n.(varNode); ok && !seen[string(v)] {
			seen[string(v)] = true
			out = append(out, string(v))
		}
	})
	return out
}

// Eval is a convenience for single-shot parse-and-evaluate.
func Eval(src string, vars map[string]float64) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(vars)
}

// --- AST ---

type node interface {
	eval(vars map[string]float64) (float64, error)
	walk(fn func(node))
}

type numNode float64

func (n numNode) eval(map[string]float64) (float64, error) { return float64(n), nil }
func (n numNode) walk(fn func(node))                       { fn(n) }

type varNode string

func (n varNode) eval(vars map[string]float64) (float64, error) {
	v, ok := vars[string(n)]
	if !ok {
		return 0, fmt.Errorf("unknown variable %q", string(n))
	}
	return v, nil
}
func (n varNode) walk(fn func(node)) { fn(n) }

type unaryNode struct {
	operand node
}

func (n unaryNode) eval(vars map[string]float64) (float64, error) {
	v, err := n.operand.eval(vars)
	return -v, err
}
func (n unaryNode) walk(fn func(node)) { fn(n); n.operand.walk(fn) }

type binaryNode struct {
	op          byte // one of + - * /
	left, right node
}

func (n binaryNode) eval(vars map[string]float64) (float64, error) {
	l, err := n.left.eval(vars)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(vars)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return l / r, nil
	}
	return 0, fmt.Errorf("unknown operator %q", string(n.op))
}
func (n binaryNode) walk(fn func(node)) { fn(n); n.left.walk(fn); n.right.walk(fn) }

// --- Lexer ---

type tokKind int

const (
	tokNum tokKind = iota
	tokIdent
	tokOp    // + - * /
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokKind
	text string
	num  float64
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{kind: tokOp, text: string(c)})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.' || src[j] == '_') {
				j++
			}
			text := strings.ReplaceAll(src[i:j], "_", "")
			n, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q", src[i:j])
			}
			toks = append(toks, token{kind: tokNum, text: src[i:j], num: n})
			i = j
		case isIdentStart(rune(c)):
			j := i
			for j < len(src) && isIdentPart(rune(src[j])) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: src[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q", string(c))
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

// --- Parser (recursive descent, standard precedence) ---

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }
func (p *parser) next() token { t := p.toks[p.pos]; p.pos++; return t }
func (p *parser) eof() bool   { return p.peek().kind == tokEOF }

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.next().text[0]
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "*" || p.peek().text == "/") {
		op := p.next().text[0]
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.peek().kind == tokOp && p.peek().text == "-" {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		return numNode(t.num), nil
	case tokIdent:
		return varNode(t.text), nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.next()
		return inner, nil
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of expression")
	default:
		return nil, fmt.Errorf("unexpected %q", t.text)
	}
}
