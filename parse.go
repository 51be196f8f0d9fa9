package gocalc

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingInput   = errors.New("trailing input")
)

type ExprType int

const (
	ExprNumber ExprType = iota
	ExprAdd
	ExprSub
	ExprMul
	ExprDiv
)

func (et ExprType) String() string {
	switch et {
	case ExprNumber:
		return "Number"
	case ExprAdd:
		return "Add"
	case ExprSub:
		return "Sub"
	case ExprMul:
		return "Mul"
	case ExprDiv:
		return "Div"
	default:
		panic(fmt.Sprintf("ExprType.String(): illegal expression type: %d", int(et)))
	}
}

// Expr is a node of the expression tree. Value is only meaningful for
// ExprNumber; Left and Right are only set for the binary operators.
type Expr struct {
	Type  ExprType
	Value uint32
	Left  *Expr
	Right *Expr
}

func Num(n uint32) *Expr {
	return &Expr{Type: ExprNumber, Value: n}
}

func Add(l, r *Expr) *Expr {
	return &Expr{Type: ExprAdd, Left: l, Right: r}
}

func Sub(l, r *Expr) *Expr {
	return &Expr{Type: ExprSub, Left: l, Right: r}
}

func Mul(l, r *Expr) *Expr {
	return &Expr{Type: ExprMul, Left: l, Right: r}
}

func Div(l, r *Expr) *Expr {
	return &Expr{Type: ExprDiv, Left: l, Right: r}
}

var opSymbols = map[ExprType]string{
	ExprAdd: "+",
	ExprSub: "-",
	ExprMul: "*",
	ExprDiv: "/",
}

func (e *Expr) writeTo(buf *bytes.Buffer) {
	if e == nil {
		buf.WriteString("nil")
		return
	}
	if e.Type == ExprNumber {
		fmt.Fprint(buf, e.Value)
		return
	}
	fmt.Fprintf(buf, "(%s ", opSymbols[e.Type])
	e.Left.writeTo(buf)
	buf.WriteByte(' ')
	e.Right.writeTo(buf)
	buf.WriteByte(')')
}

// String renders the tree in prefix form, e.g. "(+ 2 (* 3 4))".
func (e *Expr) String() string {
	var buf bytes.Buffer
	e.writeTo(&buf)
	return buf.String()
}

// Depth returns the height of the tree. A lone number has depth 1.
func (e *Expr) Depth() int {
	type item struct {
		e     *Expr
		depth int
	}
	if e == nil {
		return 0
	}
	depth := 0
	stack := []item{{e, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.depth > depth {
			depth = it.depth
		}
		if it.e.Left != nil {
			stack = append(stack, item{it.e.Left, it.depth + 1})
		}
		if it.e.Right != nil {
			stack = append(stack, item{it.e.Right, it.depth + 1})
		}
	}
	return depth
}

// SyntaxError describes why a token sequence is not a valid expression.
// Token is nil and Pos is -1 when the input ended early.
type SyntaxError struct {
	Err   error
	Token *Token
	Pos   int
}

func (e *SyntaxError) Error() string {
	if e.Token == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v %v at %d", e.Err, e.Token, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
	}
}

func (p *Parser) NewError(err error) *SyntaxError {
	if p.pos >= len(p.tokens) {
		return &SyntaxError{Err: err, Pos: -1}
	}
	tok := p.tokens[p.pos]
	return &SyntaxError{Err: err, Token: &tok, Pos: tok.Pos}
}

func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// accept consumes the next token when it is one of kinds.
func (p *Parser) accept(kinds ...TokenKind) (TokenKind, bool) {
	tok, ok := p.peek()
	if !ok {
		return 0, false
	}
	for _, k := range kinds {
		if tok.Kind == k {
			p.pos++
			return k, true
		}
	}
	return 0, false
}

func (p *Parser) ParseFactor() (*Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.NewError(ErrUnexpectedEOF)
	}
	if tok.Kind != TokenInteger {
		return nil, p.NewError(ErrUnexpectedToken)
	}
	p.pos++
	return Num(tok.Value), nil
}

func (p *Parser) ParseTerm() (*Expr, error) {
	lhs, err := p.ParseFactor()
	if err != nil {
		return nil, err
	}
	for {
		k, ok := p.accept(TokenStar, TokenSlash)
		if !ok {
			return lhs, nil
		}
		rhs, err := p.ParseFactor()
		if err != nil {
			return nil, err
		}
		if k == TokenStar {
			lhs = Mul(lhs, rhs)
		} else {
			lhs = Div(lhs, rhs)
		}
	}
}

func (p *Parser) ParseExpression() (*Expr, error) {
	lhs, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	for {
		k, ok := p.accept(TokenPlus, TokenMinus)
		if !ok {
			return lhs, nil
		}
		rhs, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		if k == TokenPlus {
			lhs = Add(lhs, rhs)
		} else {
			lhs = Sub(lhs, rhs)
		}
	}
}

// Parse parses exactly one expression and requires every token to be
// consumed.
func (p *Parser) Parse() (*Expr, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, p.NewError(ErrTrailingInput)
	}
	return expr, nil
}

func Parse(tokens []Token) (*Expr, error) {
	return NewParser(tokens).Parse()
}
