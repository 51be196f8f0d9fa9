package gocalc

import (
	"fmt"
)

type TokenKind int

const (
	TokenInteger TokenKind = iota
	TokenIdent
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /
)

func (tk TokenKind) String() string {
	switch tk {
	case TokenInteger:
		return "INTEGER"
	case TokenIdent:
		return "IDENT"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	default:
		panic(fmt.Sprintf("TokenKind.String(): illegal token kind: %d", int(tk)))
	}
}

// Token is a single lexical unit. Value is set for TokenInteger and Name for
// TokenIdent. Pos is the byte offset of the first character in the input.
type Token struct {
	Kind  TokenKind
	Value uint32
	Name  string
	Pos   int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInteger:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Value)
	case TokenIdent:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Name)
	}
	return t.Kind.String()
}
