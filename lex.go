package gocalc

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
)

// LexError is returned by TokenizeStrict for a character that does not start
// any token.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid character: '%c' (%d)", e.Char, e.Pos)
}

func (e *LexError) Unwrap() error {
	return ErrInvalidCharacter
}

type lexer struct {
	src    string
	pos    int
	width  int
	strict bool
}

func (l *lexer) readRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += n
	l.width = n
	return r, true
}

func (l *lexer) unreadRune() {
	l.pos -= l.width
	l.width = 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func (l *lexer) lexInteger(start int, r rune) Token {
	value := uint32(r - '0')
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		// wraps on overflow
		value = value*10 + uint32(r-'0')
	}
	return Token{Kind: TokenInteger, Value: value, Pos: start}
}

func (l *lexer) lexIdent(start int) Token {
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if !isAlnum(r) {
			l.unreadRune()
			break
		}
	}
	return Token{Kind: TokenIdent, Name: l.src[start:l.pos], Pos: start}
}

func (l *lexer) tokenize() ([]Token, error) {
	var tokens []Token
	for {
		start := l.pos
		r, ok := l.readRune()
		if !ok {
			return tokens, nil
		}

		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r):
			tokens = append(tokens, l.lexInteger(start, r))
		case isAlnum(r):
			tokens = append(tokens, l.lexIdent(start))
		case r == '+':
			tokens = append(tokens, Token{Kind: TokenPlus, Pos: start})
		case r == '-':
			tokens = append(tokens, Token{Kind: TokenMinus, Pos: start})
		case r == '*':
			tokens = append(tokens, Token{Kind: TokenStar, Pos: start})
		case r == '/':
			tokens = append(tokens, Token{Kind: TokenSlash, Pos: start})
		default:
			if l.strict {
				return nil, &LexError{Char: r, Pos: start}
			}
		}
	}
}

// Tokenize splits input into tokens in a single pass. Whitespace and any
// character that does not start a token are dropped, so it never fails.
func Tokenize(input string) []Token {
	l := &lexer{src: input}
	tokens, _ := l.tokenize()
	return tokens
}

// TokenizeStrict is like Tokenize but reports the first unrecognized
// character instead of dropping it.
func TokenizeStrict(input string) ([]Token, error) {
	l := &lexer{src: input, strict: true}
	return l.tokenize()
}
