// Package lexer provides TINY source code tokenization.
package lexer

import (
	"unicode/utf8"

	"github.com/kolkov/utiny/internal/token"
)

// Lexer tokenizes TINY source code.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	offset  int            // Current byte offset
	pos     token.Position // Current position
	nextPos token.Position // Position of next character
	eof     bool           // Set once the source is exhausted
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Token represents a scanned token with its position and lexeme.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
}

// Line returns the 1-based line the token was recognized on.
func (t Token) Line() int {
	return t.Pos.Line
}

// String renders the token the way listings and diagnostics show it.
func (t Token) String() string {
	return token.Describe(t.Type, t.Value)
}

// Scan scans and returns the next token. Once the input is exhausted every
// call returns an EOF token.
func (l *Lexer) Scan() Token {
	for {
		l.skipWhitespace()
		if l.ch != '{' {
			break
		}
		l.skipComment()
	}

	pos := l.pos

	if l.eof {
		return Token{Type: token.EOF, Pos: pos}
	}

	switch l.ch {
	case ':':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.ASSIGN, Pos: pos, Value: ":="}
		}
		return Token{Type: token.ERROR, Pos: pos, Value: ":"}

	case '=':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.EQ, Pos: pos, Value: "=="}
		}
		return Token{Type: token.ERROR, Pos: pos, Value: "="}

	case '<':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.LTE, Pos: pos, Value: "<="}
		}
		if l.ch == '>' {
			l.next()
			return Token{Type: token.NE, Pos: pos, Value: "<>"}
		}
		return Token{Type: token.LT, Pos: pos, Value: "<"}

	case '>':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.GTE, Pos: pos, Value: ">="}
		}
		return Token{Type: token.GT, Pos: pos, Value: ">"}

	case '-':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.MINUSEQ, Pos: pos, Value: "-="}
		}
		return Token{Type: token.MINUS, Pos: pos, Value: "-"}

	case '+':
		return l.single(token.PLUS, pos)
	case '*':
		return l.single(token.TIMES, pos)
	case '/':
		return l.single(token.OVER, pos)
	case '%':
		return l.single(token.MOD, pos)
	case '^':
		return l.single(token.POWER, pos)
	case '&':
		return l.single(token.LINK, pos)
	case '|':
		return l.single(token.LOR, pos)
	case '#':
		return l.single(token.CLOSURE, pos)
	case '(':
		return l.single(token.LPAREN, pos)
	case ')':
		return l.single(token.RPAREN, pos)
	case ';':
		return l.single(token.SEMI, pos)

	default:
		if isDigit(l.ch) {
			return l.scanNumber(pos)
		}
		if isLetter(l.ch) {
			return l.scanIdent(pos)
		}
		return l.scanIllegal(pos)
	}
}

func (l *Lexer) single(t token.Token, pos token.Position) Token {
	ch := l.ch
	l.next()
	return Token{Type: t, Pos: pos, Value: string(ch)}
}

func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset
	for isDigit(l.ch) && !l.eof {
		l.next()
	}
	return Token{Type: token.NUM, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset
	for (isLetter(l.ch) || isDigit(l.ch)) && !l.eof {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.Lookup(name), Pos: pos, Value: name}
}

// scanIllegal consumes one source character, multi-byte runes included,
// and reports it as an ERROR token.
func (l *Lexer) scanIllegal(pos token.Position) Token {
	_, size := utf8.DecodeRune(l.src[pos.Offset:])
	for i := 0; i < size; i++ {
		l.next()
	}
	return Token{Type: token.ERROR, Pos: pos, Value: string(l.src[pos.Offset:l.endOffset()])}
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF, l.pos is not updated, so we use len(l.src); otherwise l.pos.Offset.
func (l *Lexer) endOffset() int {
	if l.eof {
		return len(l.src)
	}
	return l.pos.Offset
}

func (l *Lexer) skipWhitespace() {
	for !l.eof && (l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n') {
		l.next()
	}
}

// skipComment skips a { ... } comment. Comments do not nest; an
// unterminated comment runs to the end of the input.
func (l *Lexer) skipComment() {
	for !l.eof && l.ch != '}' {
		l.next()
	}
	if !l.eof {
		l.next() // consume '}'
	}
}

func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		if !l.eof {
			l.eof = true
			l.ch = 0
			l.pos = l.nextPos
		}
		return
	}

	l.pos = l.nextPos
	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++
	l.nextPos.Offset = l.offset

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
