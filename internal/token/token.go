// Package token defines the lexical tokens of the TINY language.
package token

import "fmt"

// Token represents a lexical token type.
type Token uint8

const (
	// Book-keeping tokens
	EOF   Token = iota // EOF
	ERROR              // ERROR

	// Reserved words
	keywordStart
	IF     // if
	THEN   // then
	ELSE   // else
	END    // end
	REPEAT // repeat
	UNTIL  // until
	READ   // read
	WRITE  // write
	WHILE  // while
	DO     // do
	FOR    // for
	ENDDO  // enddo
	TO     // to
	DOWNTO // downto
	AND    // and
	OR     // or
	NOT    // not
	keywordEnd

	// Multicharacter tokens
	ID  // ID
	NUM // NUM

	// Special symbols
	operatorStart
	ASSIGN  // :=
	MINUSEQ // -=
	EQ      // ==
	NE      // <>
	LT      // <
	LTE     // <=
	GT      // >
	GTE     // >=
	PLUS    // +
	MINUS   // -
	TIMES   // *
	OVER    // /
	MOD     // %
	POWER   // ^
	LINK    // &
	LOR     // |
	CLOSURE // #
	LPAREN  // (
	RPAREN  // )
	SEMI    // ;
	operatorEnd

	numTokens
)

// MaxReserved is the number of reserved words.
const MaxReserved = int(keywordEnd - keywordStart - 1)

var names = [numTokens]string{
	EOF:   "EOF",
	ERROR: "ERROR",

	IF:     "if",
	THEN:   "then",
	ELSE:   "else",
	END:    "end",
	REPEAT: "repeat",
	UNTIL:  "until",
	READ:   "read",
	WRITE:  "write",
	WHILE:  "while",
	DO:     "do",
	FOR:    "for",
	ENDDO:  "enddo",
	TO:     "to",
	DOWNTO: "downto",
	AND:    "and",
	OR:     "or",
	NOT:    "not",

	ID:  "ID",
	NUM: "NUM",

	ASSIGN:  ":=",
	MINUSEQ: "-=",
	EQ:      "==",
	NE:      "<>",
	LT:      "<",
	LTE:     "<=",
	GT:      ">",
	GTE:     ">=",
	PLUS:    "+",
	MINUS:   "-",
	TIMES:   "*",
	OVER:    "/",
	MOD:     "%",
	POWER:   "^",
	LINK:    "&",
	LOR:     "|",
	CLOSURE: "#",
	LPAREN:  "(",
	RPAREN:  ")",
	SEMI:    ";",
}

// String returns the source spelling of a keyword or symbol, or the
// class name for EOF, ERROR, ID and NUM.
func (t Token) String() string {
	if t < numTokens && names[t] != "" {
		return names[t]
	}
	return fmt.Sprintf("token(%d)", uint8(t))
}

// IsKeyword returns true if the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsOperator returns true if the token is a special symbol.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsRelational returns true for the six comparison operators.
func (t Token) IsRelational() bool {
	switch t {
	case EQ, NE, LT, LTE, GT, GTE:
		return true
	}
	return false
}

// IsValid returns true if t is one of the declared token kinds.
func (t Token) IsValid() bool {
	return t < numTokens && t != keywordStart && t != keywordEnd &&
		t != operatorStart && t != operatorEnd
}

// All returns every declared token kind in declaration order.
func All() []Token {
	all := make([]Token, 0, numTokens)
	for t := Token(0); t < numTokens; t++ {
		if t.IsValid() {
			all = append(all, t)
		}
	}
	return all
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token, MaxReserved)
	for t := keywordStart + 1; t < keywordEnd; t++ {
		keywords[names[t]] = t
	}
}

// Lookup returns the reserved word token for ident, or ID if ident is not
// reserved. Reserved words are case-sensitive.
func Lookup(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return ID
}

// Negate returns the relational operator that yields the opposite truth
// value. Negate is an involution: Negate(Negate(op)) == op. ok is false
// for operators with no counterpart, in which case op is returned as is.
func Negate(op Token) (neg Token, ok bool) {
	switch op {
	case LT:
		return GTE, true
	case GTE:
		return LT, true
	case LTE:
		return GT, true
	case GT:
		return LTE, true
	case EQ:
		return NE, true
	case NE:
		return EQ, true
	default:
		return op, false
	}
}
