package token

import "fmt"

// Describe renders a scanned token for listings and diagnostics.
//
//	reserved words   reserved word: <lexeme>
//	symbols          the symbol itself (ASSIGN renders as "=")
//	EOF              EOF
//	NUM              NUM, val= <lexeme>
//	ID               ID, name= <lexeme>
//	ERROR            ERROR: <lexeme>
//
// Every declared kind has a rendering; Describe panics on anything else.
func Describe(t Token, lexeme string) string {
	switch {
	case t.IsKeyword():
		return "reserved word: " + lexeme
	case t == ASSIGN:
		return "="
	case t.IsOperator():
		return names[t]
	}

	switch t {
	case EOF:
		return "EOF"
	case NUM:
		return "NUM, val= " + lexeme
	case ID:
		return "ID, name= " + lexeme
	case ERROR:
		return "ERROR: " + lexeme
	}
	panic(fmt.Sprintf("token: no rendering for %s", t))
}
