// Package parser provides a TINY recursive descent parser.
package parser

import (
	"fmt"

	"github.com/kolkov/utiny/internal/token"
)

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and includes source position information.
type ParseError struct {
	Pos     token.Position // Position of the offending token
	Message string         // Human-readable error message
	Got     string         // Rendering of the token that was found (optional)
}

// Error returns a formatted error message with the source line.
func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("syntax error at line %d: %s", e.Pos.Line, e.Message)
	}
	return "syntax error: " + e.Message
}

// Line returns the 1-based source line of the error.
func (e *ParseError) Line() int {
	return e.Pos.Line
}

// ErrorList is the ordered diagnostic trail of one parse.
type ErrorList []*ParseError

// Error returns a combined error message for all errors.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(pos token.Position, msg string) {
	*el = append(*el, &ParseError{Pos: pos, Message: msg})
}

// Err returns an error if there are any errors, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// errorf creates a ParseError at the given position with formatted message.
func errorf(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// unexpectedError creates a ParseError for a token no production accepts.
func unexpectedError(pos token.Position, got string) *ParseError {
	return &ParseError{
		Pos:     pos,
		Message: "unexpected token -> " + got,
		Got:     got,
	}
}
