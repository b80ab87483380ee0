package ast

import "github.com/kolkov/utiny/internal/token"

// NumLit represents an integer literal.
type NumLit struct {
	BaseExpr
	Value int    // Parsed value
	Raw   string // Original source text
}

// Ident represents a variable reference.
type Ident struct {
	BaseExpr
	Name string
}

// BinaryExpr represents an arithmetic or relational operation.
// Examples: a + b, x ^ 2, n <> 0
type BinaryExpr struct {
	BaseExpr
	Left  Expr        // Left operand
	Op    token.Token // PLUS, MINUS, TIMES, OVER, MOD, POWER or a relational operator
	Right Expr        // Right operand
}

// SetExpr represents the binary set operators & (link) and | (lor).
type SetExpr struct {
	BaseExpr
	Left  Expr
	Op    token.Token // LINK or LOR
	Right Expr
}

// ClosureExpr represents the postfix closure operator: a#.
type ClosureExpr struct {
	BaseExpr
	Operand Expr
}

// LogicalExpr represents "a and b" or "a or b".
type LogicalExpr struct {
	BaseExpr
	Left  Expr
	Op    token.Token // AND or OR
	Right Expr
}

// Ensure all expression types implement Expr interface.
var (
	_ Expr = (*NumLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*SetExpr)(nil)
	_ Expr = (*ClosureExpr)(nil)
	_ Expr = (*LogicalExpr)(nil)
)
