package ast

import "github.com/kolkov/utiny/internal/token"

// Program represents a complete TINY program: one statement sequence.
type Program struct {
	// Source file name (for messages), empty for in-memory source.
	Filename string

	// Top-level statements in source order.
	Stmts []Stmt

	// Position information for the entire program.
	StartPos token.Position
	EndPos   token.Position
}

// Pos returns the position of the first token in the program.
func (p *Program) Pos() token.Position { return p.StartPos }

// End returns the position of the EOF token.
func (p *Program) End() token.Position { return p.EndPos }
