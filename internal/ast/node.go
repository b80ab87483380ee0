// Package ast defines the abstract syntax tree for TINY programs.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Stmt (interface) - statements
//	│   ├── IfStmt, RepeatStmt, DoWhileStmt, ForStmt - control flow
//	│   ├── AssignStmt, ReadStmt, WriteStmt - simple statements
//	│   └── BoundClause - the "to"/"downto" clause of a for loop
//	├── Expr (interface) - expressions
//	│   ├── NumLit, Ident - leaves
//	│   ├── BinaryExpr - arithmetic and relational operators
//	│   ├── SetExpr, ClosureExpr - the & | and postfix # operators
//	│   └── LogicalExpr - and / or
//	└── Program - the top-level statement sequence
//
// A statement sequence is a []Stmt in source order. Absent children are
// nil; a tree built from malformed input may contain them anywhere.
package ast

import "github.com/kolkov/utiny/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first token belonging to this node.
	Pos() token.Position

	// End returns the position of the first token after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
type BaseExpr struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position of the token after the node
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
type BaseStmt struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position of the token after the node
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) End() token.Position { return b.EndPos }
func (b *BaseStmt) stmtNode()           {}

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end}
}

// MakeBaseStmt creates a BaseStmt with the given positions.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{StartPos: start, EndPos: end}
}
