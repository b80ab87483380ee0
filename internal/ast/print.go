package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kolkov/utiny/internal/token"
)

// DefaultIndent is the indentation unit written per tree level.
const DefaultIndent = "  "

// Printer writes the indented tree listing of a syntax tree:
//
//	Read: x
//	If
//	  Op: >
//	    Id: x
//	    Const: 0
//	  Write
//	    Id: x
//
// Each node prints its label on one line, then its children one level
// deeper in declaration order, then the statements that follow it in the
// same sequence at its own level. Absent children are skipped.
type Printer struct {
	w      io.Writer
	indent string
	depth  int
	err    error
}

// NewPrinter creates a new Printer that writes to w using DefaultIndent.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: DefaultIndent}
}

// SetIndent changes the indentation unit.
func (p *Printer) SetIndent(unit string) {
	p.indent = unit
}

// Print writes the listing of node. node may be a *Program, a statement
// or an expression.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// PrintStmts writes the listing of a statement sequence.
func (p *Printer) PrintStmts(list []Stmt) error {
	p.printStmts(list)
	return p.err
}

// Sprint returns the listing of node as a string.
func Sprint(node Node) string {
	var sb strings.Builder
	_ = NewPrinter(&sb).Print(node) // strings.Builder never fails
	return sb.String()
}

func (p *Printer) line(label string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, strings.Repeat(p.indent, p.depth)+label+"\n")
}

func (p *Printer) printStmts(list []Stmt) {
	for _, s := range list {
		p.printNode(s)
	}
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		return
	}
	if prog, ok := node.(*Program); ok {
		p.printStmts(prog.Stmts)
		return
	}

	p.line(Label(node))
	p.depth++
	defer func() { p.depth-- }()

	switch n := node.(type) {
	case *IfStmt:
		p.printNode(n.Cond)
		p.printStmts(n.Then)
		p.printStmts(n.Else)
	case *RepeatStmt:
		p.printStmts(n.Body)
		p.printNode(n.Cond)
	case *DoWhileStmt:
		p.printStmts(n.Body)
		p.printNode(n.Cond)
	case *ForStmt:
		if n.Init != nil {
			p.printNode(n.Init)
		}
		if n.Bound != nil {
			p.printNode(n.Bound)
		}
		p.printStmts(n.Body)
	case *BoundClause:
		p.printNode(n.Limit)
	case *AssignStmt:
		p.printNode(n.Value)
	case *WriteStmt:
		p.printNode(n.Value)
	case *LogicalExpr:
		p.printNode(n.Left)
		p.printNode(n.Right)
	case *BinaryExpr:
		p.printNode(n.Left)
		p.printNode(n.Right)
	case *SetExpr:
		p.printNode(n.Left)
		p.printNode(n.Right)
	case *ClosureExpr:
		p.printNode(n.Operand)
	}
}

// Label returns the one-line listing label of a node, without indentation.
func Label(node Node) string {
	switch n := node.(type) {
	case *Program:
		return "Program"
	case *IfStmt:
		return "If"
	case *RepeatStmt:
		return "Repeat"
	case *AssignStmt:
		return "Assign to: " + n.Name
	case *ReadStmt:
		return "Read: " + n.Name
	case *WriteStmt:
		return "Write"
	case *DoWhileStmt:
		return "Do"
	case *ForStmt:
		return "For"
	case *BoundClause:
		if n.Down {
			return "downto"
		}
		return "to"
	case *LogicalExpr:
		if n.Op == token.OR {
			return "Or"
		}
		return "And"
	case *BinaryExpr:
		return "Op: " + token.Describe(n.Op, "")
	case *SetExpr:
		return "Lop: " + token.Describe(n.Op, "")
	case *ClosureExpr:
		return "Lop: " + token.Describe(token.CLOSURE, "")
	case *NumLit:
		return "Const: " + strconv.Itoa(n.Value)
	case *Ident:
		return "Id: " + n.Name
	default:
		return fmt.Sprintf("<%T>", node)
	}
}
