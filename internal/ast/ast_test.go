package ast_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kolkov/utiny/internal/ast"
	"github.com/kolkov/utiny/internal/token"
)

func id(name string) *ast.Ident  { return &ast.Ident{Name: name} }
func num(v int) *ast.NumLit      { return &ast.NumLit{Value: v} }
func op(o token.Token, l, r ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: o, Left: l, Right: r}
}

// TestNodeInterface verifies all node types implement Node.
func TestNodeInterface(t *testing.T) {
	pos := token.Position{Line: 2, Column: 3, Offset: 9}
	nodes := []ast.Node{
		&ast.IfStmt{BaseStmt: ast.MakeBaseStmt(pos, pos)},
		&ast.RepeatStmt{BaseStmt: ast.MakeBaseStmt(pos, pos)},
		&ast.DoWhileStmt{BaseStmt: ast.MakeBaseStmt(pos, pos)},
		&ast.ForStmt{BaseStmt: ast.MakeBaseStmt(pos, pos)},
		&ast.BoundClause{BaseStmt: ast.MakeBaseStmt(pos, pos)},
		&ast.AssignStmt{BaseStmt: ast.MakeBaseStmt(pos, pos)},
		&ast.ReadStmt{BaseStmt: ast.MakeBaseStmt(pos, pos)},
		&ast.WriteStmt{BaseStmt: ast.MakeBaseStmt(pos, pos)},
		&ast.NumLit{BaseExpr: ast.MakeBaseExpr(pos, pos)},
		&ast.Ident{BaseExpr: ast.MakeBaseExpr(pos, pos)},
		&ast.BinaryExpr{BaseExpr: ast.MakeBaseExpr(pos, pos)},
		&ast.SetExpr{BaseExpr: ast.MakeBaseExpr(pos, pos)},
		&ast.ClosureExpr{BaseExpr: ast.MakeBaseExpr(pos, pos)},
		&ast.LogicalExpr{BaseExpr: ast.MakeBaseExpr(pos, pos)},
		&ast.Program{StartPos: pos, EndPos: pos},
	}
	for _, n := range nodes {
		if n.Pos() != pos || n.End() != pos {
			t.Errorf("%T: Pos/End = %v/%v", n, n.Pos(), n.End())
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		node ast.Node
		want string
	}{
		{&ast.IfStmt{}, "If"},
		{&ast.RepeatStmt{}, "Repeat"},
		{&ast.AssignStmt{Name: "x"}, "Assign to: x"},
		{&ast.ReadStmt{Name: "y"}, "Read: y"},
		{&ast.WriteStmt{}, "Write"},
		{&ast.DoWhileStmt{}, "Do"},
		{&ast.ForStmt{}, "For"},
		{&ast.BoundClause{}, "to"},
		{&ast.BoundClause{Down: true}, "downto"},
		{&ast.LogicalExpr{Op: token.AND}, "And"},
		{&ast.LogicalExpr{Op: token.OR}, "Or"},
		{op(token.LTE, nil, nil), "Op: <="},
		{op(token.NE, nil, nil), "Op: <>"},
		{op(token.POWER, nil, nil), "Op: ^"},
		{&ast.SetExpr{Op: token.LINK}, "Lop: &"},
		{&ast.SetExpr{Op: token.LOR}, "Lop: |"},
		{&ast.ClosureExpr{}, "Lop: #"},
		{num(-3), "Const: -3"},
		{id("abc"), "Id: abc"},
	}
	for _, tt := range tests {
		if got := ast.Label(tt.node); got != tt.want {
			t.Errorf("Label(%T) = %q, want %q", tt.node, got, tt.want)
		}
	}
}

func TestPrintProgram(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ReadStmt{Name: "x"},
		&ast.IfStmt{
			Cond: op(token.GT, id("x"), num(0)),
			Then: []ast.Stmt{&ast.WriteStmt{Value: id("x")}},
		},
	}}
	want := "Read: x\n" +
		"If\n" +
		"  Op: >\n" +
		"    Id: x\n" +
		"    Const: 0\n" +
		"  Write\n" +
		"    Id: x\n"
	if got := ast.Sprint(prog); got != want {
		t.Errorf("Sprint() =\n%s\nwant\n%s", got, want)
	}
}

func TestPrintSlotOrder(t *testing.T) {
	ifStmt := &ast.IfStmt{
		Cond: id("c"),
		Then: []ast.Stmt{&ast.ReadStmt{Name: "a"}, &ast.ReadStmt{Name: "b"}},
		Else: []ast.Stmt{&ast.WriteStmt{Value: num(1)}},
	}
	forStmt := &ast.ForStmt{
		Init:  &ast.AssignStmt{Name: "i", Value: num(1)},
		Bound: &ast.BoundClause{Down: true, Limit: num(0)},
		Body:  []ast.Stmt{ifStmt},
	}
	want := `For
  Assign to: i
    Const: 1
  downto
    Const: 0
  If
    Id: c
    Read: a
    Read: b
    Write
      Const: 1
`
	if got := ast.Sprint(forStmt); got != want {
		t.Errorf("Sprint() =\n%s\nwant\n%s", got, want)
	}
}

func TestPrintSkipsMissingChildren(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.IfStmt{Cond: op(token.GT, id("x"), nil)},
		&ast.ForStmt{},
		&ast.AssignStmt{Name: "y"},
		&ast.WriteStmt{Value: &ast.ClosureExpr{}},
	}}
	want := "If\n  Op: >\n    Id: x\nFor\nAssign to: y\nWrite\n  Lop: #\n"
	if got := ast.Sprint(prog); got != want {
		t.Errorf("Sprint() =\n%s\nwant\n%s", got, want)
	}
}

func TestPrintIndentAndDeterminism(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.RepeatStmt{
			Body: []ast.Stmt{&ast.AssignStmt{Name: "x", Value: op(token.MINUS, id("x"), num(1))}},
			Cond: op(token.EQ, id("x"), num(0)),
		},
	}}

	var sb strings.Builder
	p := ast.NewPrinter(&sb)
	p.SetIndent("\t")
	if err := p.Print(prog); err != nil {
		t.Fatal(err)
	}
	want := "Repeat\n\tAssign to: x\n\t\tOp: -\n\t\t\tId: x\n\t\t\tConst: 1\n\tOp: ==\n\t\tId: x\n\t\tConst: 0\n"
	if sb.String() != want {
		t.Errorf("got\n%s\nwant\n%s", sb.String(), want)
	}
	if ast.Sprint(prog) != ast.Sprint(prog) {
		t.Error("Sprint is not deterministic")
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestPrintStickyError(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ReadStmt{Name: "a"}, &ast.ReadStmt{Name: "b"}, &ast.ReadStmt{Name: "c"},
	}}
	w := &failWriter{n: 1}
	err := ast.NewPrinter(w).Print(prog)
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("Print() error = %v, want disk full", err)
	}
}

func TestWalkOrder(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.AssignStmt{Name: "x", Value: &ast.SetExpr{Op: token.LINK, Left: id("a"), Right: id("b")}},
		&ast.WriteStmt{Value: &ast.LogicalExpr{Op: token.OR, Left: id("c"), Right: num(2)}},
	}}
	var labels []string
	ast.Walk(prog, func(n ast.Node) bool {
		labels = append(labels, ast.Label(n))
		return true
	})
	want := []string{"Program", "Assign to: x", "Lop: &", "Id: a", "Id: b", "Write", "Or", "Id: c", "Const: 2"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Errorf("Walk order = %v, want %v", labels, want)
	}
	if got := ast.Count(prog); got != len(want)-1 {
		t.Errorf("Count() = %d, want %d", got, len(want)-1)
	}
}

func TestWalkPrune(t *testing.T) {
	tree := &ast.WriteStmt{Value: op(token.PLUS, id("a"), id("b"))}
	visited := 0
	ast.Walk(tree, func(n ast.Node) bool {
		visited++
		_, isOp := n.(*ast.BinaryExpr)
		return !isOp
	})
	if visited != 2 {
		t.Errorf("visited %d nodes, want 2", visited)
	}
}
