// Package export serializes syntax trees to YAML.
//
// Every node becomes a mapping whose first keys are "kind" (the listing
// label without its payload) and "line". Statement sequences become YAML
// sequences and a *ast.Program is its statement sequence. Absent children
// are omitted.
//
//	- kind: Read
//	  line: 1
//	  name: x
//	- kind: Write
//	  line: 1
//	  value:
//	    kind: Id
//	    line: 1
//	    name: x
package export

import (
	"bytes"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/utiny/internal/ast"
	"github.com/kolkov/utiny/internal/token"
)

// Indent is the YAML indentation width.
const Indent = 2

// Encode writes the YAML form of node to w.
func Encode(w io.Writer, node ast.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(Indent)
	if err := enc.Encode(Node(node)); err != nil {
		return err
	}
	return enc.Close()
}

// Marshal returns the YAML form of node.
func Marshal(node ast.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Node builds the YAML document node for a syntax tree node. It returns
// nil for a nil node.
func Node(node ast.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	if prog, ok := node.(*ast.Program); ok {
		return stmts(prog.Stmts)
	}

	m := &mapping{node: &yaml.Node{Kind: yaml.MappingNode}}
	switch n := node.(type) {
	case *ast.IfStmt:
		m.kind("If", n)
		m.expr("cond", n.Cond)
		m.list("then", n.Then)
		m.list("else", n.Else)
	case *ast.RepeatStmt:
		m.kind("Repeat", n)
		m.list("body", n.Body)
		m.expr("cond", n.Cond)
	case *ast.DoWhileStmt:
		m.kind("Do", n)
		m.list("body", n.Body)
		m.expr("cond", n.Cond)
	case *ast.ForStmt:
		m.kind("For", n)
		if n.Init != nil {
			m.child("init", n.Init)
		}
		if n.Bound != nil {
			m.child("bound", n.Bound)
		}
		m.list("body", n.Body)
	case *ast.BoundClause:
		if n.Down {
			m.kind("downto", n)
		} else {
			m.kind("to", n)
		}
		m.expr("limit", n.Limit)
	case *ast.AssignStmt:
		m.kind("Assign", n)
		m.str("name", n.Name)
		m.expr("value", n.Value)
	case *ast.ReadStmt:
		m.kind("Read", n)
		m.str("name", n.Name)
	case *ast.WriteStmt:
		m.kind("Write", n)
		m.expr("value", n.Value)
	case *ast.LogicalExpr:
		m.kind(ast.Label(n), n)
		m.expr("left", n.Left)
		m.expr("right", n.Right)
	case *ast.BinaryExpr:
		m.kind("Op", n)
		m.str("op", n.Op.String())
		m.expr("left", n.Left)
		m.expr("right", n.Right)
	case *ast.SetExpr:
		m.kind("Lop", n)
		m.str("op", n.Op.String())
		m.expr("left", n.Left)
		m.expr("right", n.Right)
	case *ast.ClosureExpr:
		m.kind("Lop", n)
		m.str("op", token.CLOSURE.String())
		m.expr("operand", n.Operand)
	case *ast.NumLit:
		m.kind("Const", n)
		m.scalar("value", "!!int", strconv.Itoa(n.Value))
	case *ast.Ident:
		m.kind("Id", n)
		m.str("name", n.Name)
	}
	return m.node
}

func stmts(list []ast.Stmt) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, s := range list {
		seq.Content = append(seq.Content, Node(s))
	}
	return seq
}

// mapping appends key/value pairs to a YAML mapping node.
type mapping struct {
	node *yaml.Node
}

func (m *mapping) add(key string, value *yaml.Node) {
	m.node.Content = append(m.node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value)
}

func (m *mapping) scalar(key, tag, value string) {
	m.add(key, &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value})
}

func (m *mapping) str(key, value string) {
	m.scalar(key, "!!str", value)
}

func (m *mapping) kind(kind string, n ast.Node) {
	m.str("kind", kind)
	m.scalar("line", "!!int", strconv.Itoa(n.Pos().Line))
}

func (m *mapping) child(key string, n ast.Node) {
	m.add(key, Node(n))
}

func (m *mapping) expr(key string, e ast.Expr) {
	if e != nil {
		m.child(key, e)
	}
}

func (m *mapping) list(key string, list []ast.Stmt) {
	if len(list) > 0 {
		m.add(key, stmts(list))
	}
}
