package ast

// Walk traverses a syntax tree in listing order: a node, then its
// children in declaration order, then the statements after it in the same
// sequence. For each node, it calls fn(node). If fn returns false, the
// children of that node are not visited. Absent children are skipped.
//
// Example: count all identifier references
//
//	count := 0
//	ast.Walk(prog, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkList(n.Stmts, fn)

	case *IfStmt:
		Walk(n.Cond, fn)
		walkList(n.Then, fn)
		walkList(n.Else, fn)

	case *RepeatStmt:
		walkList(n.Body, fn)
		Walk(n.Cond, fn)

	case *DoWhileStmt:
		walkList(n.Body, fn)
		Walk(n.Cond, fn)

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, fn)
		}
		if n.Bound != nil {
			Walk(n.Bound, fn)
		}
		walkList(n.Body, fn)

	case *BoundClause:
		Walk(n.Limit, fn)

	case *AssignStmt:
		Walk(n.Value, fn)

	case *WriteStmt:
		Walk(n.Value, fn)

	case *ReadStmt, *NumLit, *Ident:
		// no children

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *SetExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *LogicalExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *ClosureExpr:
		Walk(n.Operand, fn)
	}
}

func walkList(list []Stmt, fn func(Node) bool) {
	for _, s := range list {
		Walk(s, fn)
	}
}

// Count returns the number of nodes in the tree rooted at node, not
// counting a *Program root.
func Count(node Node) int {
	n := 0
	Walk(node, func(x Node) bool {
		if _, ok := x.(*Program); !ok {
			n++
		}
		return true
	})
	return n
}
