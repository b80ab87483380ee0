package utiny

import (
	"github.com/kolkov/utiny/internal/ast"
	"github.com/kolkov/utiny/internal/export"
)

// Result is the outcome of a parse: the printed tree and the diagnostic
// trail. A Result with diagnostics still holds the best-effort tree.
type Result struct {
	// Tree is the indented listing of the syntax tree.
	Tree string

	// Diagnostics lists every syntax error in source order.
	Diagnostics []Diagnostic

	// Nodes is the number of nodes in the tree.
	Nodes int

	program *ast.Program
}

// HadError reports whether any syntax error was recorded.
func (r *Result) HadError() bool {
	return len(r.Diagnostics) > 0
}

// Err returns a *SyntaxError listing all diagnostics, or nil.
func (r *Result) Err() error {
	if !r.HadError() {
		return nil
	}
	return &SyntaxError{Diagnostics: r.Diagnostics}
}

// Program returns the syntax tree.
func (r *Result) Program() *ast.Program {
	return r.program
}

// YAML returns the syntax tree serialized as YAML.
func (r *Result) YAML() ([]byte, error) {
	return export.Marshal(r.program)
}
