package utiny

import (
	"fmt"
)

// Diagnostic is one syntax error recorded during a parse.
type Diagnostic struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("syntax error at line %d: %s", d.Line, d.Message)
}

// SyntaxError reports the syntax errors of one parse, in source order.
type SyntaxError struct {
	Diagnostics []Diagnostic
}

func (e *SyntaxError) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return "syntax error"
	case 1:
		return e.Diagnostics[0].String()
	default:
		return fmt.Sprintf("%s (and %d more errors)", e.Diagnostics[0], len(e.Diagnostics)-1)
	}
}

// SourceError reports a source file that could not be read.
type SourceError struct {
	Path string // Path after extension handling
	Err  error  // Underlying error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("cannot read source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ResourceError reports a parse that exceeded Config.MaxNodes.
type ResourceError struct {
	Source string // File name, empty for in-memory source
	Limit  int    // The node budget
}

func (e *ResourceError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: syntax tree exceeds %d nodes", e.Source, e.Limit)
	}
	return fmt.Sprintf("syntax tree exceeds %d nodes", e.Limit)
}
