package utiny

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kolkov/utiny/internal/ast"
	"github.com/kolkov/utiny/internal/lexer"
	"github.com/kolkov/utiny/internal/parser"
	"github.com/kolkov/utiny/internal/query"
	"github.com/kolkov/utiny/internal/token"
)

// Version is the utiny version string.
const Version = "0.1.0"

// Parse parses TINY source code and prints its syntax tree.
//
// Parameters:
//   - src: TINY source code
//   - config: parse configuration (can be nil for defaults)
//
// Syntax errors are reported through the Result, never through err.
// err is a *ResourceError when the tree exceeds config.MaxNodes.
//
// Example:
//
//	res, _ := utiny.Parse("x -= 5", nil)
//	fmt.Print(res.Tree)
//	// Assign to: x
//	//   Op: -
//	//     Id: x
//	//     Const: 5
func Parse(src string, config *Config) (*Result, error) {
	return parse("", []byte(src), resolve(config))
}

// ParseFile reads and parses a TINY source file. When path has no
// extension, config.Extension (default ".tny") is appended first.
// The file is read completely and closed before parsing.
//
// err is a *SourceError when the file cannot be read and a
// *ResourceError when the tree exceeds config.MaxNodes.
func ParseFile(path string, config *Config) (*Result, error) {
	cfg := resolve(config)
	path = SourcePath(path, cfg.Extension)

	src, err := os.ReadFile(path)
	if err != nil {
		cfg.Logger.Debug("read failed", "source", path, "err", err)
		return nil, &SourceError{Path: path, Err: err}
	}
	return parse(path, src, cfg)
}

// SourcePath returns path with ext appended if path has no extension.
func SourcePath(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}

func parse(name string, src []byte, cfg Config) (*Result, error) {
	p := parser.New(src, cfg.MaxNodes)
	prog := p.ParseProgram()
	prog.Filename = name

	if p.Exhausted() {
		cfg.Logger.Warn("node limit exceeded", "source", name, "limit", cfg.MaxNodes)
		return nil, &ResourceError{Source: name, Limit: cfg.MaxNodes}
	}

	var sb strings.Builder
	printer := ast.NewPrinter(&sb)
	printer.SetIndent(cfg.Indent)
	_ = printer.Print(prog) // strings.Builder never fails

	res := &Result{
		Tree:        sb.String(),
		Diagnostics: diagnostics(p.Errors()),
		Nodes:       p.Nodes(),
		program:     prog,
	}
	cfg.Logger.Debug("parsed", "source", name, "nodes", res.Nodes, "diagnostics", len(res.Diagnostics))
	return res, nil
}

// diagnostics converts parser errors to the public type.
func diagnostics(errs parser.ErrorList) []Diagnostic {
	if len(errs) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(errs))
	for i, e := range errs {
		out[i] = Diagnostic{
			Line:    e.Pos.Line,
			Column:  e.Pos.Column,
			Message: e.Message,
		}
	}
	return out
}

// TokenInfo describes one scanned token.
type TokenInfo struct {
	Line   int    // 1-based line number
	Column int    // 1-based column number
	Kind   string // Keyword or symbol spelling, or EOF, ERROR, ID, NUM
	Text   string // Rendering used in listings and diagnostics
}

func (t TokenInfo) String() string {
	return fmt.Sprintf("%d: %s", t.Line, t.Text)
}

// Tokenize scans src and returns its tokens, ending with EOF.
func Tokenize(src string) []TokenInfo {
	lex := lexer.NewFromString(src)
	var toks []TokenInfo
	for {
		tok := lex.Scan()
		toks = append(toks, TokenInfo{
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
			Kind:   tok.Type.String(),
			Text:   tok.String(),
		})
		if tok.Type == token.EOF {
			return toks
		}
	}
}

// patterns caches the expressions passed to Filter.
var patterns = query.NewRegexCache(64)

// Filter keeps the lines of a tree listing that match the regular
// expression pattern.
//
// Example:
//
//	ids, _ := utiny.Filter(res.Tree, `^\s*Id: `)
func Filter(tree, pattern string) (string, error) {
	out, err := patterns.Filter(tree, pattern)
	if err != nil {
		return "", fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return out, nil
}
