// Package utiny provides a parser for the extended TINY teaching language.
//
// utiny reads TINY source, builds its syntax tree and renders the tree
// as an indented listing:
//   - if / repeat-until / do-while / for-to-downto statements
//   - and, or, not and the six comparisons
//   - + - * / % ^ arithmetic and the & | # set operators
//   - the -= compound assignment
//
// # Quick Start
//
//	res, err := utiny.Parse("read x; if (x > 0) write x end", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res.Tree)
//
// Output:
//
//	Read: x
//	If
//	  Op: >
//	    Id: x
//	    Const: 0
//	  Write
//	    Id: x
//
// # Error Handling
//
// Syntax errors do not abort a parse. They are collected in
// [Result.Diagnostics] next to the best-effort tree, and [Result.Err]
// reports them as a [SyntaxError]. The error returned by [Parse] and
// [ParseFile] is reserved for failures that leave no tree:
//   - [SourceError]: the source file could not be read
//   - [ResourceError]: the tree exceeded [Config.MaxNodes]
//
// # Thread Safety
//
// Every call builds its own parser state. Parse, ParseFile, Tokenize and
// Filter are safe for concurrent use.
package utiny
