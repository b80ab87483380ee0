package parser

import (
	"strconv"

	"github.com/kolkov/utiny/internal/ast"
	"github.com/kolkov/utiny/internal/lexer"
	"github.com/kolkov/utiny/internal/token"
)

// Parser is a recursive descent parser for TINY programs. It reads one
// token of lookahead and never backtracks. A Parser parses a single
// program; create a new one for every source.
type Parser struct {
	lexer   *lexer.Lexer // Lexer instance
	tok     lexer.Token  // Current token
	prevTok lexer.Token  // Last consumed token (for ";" handling)
	errors  ErrorList    // Accumulated errors

	// Node budget
	nodes     int  // nodes allocated so far
	maxNodes  int  // 0 means unlimited
	exhausted bool // set once nodes exceeds maxNodes
}

// Parse parses a TINY program from source code.
//
// Syntax errors do not stop the parse: the returned program is always
// non-nil and holds the best-effort tree, and err is an ErrorList with
// every diagnostic in source order.
func Parse(src string) (*ast.Program, error) {
	return ParseBytes([]byte(src))
}

// ParseBytes parses a TINY program from byte slice.
func ParseBytes(src []byte) (*ast.Program, error) {
	p := New(src, 0)
	prog := p.ParseProgram()
	return prog, p.errors.Err()
}

// New creates a parser for src that allocates at most maxNodes tree
// nodes. A maxNodes of 0 means no limit.
func New(src []byte, maxNodes int) *Parser {
	p := &Parser{
		lexer:    lexer.New(src),
		maxNodes: maxNodes,
	}
	p.next() // Initialize first token
	return p
}

// ParseProgram parses the whole input as one statement sequence.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{StartPos: p.tok.Pos}
	prog.Stmts = p.parseStmtSequence()
	if p.tok.Type != token.EOF {
		p.errorf("code continues after expected end of input")
	}
	prog.EndPos = p.tok.Pos
	return prog
}

// Errors returns the diagnostics recorded so far.
func (p *Parser) Errors() ErrorList {
	return p.errors
}

// Nodes returns the number of tree nodes allocated so far.
func (p *Parser) Nodes() int {
	return p.nodes
}

// Exhausted reports whether the node budget was exceeded. The tree of an
// exhausted parse is truncated and must not be used.
func (p *Parser) Exhausted() bool {
	return p.exhausted
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next advances to the next token. After exhaustion the lookahead stays
// at EOF so that every routine unwinds.
func (p *Parser) next() {
	p.prevTok = p.tok
	if p.exhausted {
		p.tok = lexer.Token{Type: token.EOF, Pos: p.tok.Pos}
		return
	}
	p.tok = p.lexer.Scan()
}

// match consumes the current token if it is of kind tok. Otherwise it
// records an error and leaves the token in place.
func (p *Parser) match(tok token.Token) bool {
	if p.tok.Type != tok {
		p.unexpected()
		return false
	}
	p.next()
	return true
}

// at returns true if current token matches any of the given types.
func (p *Parser) at(types ...token.Token) bool {
	for _, t := range types {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// separator consumes the ";" between two statements. An assignment may
// already have consumed it, in which case nothing more is required.
func (p *Parser) separator() {
	if p.tok.Type != token.SEMI && p.prevTok.Type == token.SEMI {
		return
	}
	p.match(token.SEMI)
}

// atSequenceEnd returns true if the current token closes a statement
// sequence.
func (p *Parser) atSequenceEnd() bool {
	return p.at(token.EOF, token.END, token.ELSE, token.UNTIL, token.WHILE, token.ENDDO)
}

// unexpected records the current token as one no production accepts.
func (p *Parser) unexpected() {
	p.error(unexpectedError(p.tok.Pos, p.tok.String()))
}

// skip records the current token as unexpected and discards it.
func (p *Parser) skip() {
	p.unexpected()
	p.next()
}

// error records a parse error. Errors are dropped once the node budget is
// exhausted; they would only describe the forced EOF.
func (p *Parser) error(err *ParseError) {
	if p.exhausted {
		return
	}
	p.errors = append(p.errors, err)
}

// errorf records a formatted parse error at current position.
func (p *Parser) errorf(format string, args ...any) {
	p.error(errorf(p.tok.Pos, format, args...))
}

// -----------------------------------------------------------------------------
// Node allocation
// -----------------------------------------------------------------------------

// alloc accounts for one new tree node. Counting stops at the first node
// past the budget.
func (p *Parser) alloc() {
	if p.exhausted {
		return
	}
	p.nodes++
	if p.maxNodes > 0 && p.nodes > p.maxNodes {
		p.exhausted = true
		p.tok = lexer.Token{Type: token.EOF, Pos: p.tok.Pos}
	}
}

// stmtBase allocates a statement node starting at the current token.
func (p *Parser) stmtBase() ast.BaseStmt {
	pos := p.tok.Pos
	p.alloc()
	return ast.MakeBaseStmt(pos, pos)
}

// exprBase allocates an expression node starting at start.
func (p *Parser) exprBase(start token.Position) ast.BaseExpr {
	p.alloc()
	return ast.MakeBaseExpr(start, start)
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// parseStmtSequence parses statements separated by ";" up to the next
// sequence terminator.
func (p *Parser) parseStmtSequence() []ast.Stmt {
	var list []ast.Stmt
	if stmt := p.parseStatement(); stmt != nil {
		list = append(list, stmt)
	}
	for !p.atSequenceEnd() {
		p.separator()
		if p.atSequenceEnd() {
			break
		}
		if stmt := p.parseStatement(); stmt != nil {
			list = append(list, stmt)
		}
	}
	return list
}

// parseStatement dispatches on the lookahead. Any other token is an
// error and is discarded.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.tok.Type {
	case token.IF:
		return p.parseIf()
	case token.REPEAT:
		return p.parseRepeat()
	case token.ID:
		return p.parseAssign()
	case token.READ:
		return p.parseRead()
	case token.WRITE:
		return p.parseWrite()
	case token.DO:
		return p.parseDoWhile()
	case token.FOR:
		return p.parseFor()
	default:
		p.skip()
		return nil
	}
}

// parseIf parses: if ( logic ) seq [else seq] end
func (p *Parser) parseIf() *ast.IfStmt {
	stmt := &ast.IfStmt{BaseStmt: p.stmtBase()}
	p.match(token.IF)
	p.match(token.LPAREN)
	stmt.Cond = p.parseLogic()
	p.match(token.RPAREN)
	stmt.Then = p.parseStmtSequence()
	if p.tok.Type == token.ELSE {
		p.next()
		stmt.Else = p.parseStmtSequence()
	}
	p.match(token.END)
	stmt.EndPos = p.tok.Pos
	return stmt
}

// parseDoWhile parses: do seq ; while ( logic )
func (p *Parser) parseDoWhile() *ast.DoWhileStmt {
	stmt := &ast.DoWhileStmt{BaseStmt: p.stmtBase()}
	p.match(token.DO)
	stmt.Body = p.parseStmtSequence()
	p.separator()
	p.match(token.WHILE)
	p.match(token.LPAREN)
	stmt.Cond = p.parseLogic()
	p.match(token.RPAREN)
	stmt.EndPos = p.tok.Pos
	return stmt
}

// parseFor parses: for assign (to|downto) additive do seq enddo
func (p *Parser) parseFor() *ast.ForStmt {
	stmt := &ast.ForStmt{BaseStmt: p.stmtBase()}
	p.match(token.FOR)
	stmt.Init = p.parseAssign()
	stmt.Bound = p.parseBound()
	p.match(token.DO)
	stmt.Body = p.parseStmtSequence()
	p.match(token.ENDDO)
	stmt.EndPos = p.tok.Pos
	return stmt
}

// parseBound parses the "to e" / "downto e" clause of a for loop.
// It returns nil if neither keyword is present.
func (p *Parser) parseBound() *ast.BoundClause {
	var down bool
	switch p.tok.Type {
	case token.TO:
	case token.DOWNTO:
		down = true
	default:
		p.unexpected()
		return nil
	}
	clause := &ast.BoundClause{BaseStmt: p.stmtBase(), Down: down}
	p.next()
	clause.Limit = p.parseAdditive()
	clause.EndPos = p.tok.Pos
	return clause
}

// parseRepeat parses: repeat seq until logic
func (p *Parser) parseRepeat() *ast.RepeatStmt {
	stmt := &ast.RepeatStmt{BaseStmt: p.stmtBase()}
	p.match(token.REPEAT)
	stmt.Body = p.parseStmtSequence()
	p.match(token.UNTIL)
	stmt.Cond = p.parseLogic()
	stmt.EndPos = p.tok.Pos
	return stmt
}

// parseAssign parses: ID (:= logic | -= additive) [;]
//
// "x -= e" is stored as "x := x - e".
func (p *Parser) parseAssign() *ast.AssignStmt {
	stmt := &ast.AssignStmt{BaseStmt: p.stmtBase()}
	name, namePos := p.tok.Value, p.tok.Pos
	if p.tok.Type == token.ID {
		stmt.Name = name
	}
	p.match(token.ID)

	switch p.tok.Type {
	case token.ASSIGN:
		p.next()
		stmt.Value = p.parseLogic()
	case token.MINUSEQ:
		p.next()
		stmt.Value = p.parseMinusAssign(stmt.Name, namePos)
	default:
		p.unexpected()
	}

	if p.tok.Type == token.SEMI {
		p.next()
	}
	stmt.EndPos = p.tok.Pos
	return stmt
}

// parseMinusAssign builds the value "name - e" of a "name -= e"
// assignment. The Ident is a fresh node, not shared with the statement.
func (p *Parser) parseMinusAssign(name string, namePos token.Position) *ast.BinaryExpr {
	bin := &ast.BinaryExpr{BaseExpr: p.exprBase(namePos), Op: token.MINUS}
	bin.Left = &ast.Ident{BaseExpr: p.exprBase(namePos), Name: name}
	bin.Right = p.parseAdditive()
	bin.EndPos = p.tok.Pos
	return bin
}

// parseRead parses: read ID
func (p *Parser) parseRead() *ast.ReadStmt {
	stmt := &ast.ReadStmt{BaseStmt: p.stmtBase()}
	p.match(token.READ)
	if p.tok.Type == token.ID {
		stmt.Name = p.tok.Value
	}
	p.match(token.ID)
	stmt.EndPos = p.tok.Pos
	return stmt
}

// parseWrite parses: write logic
func (p *Parser) parseWrite() *ast.WriteStmt {
	stmt := &ast.WriteStmt{BaseStmt: p.stmtBase()}
	p.match(token.WRITE)
	stmt.Value = p.parseLogic()
	stmt.EndPos = p.tok.Pos
	return stmt
}

// -----------------------------------------------------------------------------
// Expression parsing (precedence climbing)
// -----------------------------------------------------------------------------
//
// Precedence (lowest to highest):
//   1. and or          (left)
//   2. not, relational (non-associative, at most one operator)
//   3. + - & |         (left)
//   4. * / %           (left), then postfix #
//   5. ^               (left)
//   6. factor: NUM, ID, ( logic )

// parseLogic parses and/or chains.
func (p *Parser) parseLogic() ast.Expr {
	start := p.tok.Pos
	expr := p.parseRelational()
	for p.at(token.AND, token.OR) {
		op := p.tok.Type
		logic := &ast.LogicalExpr{BaseExpr: p.exprBase(start), Left: expr, Op: op}
		p.next()
		logic.Right = p.parseRelational()
		logic.EndPos = p.tok.Pos
		expr = logic
	}
	return expr
}

// parseRelational parses an optional "not", an additive expression and
// at most one comparison. "not" replaces the comparison operator of the
// result by its negation; a result that is not a comparison is left
// unchanged.
func (p *Parser) parseRelational() ast.Expr {
	start := p.tok.Pos
	negate := false
	if p.tok.Type == token.NOT {
		p.next()
		negate = true
	}

	expr := p.parseAdditive()
	if p.tok.Type.IsRelational() {
		op := p.tok.Type
		rel := &ast.BinaryExpr{BaseExpr: p.exprBase(start), Left: expr, Op: op}
		p.next()
		rel.Right = p.parseAdditive()
		rel.EndPos = p.tok.Pos
		expr = rel
	}

	if negate {
		if bin, ok := expr.(*ast.BinaryExpr); ok {
			bin.Op, _ = token.Negate(bin.Op)
		}
	}
	return expr
}

// parseAdditive parses + and - (arithmetic) and & and | (set) chains.
func (p *Parser) parseAdditive() ast.Expr {
	start := p.tok.Pos
	expr := p.parseMultiplicative()
	for {
		op := p.tok.Type
		switch op {
		case token.PLUS, token.MINUS:
			bin := &ast.BinaryExpr{BaseExpr: p.exprBase(start), Left: expr, Op: op}
			p.next()
			bin.Right = p.parseMultiplicative()
			bin.EndPos = p.tok.Pos
			expr = bin
		case token.LINK, token.LOR:
			set := &ast.SetExpr{BaseExpr: p.exprBase(start), Left: expr, Op: op}
			p.next()
			set.Right = p.parseMultiplicative()
			set.EndPos = p.tok.Pos
			expr = set
		default:
			return expr
		}
	}
}

// parseMultiplicative parses * / % chains followed by any number of
// postfix closures, each wrapping everything to its left.
func (p *Parser) parseMultiplicative() ast.Expr {
	start := p.tok.Pos
	expr := p.parseBinaryLeft(p.parsePower, token.TIMES, token.OVER, token.MOD)
	for p.tok.Type == token.CLOSURE {
		closure := &ast.ClosureExpr{BaseExpr: p.exprBase(start), Operand: expr}
		p.next()
		closure.EndPos = p.tok.Pos
		expr = closure
	}
	return expr
}

// parsePower parses ^ chains. Unlike most languages, ^ groups to the
// left: 2 ^ 3 ^ 2 is (2 ^ 3) ^ 2.
func (p *Parser) parsePower() ast.Expr {
	return p.parseBinaryLeft(p.parseFactor, token.POWER)
}

// parseFactor parses a number, a variable or a parenthesized expression.
// Parentheses produce no node of their own.
func (p *Parser) parseFactor() ast.Expr {
	tok := p.tok
	switch tok.Type {
	case token.NUM:
		lit := &ast.NumLit{BaseExpr: p.exprBase(tok.Pos), Raw: tok.Value}
		v, err := strconv.Atoi(tok.Value)
		if err != nil {
			p.error(errorf(tok.Pos, "number out of range"))
		}
		lit.Value = v
		p.next()
		lit.EndPos = p.tok.Pos
		return lit

	case token.ID:
		ident := &ast.Ident{BaseExpr: p.exprBase(tok.Pos), Name: tok.Value}
		p.next()
		ident.EndPos = p.tok.Pos
		return ident

	case token.LPAREN:
		p.next()
		expr := p.parseLogic()
		p.match(token.RPAREN)
		return expr

	default:
		p.skip()
		return nil
	}
}

// -----------------------------------------------------------------------------
// Helper functions
// -----------------------------------------------------------------------------

// parseBinaryLeft parses left-associative binary operators. A missing
// operand is left nil so that the partial tree survives.
func (p *Parser) parseBinaryLeft(higher func() ast.Expr, ops ...token.Token) ast.Expr {
	start := p.tok.Pos
	expr := higher()
	for p.at(ops...) {
		op := p.tok.Type
		bin := &ast.BinaryExpr{BaseExpr: p.exprBase(start), Left: expr, Op: op}
		p.next()
		bin.Right = higher()
		bin.EndPos = p.tok.Pos
		expr = bin
	}
	return expr
}
