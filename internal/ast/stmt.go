package ast

// IfStmt represents a conditional.
// Example: if (x > 0) write x else write 0 end
type IfStmt struct {
	BaseStmt
	Cond Expr   // Condition expression
	Then []Stmt // Then branch
	Else []Stmt // Else branch (nil if there is no else)
}

// RepeatStmt represents a repeat-until loop.
// Example: repeat x := x - 1 until x == 0
type RepeatStmt struct {
	BaseStmt
	Body []Stmt // Loop body
	Cond Expr   // Exit condition, evaluated after each iteration
}

// DoWhileStmt represents a do-while loop.
// Example: do x := x - 1; while (x > 0)
type DoWhileStmt struct {
	BaseStmt
	Body []Stmt // Loop body
	Cond Expr   // Loop condition, evaluated after each iteration
}

// ForStmt represents a counted loop.
// Example: for i := 1 to 10 do write i enddo
type ForStmt struct {
	BaseStmt
	Init  *AssignStmt  // Loop variable initialization (may be nil)
	Bound *BoundClause // to/downto clause (may be nil)
	Body  []Stmt       // Loop body
}

// BoundClause is the "to e" or "downto e" part of a for loop.
type BoundClause struct {
	BaseStmt
	Down  bool // true for downto
	Limit Expr // Bound expression
}

// AssignStmt represents an assignment.
// "x -= e" is stored as "x := x - e".
type AssignStmt struct {
	BaseStmt
	Name  string // Target variable
	Value Expr   // Right-hand side
}

// ReadStmt represents "read x".
type ReadStmt struct {
	BaseStmt
	Name string // Variable receiving the input
}

// WriteStmt represents "write e".
type WriteStmt struct {
	BaseStmt
	Value Expr // Expression to output
}

// Ensure all statement types implement Stmt interface.
var (
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*RepeatStmt)(nil)
	_ Stmt = (*DoWhileStmt)(nil)
	_ Stmt = (*ForStmt)(nil)
	_ Stmt = (*BoundClause)(nil)
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*ReadStmt)(nil)
	_ Stmt = (*WriteStmt)(nil)
)
