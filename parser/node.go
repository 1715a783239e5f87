package parser

// Visitor implements the visitor pattern over the Orion AST. Each node kind
// has its own Visit method so traversal (the AST pretty-printer, the
// evaluator) dispatches by explicit type instead of reflection or dynamic
// attribute lookup.
type Visitor interface {
	VisitProgram(node *Program)
	VisitNumberLit(node *NumberLit)
	VisitStringLit(node *StringLit)
	VisitIdent(node *Ident)
	VisitUnary(node *Unary)
	VisitBinary(node *Binary)
	VisitCall(node *Call)
	VisitAssign(node *Assign)
	VisitExprStmt(node *ExprStmt)
	VisitBlock(node *Block)
	VisitIf(node *If)
	VisitWhile(node *While)
	VisitFor(node *For)
	VisitReturn(node *Return)
	VisitFunctionDecl(node *FunctionDecl)
}

// Node is the base of every AST node: a source position and the ability to
// accept a Visitor.
type Node interface {
	Pos() Position
	Accept(v Visitor)
}

// Position is the 1-based line/column where a node's first token began.
type Position struct {
	Line   int
	Column int
}

// Expr is any AST node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any AST node that executes for effect. Every Expr is also
// statement-shaped via ExprStmt, matching assign_or_expr's third grammar
// alternative.
type Stmt interface {
	Node
	stmtNode()
}

// TypeTag is one of the four declared-type keywords, or "" when a
// declaration or parameter carries no type annotation.
type TypeTag string

const (
	NoTag     TypeTag = ""
	IntTag    TypeTag = "int"
	FloatTag  TypeTag = "float"
	StringTag TypeTag = "string"
	BoolTag   TypeTag = "bool"
)

// Param is one function parameter: a name and an optional type tag.
type Param struct {
	Name string
	Tag  TypeTag
}

// --- Expressions ---------------------------------------------------------

// NumberLit is an integer or floating-point literal.
type NumberLit struct {
	P        Position
	IsFloat  bool
	IntVal   int64
	FloatVal float64
}

func (n *NumberLit) Pos() Position    { return n.P }
func (n *NumberLit) Accept(v Visitor) { v.VisitNumberLit(n) }
func (n *NumberLit) exprNode()        {}

// StringLit is a string literal with escapes already resolved by the lexer.
type StringLit struct {
	P     Position
	Value string
}

func (n *StringLit) Pos() Position    { return n.P }
func (n *StringLit) Accept(v Visitor) { v.VisitStringLit(n) }
func (n *StringLit) exprNode()        {}

// Ident is a bare variable reference.
type Ident struct {
	P    Position
	Name string
}

func (n *Ident) Pos() Position    { return n.P }
func (n *Ident) Accept(v Visitor) { v.VisitIdent(n) }
func (n *Ident) exprNode()        {}

// Unary is a prefix operator applied to one operand: "-" or "not".
type Unary struct {
	P       Position
	Op      string
	Operand Expr
}

func (n *Unary) Pos() Position    { return n.P }
func (n *Unary) Accept(v Visitor) { v.VisitUnary(n) }
func (n *Unary) exprNode()        {}

// Binary is an infix operator applied to two operands.
type Binary struct {
	P     Position
	Op    string
	Left  Expr
	Right Expr
}

func (n *Binary) Pos() Position    { return n.P }
func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }
func (n *Binary) exprNode()        {}

// Call invokes a named function (user-defined or built-in) with positional
// arguments.
type Call struct {
	P      Position
	Callee string
	Args   []Expr
}

func (n *Call) Pos() Position    { return n.P }
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }
func (n *Call) exprNode()        {}

// --- Statements ------------------------------------------------------------

// Assign is either a typed declaration ("int x = expr") or a plain
// assignment ("x = expr"); Tag is NoTag for the latter.
type Assign struct {
	P    Position
	Name string
	Tag  TypeTag
	Expr Expr
}

func (n *Assign) Pos() Position    { return n.P }
func (n *Assign) Accept(v Visitor) { v.VisitAssign(n) }
func (n *Assign) stmtNode()        {}

// ExprStmt wraps an expression evaluated for its side effects (e.g. a bare
// call statement).
type ExprStmt struct {
	P    Position
	Expr Expr
}

func (n *ExprStmt) Pos() Position    { return n.P }
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }
func (n *ExprStmt) stmtNode()        {}

// Block is a brace-delimited sequence of statements; it introduces a new
// lexical scope when evaluated.
type Block struct {
	P     Position
	Stmts []Stmt
}

func (n *Block) Pos() Position    { return n.P }
func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }
func (n *Block) stmtNode()        {}

// If is a conditional with an optional else branch.
type If struct {
	P    Position
	Cond Expr
	Then *Block
	Else *Block // nil when there is no else branch
}

func (n *If) Pos() Position    { return n.P }
func (n *If) Accept(v Visitor) { v.VisitIf(n) }
func (n *If) stmtNode()        {}

// While loops while Cond is truthy.
type While struct {
	P    Position
	Cond Expr
	Body *Block
}

func (n *While) Pos() Position    { return n.P }
func (n *While) Accept(v Visitor) { v.VisitWhile(n) }
func (n *While) stmtNode()        {}

// For is the C-style three-clause loop. Init, Cond, and Update are all
// optional: the minimal "for { body }" form has all three nil, with Cond
// treated as always-truthy (spec.md SPEC_FULL §6 decision).
type For struct {
	P      Position
	Init   Stmt // *Assign or *ExprStmt, or nil
	Cond   Expr // nil means "always true"
	Update Stmt // *Assign or *ExprStmt, or nil
	Body   *Block
}

func (n *For) Pos() Position    { return n.P }
func (n *For) Accept(v Visitor) { v.VisitFor(n) }
func (n *For) stmtNode()        {}

// Return unwinds the nearest function activation, optionally carrying a
// value.
type Return struct {
	P     Position
	Value Expr // nil for a bare "return"
}

func (n *Return) Pos() Position    { return n.P }
func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }
func (n *Return) stmtNode()        {}

// FunctionDecl declares a named function, including the implicit "main"
// entry point.
type FunctionDecl struct {
	P      Position
	Name   string
	Params []Param
	Body   *Block
}

func (n *FunctionDecl) Pos() Position    { return n.P }
func (n *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(n) }
func (n *FunctionDecl) stmtNode()        {}

// Program is the AST root: the ordered top-level statements of a source
// file.
type Program struct {
	P     Position
	Stmts []Stmt
}

func (n *Program) Pos() Position    { return n.P }
func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }
