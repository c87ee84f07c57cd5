// Package ast defines the expression and statement tree of the fastmath
// language. Every node is a pointer and exclusively owns its children.
package ast

// Pos is a source position
type Pos struct {
	Line int
	Col  int
}

// Position returns the position itself so that embedding Pos satisfies Node.
func (p Pos) Position() Pos { return p }

// Node is the base interface for all AST nodes
type Node interface {
	Position() Pos
	implNode()
}

// Expr is the interface for all expression nodes
type Expr interface {
	Node
	implExpr()
}

// Stmt is the interface for all statement nodes
type Stmt interface {
	Node
	implStmt()
}

// Item is the interface for top-level items
type Item interface {
	Node
	implItem()
}

// BinaryOp represents binary operators, including the compound assignment
// forms and the operators that fast-math rewriting leaves alone.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpShl // <<
	OpShr // >>
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpAnd // &&
	OpOr  // ||
	OpBitAnd
	OpBitOr
	OpBitXor
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpRemAssign
	OpShlAssign
	OpShrAssign
	OpAndAssign
	OpOrAssign
	OpXorAssign
)

var binaryNames = []string{
	"+", "-", "*", "/", "%", "<<", ">>",
	"<", "<=", ">", ">=", "==", "!=", "&&", "||", "&", "|", "^",
	"+=", "-=", "*=", "/=", "%=", "<<=", ">>=", "&=", "|=", "^=",
}

func (op BinaryOp) String() string {
	if op >= 0 && int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "?"
}

// IsCompound reports whether op is a compound assignment (+=, <<=, ...).
func (op BinaryOp) IsCompound() bool {
	return op >= OpAddAssign && op <= OpXorAssign
}

// Base maps a compound assignment to the operator it combines with
// (+= to +). Other operators map to themselves.
func (op BinaryOp) Base() BinaryOp {
	switch op {
	case OpAddAssign:
		return OpAdd
	case OpSubAssign:
		return OpSub
	case OpMulAssign:
		return OpMul
	case OpDivAssign:
		return OpDiv
	case OpRemAssign:
		return OpRem
	case OpShlAssign:
		return OpShl
	case OpShrAssign:
		return OpShr
	case OpAndAssign:
		return OpBitAnd
	case OpOrAssign:
		return OpBitOr
	case OpXorAssign:
		return OpBitXor
	}
	return op
}

// Compound is the inverse of Base: it returns the compound assignment
// form of op, if there is one.
func (op BinaryOp) Compound() (BinaryOp, bool) {
	for c := OpAddAssign; c <= OpXorAssign; c++ {
		if c.Base() == op {
			return c, true
		}
	}
	return op, false
}

// UnaryOp represents unary operators
type UnaryOp int

const (
	OpNeg   UnaryOp = iota // -
	OpNot                  // !
	OpDeref                // *
)

func (op UnaryOp) String() string {
	names := []string{"-", "!", "*"}
	if op >= 0 && int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// LitKind is the kind of a literal
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitBool
)

// Literal is an integer, float or bool constant. Value holds the digits as
// written (separators removed), Suffix the optional type suffix (7u16).
type Literal struct {
	Pos
	Kind   LitKind
	Value  string
	Suffix string
}

// Ident is a variable reference
type Ident struct {
	Pos
	Name string
}

// Path is a qualified name: Type::method
type Path struct {
	Pos
	Segments []string
}

// Grouping is a parenthesized expression
type Grouping struct {
	Pos
	Inner Expr
}

// Unary represents a unary expression
type Unary struct {
	Pos
	Op      UnaryOp
	Operand Expr
}

// Binary represents a binary expression
type Binary struct {
	Pos
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Assign is a plain assignment: target = value
type Assign struct {
	Pos
	Target Expr
	Value  Expr
}

// CompoundAssign is target op= value. Op holds the base operator (OpAdd
// for +=).
type CompoundAssign struct {
	Pos
	Op     BinaryOp
	Target Expr
	Value  Expr
}

// Call represents a function call
type Call struct {
	Pos
	Callee Expr
	Args   []Expr
}

// Field is member access: x.name
type Field struct {
	Pos
	X    Expr
	Name string
}

// Index is subscript access: x[i]
type Index struct {
	Pos
	X     Expr
	Index Expr
}

// Cast is a numeric conversion: x as T
type Cast struct {
	Pos
	X    Expr
	Type string
}

// If represents a conditional; Else is nil, a *Block or an *If.
type If struct {
	Pos
	Cond Expr
	Then *Block
	Else Expr
}

// While represents a while loop
type While struct {
	Pos
	Cond Expr
	Body *Block
}

// Block is an ordered sequence of statements. Its value is the last
// statement when that is an expression statement without a semicolon.
type Block struct {
	Pos
	Stmts []Stmt
}

// Region marks a fragment for fast-math rewriting. Body is an expression
// (fast! { ... }), a statement or an item (#[fast]).
type Region struct {
	Pos
	Body Node
}

// ExprStmt is an expression used as a statement
type ExprStmt struct {
	Pos
	X    Expr
	Semi bool
}

// Let declares a local variable; Type and Init are optional.
type Let struct {
	Pos
	Name    string
	Mutable bool
	Type    string
	Init    Expr
}

// For is a range loop: for v in start..end or start..=end
type For struct {
	Pos
	Var       string
	Start     Expr
	End       Expr
	Inclusive bool
	Body      *Block
}

// Return represents a return statement
type Return struct {
	Pos
	Value Expr // nil for bare return
}

// Param is a typed function parameter
type Param struct {
	Name string
	Type string
}

// FuncDecl represents a function definition
type FuncDecl struct {
	Pos
	Name   string
	Params []Param
	Result string // empty for unit
	Body   *Block
}

// ImplBlock groups methods under a type name
type ImplBlock struct {
	Pos
	Type    string
	Methods []*FuncDecl
}

// Program is a parsed source file
type Program struct {
	Pos
	Items []Item
}

// Value returns the expression that determines the block's value, if any:
// a trailing expression without a semicolon, or a trailing block, marked or
// not.
func (b *Block) Value() Expr {
	if len(b.Stmts) == 0 {
		return nil
	}
	switch s := b.Stmts[len(b.Stmts)-1].(type) {
	case *ExprStmt:
		if !s.Semi {
			return s.X
		}
	case *Block:
		return s
	case *Region:
		switch body := s.Body.(type) {
		case *Block:
			return s
		case *ExprStmt:
			if !body.Semi {
				return body.X
			}
		}
	}
	return nil
}

// Marker methods for interface implementation
func (*Literal) implNode() {}
func (*Literal) implExpr() {}

func (*Ident) implNode() {}
func (*Ident) implExpr() {}

func (*Path) implNode() {}
func (*Path) implExpr() {}

func (*Grouping) implNode() {}
func (*Grouping) implExpr() {}

func (*Unary) implNode() {}
func (*Unary) implExpr() {}

func (*Binary) implNode() {}
func (*Binary) implExpr() {}

func (*Assign) implNode() {}
func (*Assign) implExpr() {}

func (*CompoundAssign) implNode() {}
func (*CompoundAssign) implExpr() {}

func (*Call) implNode() {}
func (*Call) implExpr() {}

func (*Field) implNode() {}
func (*Field) implExpr() {}

func (*Index) implNode() {}
func (*Index) implExpr() {}

func (*Cast) implNode() {}
func (*Cast) implExpr() {}

func (*If) implNode() {}
func (*If) implExpr() {}

func (*While) implNode() {}
func (*While) implExpr() {}

func (*Block) implNode() {}
func (*Block) implExpr() {}
func (*Block) implStmt() {}

func (*Region) implNode() {}
func (*Region) implExpr() {}
func (*Region) implStmt() {}
func (*Region) implItem() {}

func (*ExprStmt) implNode() {}
func (*ExprStmt) implStmt() {}

func (*Let) implNode() {}
func (*Let) implStmt() {}

func (*For) implNode() {}
func (*For) implStmt() {}

func (*Return) implNode() {}
func (*Return) implStmt() {}

func (*FuncDecl) implNode() {}
func (*FuncDecl) implItem() {}

func (*ImplBlock) implNode() {}
func (*ImplBlock) implItem() {}

func (*Program) implNode() {}
