package ast

// Precedence levels, lowest first. The parser climbs these and the printer
// uses them to decide where parentheses are required.
const (
	PrecNone = iota
	PrecAssign
	PrecOr
	PrecAnd
	PrecCompare
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecShift
	PrecTerm
	PrecFactor
	PrecCast
	PrecUnary
	PrecPostfix
	PrecPrimary
)

// Precedence returns the binding strength of op.
func (op BinaryOp) Precedence() int {
	switch op {
	case OpOr:
		return PrecOr
	case OpAnd:
		return PrecAnd
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return PrecCompare
	case OpBitOr:
		return PrecBitOr
	case OpBitXor:
		return PrecBitXor
	case OpBitAnd:
		return PrecBitAnd
	case OpShl, OpShr:
		return PrecShift
	case OpAdd, OpSub:
		return PrecTerm
	case OpMul, OpDiv, OpRem:
		return PrecFactor
	}
	if op.IsCompound() {
		return PrecAssign
	}
	return PrecNone
}

// ExprPrecedence returns the binding strength of the outermost operator of e.
func ExprPrecedence(e Expr) int {
	switch x := e.(type) {
	case *Binary:
		return x.Op.Precedence()
	case *Assign, *CompoundAssign:
		return PrecAssign
	case *Cast:
		return PrecCast
	case *Unary:
		return PrecUnary
	case *Call, *Field, *Index:
		return PrecPostfix
	}
	return PrecPrimary
}
