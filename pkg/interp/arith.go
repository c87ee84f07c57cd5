package interp

import (
	"fmt"
	"math"
	"math/big"

	"github.com/raymyers/fastmath/pkg/ast"
	"github.com/raymyers/fastmath/pkg/ntypes"
)

// binaryOp evaluates a plain (unrewritten) operator. Integer arithmetic is
// checked: the exact result is computed and must fit the operand type.
func binaryOp(op ast.BinaryOp, a, b Value) (Value, error) {
	switch op {
	case ast.OpShl, ast.OpShr:
		return shift(op, a, b)
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpRem:
		return arith(op, a, b)
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe, ast.OpEq, ast.OpNe:
		return compare(op, a, b)
	case ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor:
		return bitwise(op, a, b)
	}
	return nil, fmt.Errorf("%w: operator %s", ErrType, op)
}

func arith(op ast.BinaryOp, a, b Value) (Value, error) {
	a, b, err := unify(a, b)
	if err != nil {
		return nil, err
	}

	if x, ok := toBig(a); ok {
		y, _ := toBig(b)
		r, err := bigArith(op, x, y)
		if err != nil {
			return nil, err
		}
		if isUntyped(a) {
			return untypedInt{r}, nil
		}
		t := typeOf(a).(ntypes.Tint)
		out, ok := fitsInt(t, r)
		if !ok {
			return nil, fmt.Errorf("%w: %s %s %s does not fit in %s", ErrOverflow, Format(a), op, Format(b), t)
		}
		return out, nil
	}

	if x, ok := toFloat(a); ok {
		y, _ := toFloat(b)
		r := floatArith(op, x, y)
		if isUntyped(a) {
			return untypedFloat(r), nil
		}
		return makeFloat(typeOf(a).(ntypes.Tfloat), r), nil
	}
	return nil, fmt.Errorf("%w: %s %s %s", ErrType, typeName(a), op, typeName(b))
}

func bigArith(op ast.BinaryOp, x, y *big.Int) (*big.Int, error) {
	r := new(big.Int)
	switch op {
	case ast.OpAdd:
		return r.Add(x, y), nil
	case ast.OpSub:
		return r.Sub(x, y), nil
	case ast.OpMul:
		return r.Mul(x, y), nil
	}
	if y.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s %s 0", ErrDivideByZero, x, op)
	}
	// Quo and Rem truncate toward zero, matching machine division.
	if op == ast.OpDiv {
		return r.Quo(x, y), nil
	}
	return r.Rem(x, y), nil
}

func floatArith(op ast.BinaryOp, x, y float64) float64 {
	switch op {
	case ast.OpAdd:
		return x + y
	case ast.OpSub:
		return x - y
	case ast.OpMul:
		return x * y
	case ast.OpDiv:
		return x / y
	}
	return math.Mod(x, y)
}

// shift checks the amount against the width of the left operand. Bits
// shifted out are lost, as with machine shifts.
func shift(op ast.BinaryOp, a, b Value) (Value, error) {
	amount, ok := toBig(b)
	if !ok {
		return nil, fmt.Errorf("%w: shift amount must be an integer, got %s", ErrType, typeName(b))
	}
	x, ok := toBig(a)
	if !ok {
		return nil, fmt.Errorf("%w: cannot shift %s", ErrType, typeName(a))
	}
	if isUntyped(a) && !isUntyped(b) {
		a = defaultType(a)
	}
	bits := int64(64)
	if t, ok := typeOf(a).(ntypes.Tint); ok {
		bits = int64(t.Size.Bits())
	}
	if amount.Sign() < 0 || amount.Cmp(big.NewInt(bits)) >= 0 {
		return nil, fmt.Errorf("%w: %s %s %s", ErrShiftOverflow, Format(a), op, amount)
	}

	n := uint(amount.Uint64())
	r := new(big.Int)
	if op == ast.OpShl {
		r.Lsh(x, n)
	} else {
		r.Rsh(x, n) // arithmetic for negative values
	}
	if isUntyped(a) {
		return untypedInt{r}, nil
	}
	return wrapInt(typeOf(a).(ntypes.Tint), r), nil
}

func compare(op ast.BinaryOp, a, b Value) (Value, error) {
	a, b, err := unify(a, b)
	if err != nil {
		return nil, err
	}
	var c int
	switch {
	case isBool(a):
		if op != ast.OpEq && op != ast.OpNe {
			return nil, fmt.Errorf("%w: cannot order bool", ErrType)
		}
		if a.(Bool) == b.(Bool) {
			c = 0
		} else {
			c = 1
		}
	default:
		if x, ok := toBig(a); ok {
			y, _ := toBig(b)
			c = x.Cmp(y)
			break
		}
		x, ok := toFloat(a)
		if !ok {
			return nil, fmt.Errorf("%w: cannot compare %s", ErrType, typeName(a))
		}
		y, _ := toFloat(b)
		if math.IsNaN(x) || math.IsNaN(y) {
			return Bool(op == ast.OpNe), nil
		}
		switch {
		case x < y:
			c = -1
		case x > y:
			c = 1
		}
	}

	switch op {
	case ast.OpLt:
		return Bool(c < 0), nil
	case ast.OpLe:
		return Bool(c <= 0), nil
	case ast.OpGt:
		return Bool(c > 0), nil
	case ast.OpGe:
		return Bool(c >= 0), nil
	case ast.OpEq:
		return Bool(c == 0), nil
	}
	return Bool(c != 0), nil
}

func bitwise(op ast.BinaryOp, a, b Value) (Value, error) {
	a, b, err := unify(a, b)
	if err != nil {
		return nil, err
	}
	if isBool(a) {
		x, y := a.(Bool), b.(Bool)
		switch op {
		case ast.OpBitAnd:
			return x && y, nil
		case ast.OpBitOr:
			return x || y, nil
		}
		return Bool(x != y), nil
	}
	x, ok := toBig(a)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s %s", ErrType, typeName(a), op, typeName(b))
	}
	y, _ := toBig(b)
	r := new(big.Int)
	switch op {
	case ast.OpBitAnd:
		r.And(x, y)
	case ast.OpBitOr:
		r.Or(x, y)
	default:
		r.Xor(x, y)
	}
	if isUntyped(a) {
		return untypedInt{r}, nil
	}
	return wrapInt(typeOf(a).(ntypes.Tint), r), nil
}

func unaryOp(op ast.UnaryOp, v Value) (Value, error) {
	switch op {
	case ast.OpNeg:
		if x, ok := toBig(v); ok {
			if isUntyped(v) {
				return untypedInt{x.Neg(x)}, nil
			}
			t := typeOf(v).(ntypes.Tint)
			out, ok := fitsInt(t, x.Neg(x))
			if !ok {
				return nil, fmt.Errorf("%w: -%s does not fit in %s", ErrOverflow, Format(v), t)
			}
			return out, nil
		}
		if f, ok := toFloat(v); ok {
			if isUntyped(v) {
				return untypedFloat(-f), nil
			}
			return makeFloat(typeOf(v).(ntypes.Tfloat), -f), nil
		}
	case ast.OpNot:
		if b, ok := v.(Bool); ok {
			return !b, nil
		}
		if x, ok := toBig(v); ok {
			r := x.Not(x)
			if isUntyped(v) {
				return untypedInt{r}, nil
			}
			return wrapInt(typeOf(v).(ntypes.Tint), r), nil
		}
	}
	return nil, fmt.Errorf("%w: %s%s", ErrType, op, typeName(v))
}

// wrapping evaluates wrapping_add, wrapping_sub and wrapping_mul: the
// exact result truncated to the operand width.
func wrapping(op ast.BinaryOp, a, b Value) (Value, error) {
	a, b, err := unify(a, b)
	if err != nil {
		return nil, err
	}
	a, b = defaultType(a), defaultType(b)
	t, ok := typeOf(a).(ntypes.Tint)
	if !ok {
		return nil, fmt.Errorf("%w: wrapping arithmetic needs integers, got %s", ErrType, typeName(a))
	}
	x, _ := toBig(a)
	y, _ := toBig(b)
	r, err := bigArith(op, x, y)
	if err != nil {
		return nil, err
	}
	return wrapInt(t, r), nil
}

func isBool(v Value) bool {
	_, ok := v.(Bool)
	return ok
}
