package interp

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/raymyers/fastmath/pkg/dispatch"
	"github.com/raymyers/fastmath/pkg/ntypes"
)

// Value is a runtime value. Numbers are the dispatch scalar types
// (dispatch.U16, dispatch.F64, ...) so that rewritten calls can hand them
// straight to dispatch.Invoke. Bool and Unit cover the rest; constants
// without a suffix stay untyped until they meet a typed operand.
type Value any

// Bool is a boolean value
type Bool bool

// Unit is the value of statements and empty blocks
type Unit struct{}

// untypedInt is an integer constant without a suffix
type untypedInt struct{ v *big.Int }

// untypedFloat is a float constant without a suffix
type untypedFloat float64

func (u untypedInt) String() string   { return u.v.String() }
func (u untypedFloat) String() string { return strconv.FormatFloat(float64(u), 'g', -1, 64) }
func (Unit) String() string           { return "()" }

// Format renders a value the way the CLI prints results.
func Format(v Value) string {
	switch x := v.(type) {
	case dispatch.F32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case dispatch.F64:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case nil:
		return "()"
	}
	return fmt.Sprint(v)
}

// typeOf returns the scalar type of v, or nil for untyped constants.
func typeOf(v Value) ntypes.Type {
	switch v.(type) {
	case dispatch.I8:
		return ntypes.Int(ntypes.I8)
	case dispatch.I16:
		return ntypes.Int(ntypes.I16)
	case dispatch.I32:
		return ntypes.Int(ntypes.I32)
	case dispatch.I64:
		return ntypes.Int(ntypes.I64)
	case dispatch.I128:
		return ntypes.Int(ntypes.I128)
	case dispatch.Int:
		return ntypes.Int(ntypes.ISize)
	case dispatch.U8:
		return ntypes.UInt(ntypes.I8)
	case dispatch.U16:
		return ntypes.UInt(ntypes.I16)
	case dispatch.U32:
		return ntypes.UInt(ntypes.I32)
	case dispatch.U64:
		return ntypes.UInt(ntypes.I64)
	case dispatch.U128:
		return ntypes.UInt(ntypes.I128)
	case dispatch.Uint:
		return ntypes.UInt(ntypes.ISize)
	case dispatch.F32:
		return ntypes.Float()
	case dispatch.F64:
		return ntypes.Double()
	case Bool:
		return ntypes.Bool()
	case Unit:
		return ntypes.Unit()
	}
	return nil
}

func typeName(v Value) string {
	switch v.(type) {
	case untypedInt:
		return "integer constant"
	case untypedFloat:
		return "float constant"
	}
	if t := typeOf(v); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", v)
}

// toBig returns the exact value of an integer.
func toBig(v Value) (*big.Int, bool) {
	switch x := v.(type) {
	case dispatch.I8:
		return big.NewInt(int64(x)), true
	case dispatch.I16:
		return big.NewInt(int64(x)), true
	case dispatch.I32:
		return big.NewInt(int64(x)), true
	case dispatch.I64:
		return big.NewInt(int64(x)), true
	case dispatch.Int:
		return big.NewInt(int64(x)), true
	case dispatch.I128:
		return x.Big(), true
	case dispatch.U8:
		return new(big.Int).SetUint64(uint64(x)), true
	case dispatch.U16:
		return new(big.Int).SetUint64(uint64(x)), true
	case dispatch.U32:
		return new(big.Int).SetUint64(uint64(x)), true
	case dispatch.U64:
		return new(big.Int).SetUint64(uint64(x)), true
	case dispatch.Uint:
		return new(big.Int).SetUint64(uint64(x)), true
	case dispatch.U128:
		return x.Big(), true
	case untypedInt:
		return new(big.Int).Set(x.v), true
	}
	return nil, false
}

// wrapInt truncates b to the width of t, two's complement, like a machine
// cast.
func wrapInt(t ntypes.Tint, b *big.Int) Value {
	if t.Size == ntypes.I128 {
		if t.Sign == ntypes.Signed {
			return dispatch.I128FromBig(b)
		}
		return dispatch.U128FromBig(b)
	}
	// The low 64 bits of b in two's complement.
	mask := new(big.Int).SetUint64(math.MaxUint64)
	low := new(big.Int).And(b, mask).Uint64()
	if t.Sign == ntypes.Signed {
		switch t.Size {
		case ntypes.I8:
			return dispatch.I8(int8(low))
		case ntypes.I16:
			return dispatch.I16(int16(low))
		case ntypes.I32:
			return dispatch.I32(int32(low))
		case ntypes.I64:
			return dispatch.I64(int64(low))
		}
		return dispatch.Int(int64(low))
	}
	switch t.Size {
	case ntypes.I8:
		return dispatch.U8(low)
	case ntypes.I16:
		return dispatch.U16(low)
	case ntypes.I32:
		return dispatch.U32(low)
	case ntypes.I64:
		return dispatch.U64(low)
	}
	return dispatch.Uint(low)
}

// fitsInt converts b to t if the value is representable.
func fitsInt(t ntypes.Tint, b *big.Int) (Value, bool) {
	v := wrapInt(t, b)
	back, _ := toBig(v)
	return v, back.Cmp(b) == 0
}

func toFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case dispatch.F32:
		return float64(x), true
	case dispatch.F64:
		return float64(x), true
	case untypedFloat:
		return float64(x), true
	case untypedInt:
		f, _ := new(big.Float).SetInt(x.v).Float64()
		return f, true
	}
	return 0, false
}

func makeFloat(t ntypes.Tfloat, f float64) Value {
	if t.Size == ntypes.F32 {
		return dispatch.F32(f)
	}
	return dispatch.F64(f)
}

// convert gives an untyped constant the type t. Typed values must already
// have type t.
func convert(v Value, t ntypes.Type) (Value, error) {
	if t == nil {
		return defaultType(v), nil
	}
	switch x := v.(type) {
	case untypedInt:
		switch tt := t.(type) {
		case ntypes.Tint:
			out, ok := fitsInt(tt, x.v)
			if !ok {
				return nil, fmt.Errorf("%w: constant %s does not fit in %s", ErrOverflow, x.v, tt)
			}
			return out, nil
		case ntypes.Tfloat:
			f, _ := toFloat(x)
			return makeFloat(tt, f), nil
		}
	case untypedFloat:
		if tt, ok := t.(ntypes.Tfloat); ok {
			return makeFloat(tt, float64(x)), nil
		}
	default:
		if ntypes.Equal(typeOf(v), t) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: expected %s, got %s", ErrType, t, typeName(v))
}

// defaultType settles an untyped constant on i32 or f64.
func defaultType(v Value) Value {
	switch x := v.(type) {
	case untypedInt:
		if out, ok := fitsInt(ntypes.Tint{Size: ntypes.I32, Sign: ntypes.Signed}, x.v); ok {
			return out
		}
		return wrapInt(ntypes.Tint{Size: ntypes.I64, Sign: ntypes.Signed}, x.v)
	case untypedFloat:
		return dispatch.F64(x)
	}
	return v
}

func isUntyped(v Value) bool {
	switch v.(type) {
	case untypedInt, untypedFloat:
		return true
	}
	return false
}

// unify brings two operands to a common type: an untyped side adopts the
// type of the other; two untyped constants stay untyped (int and float
// mix to float).
func unify(a, b Value) (Value, Value, error) {
	switch {
	case isUntyped(a) && isUntyped(b):
		_, af := a.(untypedFloat)
		_, bf := b.(untypedFloat)
		if af || bf {
			fa, _ := toFloat(a)
			fb, _ := toFloat(b)
			return untypedFloat(fa), untypedFloat(fb), nil
		}
		return a, b, nil
	case isUntyped(a):
		ca, err := convert(a, typeOf(b))
		return ca, b, err
	case isUntyped(b):
		cb, err := convert(b, typeOf(a))
		return a, cb, err
	}
	if !ntypes.Equal(typeOf(a), typeOf(b)) {
		return nil, nil, fmt.Errorf("%w: mismatched operands %s and %s", ErrType, typeName(a), typeName(b))
	}
	return a, b, nil
}

// cast converts v to t with machine semantics: integers wrap, floats
// truncate toward zero and saturate when converted to integers.
func cast(v Value, t ntypes.Type) (Value, error) {
	switch tt := t.(type) {
	case ntypes.Tint:
		if b, ok := toBig(v); ok {
			return wrapInt(tt, b), nil
		}
		if f, ok := toFloat(v); ok {
			return floatToInt(tt, f), nil
		}
		if b, ok := v.(Bool); ok {
			n := int64(0)
			if b {
				n = 1
			}
			return wrapInt(tt, big.NewInt(n)), nil
		}
	case ntypes.Tfloat:
		if f, ok := toFloat(v); ok {
			return makeFloat(tt, f), nil
		}
		if b, ok := toBig(v); ok {
			f, _ := new(big.Float).SetInt(b).Float64()
			return makeFloat(tt, f), nil
		}
	case ntypes.Tbool:
		if b, ok := v.(Bool); ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: cannot cast %s to %s", ErrType, typeName(v), t)
}

func floatToInt(t ntypes.Tint, f float64) Value {
	if math.IsNaN(f) {
		return wrapInt(t, new(big.Int))
	}
	lo, hi := intRange(t)
	bf := new(big.Float).SetFloat64(math.Trunc(clampInf(f)))
	b, _ := bf.Int(nil)
	if b.Cmp(lo) < 0 {
		b = lo
	} else if b.Cmp(hi) > 0 {
		b = hi
	}
	return wrapInt(t, b)
}

func clampInf(f float64) float64 {
	if math.IsInf(f, 1) {
		return math.MaxFloat64
	}
	if math.IsInf(f, -1) {
		return -math.MaxFloat64
	}
	return f
}

// intRange returns the smallest and largest value of t.
func intRange(t ntypes.Tint) (*big.Int, *big.Int) {
	bits := uint(t.Size.Bits())
	if t.Sign == ntypes.Unsigned {
		hi := new(big.Int).Lsh(big.NewInt(1), bits)
		return new(big.Int), hi.Sub(hi, big.NewInt(1))
	}
	hi := new(big.Int).Lsh(big.NewInt(1), bits-1)
	lo := new(big.Int).Neg(hi)
	return lo, hi.Sub(hi, big.NewInt(1))
}
