// Package dispatch defines the numeric capability every type must implement
// to take part in fast-math rewriting, plus its scalar and composite
// implementations.
package dispatch

import (
	"errors"
	"fmt"
)

// Numeric is the seven-method fast arithmetic contract. The rewriter emits
// calls to these methods; which implementation runs is decided by the
// operand's type.
type Numeric[T any] interface {
	FastAdd(rhs T) T
	FastSub(rhs T) T
	FastMul(rhs T) T
	FastDiv(rhs T) T
	FastRem(rhs T) T
	FastShl(amount uint32) T
	FastShr(amount uint32) T
}

// Method names one operation of the Numeric contract.
type Method int

const (
	MethodAdd Method = iota
	MethodSub
	MethodMul
	MethodDiv
	MethodRem
	MethodShl
	MethodShr
)

var methodNames = []string{"fast_add", "fast_sub", "fast_mul", "fast_div", "fast_rem", "fast_shl", "fast_shr"}

// String returns the public contract name of the method (fast_add, ...).
func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return "?"
}

// IsShift reports whether the method takes a u32 shift amount instead of a
// second operand of the receiver's type.
func (m Method) IsShift() bool {
	return m == MethodShl || m == MethodShr
}

// ParseMethod looks up a method by its contract name.
func ParseMethod(name string) (Method, bool) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), true
		}
	}
	return 0, false
}

// Methods returns all methods in declaration order.
func Methods() []Method {
	return []Method{MethodAdd, MethodSub, MethodMul, MethodDiv, MethodRem, MethodShl, MethodShr}
}

var (
	// ErrTypeMismatch is returned when the operands of a dynamic call do
	// not share a type (or a shift amount is not u32).
	ErrTypeMismatch = errors.New("operand type mismatch")
	// ErrNotNumeric is returned when the receiver does not implement Operand.
	ErrNotNumeric = errors.New("value does not implement the numeric contract")
	// ErrUnknownMethod is returned for a Method outside the contract.
	ErrUnknownMethod = errors.New("unknown dispatch method")
	// ErrFloatShift is the panic value raised by shifting a float.
	ErrFloatShift = errors.New("shift is not defined for floating-point values")
)

func Add[T Numeric[T]](a, b T) T { return a.FastAdd(b) }
func Sub[T Numeric[T]](a, b T) T { return a.FastSub(b) }
func Mul[T Numeric[T]](a, b T) T { return a.FastMul(b) }
func Div[T Numeric[T]](a, b T) T { return a.FastDiv(b) }
func Rem[T Numeric[T]](a, b T) T { return a.FastRem(b) }

func Shl[T Numeric[T]](a T, amount uint32) T { return a.FastShl(amount) }
func Shr[T Numeric[T]](a T, amount uint32) T { return a.FastShr(amount) }

// Operand is the dynamic face of Numeric, used when the operand types are
// only known at run time.
type Operand interface {
	Invoke(m Method, rhs any) (any, error)
}

// Invoke resolves m against the concrete type of lhs. For shifts rhs must be
// a U32; otherwise it must have the same type as lhs.
func Invoke(m Method, lhs, rhs any) (any, error) {
	op, ok := lhs.(Operand)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %T", ErrNotNumeric, m, lhs)
	}
	return op.Invoke(m, rhs)
}

func invoke[T Numeric[T]](lhs T, m Method, rhs any) (any, error) {
	if m.IsShift() {
		amount, ok := rhs.(U32)
		if !ok {
			return nil, fmt.Errorf("%w: %s amount must be u32, got %T", ErrTypeMismatch, m, rhs)
		}
		if m == MethodShl {
			return lhs.FastShl(uint32(amount)), nil
		}
		return lhs.FastShr(uint32(amount)), nil
	}

	r, ok := rhs.(T)
	if !ok {
		return nil, fmt.Errorf("%w: %s(%T, %T)", ErrTypeMismatch, m, lhs, rhs)
	}
	switch m {
	case MethodAdd:
		return lhs.FastAdd(r), nil
	case MethodSub:
		return lhs.FastSub(r), nil
	case MethodMul:
		return lhs.FastMul(r), nil
	case MethodDiv:
		return lhs.FastDiv(r), nil
	case MethodRem:
		return lhs.FastRem(r), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
}
