package dispatch

import "math"

// F32 is the f32 numeric type.
type F32 float32

// F64 is the f64 numeric type.
type F64 float64

// Float fast operations place no ordering constraints on the compiler; the
// results agree with strict IEEE arithmetic for finite, non-overflowing
// operands. Shifts are unreachable in well-typed input and panic.

func (a F32) FastAdd(b F32) F32 { return a + b }
func (a F32) FastSub(b F32) F32 { return a - b }
func (a F32) FastMul(b F32) F32 { return a * b }
func (a F32) FastDiv(b F32) F32 { return a / b }
func (a F32) FastRem(b F32) F32 { return F32(math.Mod(float64(a), float64(b))) }
func (a F32) FastShl(uint32) F32 { panic(ErrFloatShift) }
func (a F32) FastShr(uint32) F32 { panic(ErrFloatShift) }
func (a F32) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a F64) FastAdd(b F64) F64 { return a + b }
func (a F64) FastSub(b F64) F64 { return a - b }
func (a F64) FastMul(b F64) F64 { return a * b }
func (a F64) FastDiv(b F64) F64 { return a / b }
func (a F64) FastRem(b F64) F64 { return F64(math.Mod(float64(a), float64(b))) }
func (a F64) FastShl(uint32) F64 { panic(ErrFloatShift) }
func (a F64) FastShr(uint32) F64 { panic(ErrFloatShift) }
func (a F64) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }
