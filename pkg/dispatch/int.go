package dispatch

// Integer fast operations are the raw Go operators. Go defines signed and
// unsigned overflow as two's-complement wraparound, so FastAdd, FastSub and
// FastMul always agree with wrapping arithmetic. Division by zero traps.

// I8 is the i8 numeric type.
type I8 int8

// I16 is the i16 numeric type.
type I16 int16

// I32 is the i32 numeric type.
type I32 int32

// I64 is the i64 numeric type.
type I64 int64

// Int is the isize numeric type.
type Int int

// U8 is the u8 numeric type.
type U8 uint8

// U16 is the u16 numeric type.
type U16 uint16

// U32 is the u32 numeric type.
type U32 uint32

// U64 is the u64 numeric type.
type U64 uint64

// Uint is the usize numeric type.
type Uint uint

func (a I8) FastAdd(b I8) I8 { return a + b }
func (a I8) FastSub(b I8) I8 { return a - b }
func (a I8) FastMul(b I8) I8 { return a * b }
func (a I8) FastDiv(b I8) I8 { return a / b }
func (a I8) FastRem(b I8) I8 { return a % b }
func (a I8) FastShl(n uint32) I8 { return a << n }
func (a I8) FastShr(n uint32) I8 { return a >> n }
func (a I8) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a I16) FastAdd(b I16) I16 { return a + b }
func (a I16) FastSub(b I16) I16 { return a - b }
func (a I16) FastMul(b I16) I16 { return a * b }
func (a I16) FastDiv(b I16) I16 { return a / b }
func (a I16) FastRem(b I16) I16 { return a % b }
func (a I16) FastShl(n uint32) I16 { return a << n }
func (a I16) FastShr(n uint32) I16 { return a >> n }
func (a I16) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a I32) FastAdd(b I32) I32 { return a + b }
func (a I32) FastSub(b I32) I32 { return a - b }
func (a I32) FastMul(b I32) I32 { return a * b }
func (a I32) FastDiv(b I32) I32 { return a / b }
func (a I32) FastRem(b I32) I32 { return a % b }
func (a I32) FastShl(n uint32) I32 { return a << n }
func (a I32) FastShr(n uint32) I32 { return a >> n }
func (a I32) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a I64) FastAdd(b I64) I64 { return a + b }
func (a I64) FastSub(b I64) I64 { return a - b }
func (a I64) FastMul(b I64) I64 { return a * b }
func (a I64) FastDiv(b I64) I64 { return a / b }
func (a I64) FastRem(b I64) I64 { return a % b }
func (a I64) FastShl(n uint32) I64 { return a << n }
func (a I64) FastShr(n uint32) I64 { return a >> n }
func (a I64) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a Int) FastAdd(b Int) Int { return a + b }
func (a Int) FastSub(b Int) Int { return a - b }
func (a Int) FastMul(b Int) Int { return a * b }
func (a Int) FastDiv(b Int) Int { return a / b }
func (a Int) FastRem(b Int) Int { return a % b }
func (a Int) FastShl(n uint32) Int { return a << n }
func (a Int) FastShr(n uint32) Int { return a >> n }
func (a Int) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a U8) FastAdd(b U8) U8 { return a + b }
func (a U8) FastSub(b U8) U8 { return a - b }
func (a U8) FastMul(b U8) U8 { return a * b }
func (a U8) FastDiv(b U8) U8 { return a / b }
func (a U8) FastRem(b U8) U8 { return a % b }
func (a U8) FastShl(n uint32) U8 { return a << n }
func (a U8) FastShr(n uint32) U8 { return a >> n }
func (a U8) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a U16) FastAdd(b U16) U16 { return a + b }
func (a U16) FastSub(b U16) U16 { return a - b }
func (a U16) FastMul(b U16) U16 { return a * b }
func (a U16) FastDiv(b U16) U16 { return a / b }
func (a U16) FastRem(b U16) U16 { return a % b }
func (a U16) FastShl(n uint32) U16 { return a << n }
func (a U16) FastShr(n uint32) U16 { return a >> n }
func (a U16) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a U32) FastAdd(b U32) U32 { return a + b }
func (a U32) FastSub(b U32) U32 { return a - b }
func (a U32) FastMul(b U32) U32 { return a * b }
func (a U32) FastDiv(b U32) U32 { return a / b }
func (a U32) FastRem(b U32) U32 { return a % b }
func (a U32) FastShl(n uint32) U32 { return a << n }
func (a U32) FastShr(n uint32) U32 { return a >> n }
func (a U32) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a U64) FastAdd(b U64) U64 { return a + b }
func (a U64) FastSub(b U64) U64 { return a - b }
func (a U64) FastMul(b U64) U64 { return a * b }
func (a U64) FastDiv(b U64) U64 { return a / b }
func (a U64) FastRem(b U64) U64 { return a % b }
func (a U64) FastShl(n uint32) U64 { return a << n }
func (a U64) FastShr(n uint32) U64 { return a >> n }
func (a U64) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a Uint) FastAdd(b Uint) Uint { return a + b }
func (a Uint) FastSub(b Uint) Uint { return a - b }
func (a Uint) FastMul(b Uint) Uint { return a * b }
func (a Uint) FastDiv(b Uint) Uint { return a / b }
func (a Uint) FastRem(b Uint) Uint { return a % b }
func (a Uint) FastShl(n uint32) Uint { return a << n }
func (a Uint) FastShr(n uint32) Uint { return a >> n }
func (a Uint) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }
