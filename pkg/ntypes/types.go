// Package ntypes names the scalar types of the fastmath language: fixed-width
// integers, floats and bool.
package ntypes

// Type is the interface for all scalar types
type Type interface {
	implType()
	String() string
}

// Signedness represents signed/unsigned for integer types
type Signedness int

const (
	Signed Signedness = iota
	Unsigned
)

func (s Signedness) String() string {
	if s == Signed {
		return "signed"
	}
	return "unsigned"
}

// IntSize represents the width of integer types
type IntSize int

const (
	I8 IntSize = iota
	I16
	I32
	I64
	I128
	ISize // pointer-sized
)

// Bits returns the width in bits; ISize is 64 on every supported target.
func (s IntSize) Bits() int {
	switch s {
	case I8:
		return 8
	case I16:
		return 16
	case I32:
		return 32
	case I128:
		return 128
	}
	return 64
}

func (s IntSize) String() string {
	names := []string{"8", "16", "32", "64", "128", "size"}
	if int(s) < len(names) {
		return names[s]
	}
	return "?"
}

// FloatSize represents the size of floating-point types
type FloatSize int

const (
	F32 FloatSize = iota
	F64
)

func (s FloatSize) String() string {
	if s == F32 {
		return "f32"
	}
	return "f64"
}

// Tint represents integer types
type Tint struct {
	Size IntSize
	Sign Signedness
}

// Tfloat represents floating-point types
type Tfloat struct {
	Size FloatSize
}

// Tbool is the boolean type
type Tbool struct{}

// Tunit is the type of expressions without a value
type Tunit struct{}

func (Tint) implType()   {}
func (Tfloat) implType() {}
func (Tbool) implType()  {}
func (Tunit) implType()  {}

func (t Tint) String() string {
	prefix := "i"
	if t.Sign == Unsigned {
		prefix = "u"
	}
	return prefix + t.Size.String()
}

func (t Tfloat) String() string { return t.Size.String() }

func (Tbool) String() string { return "bool" }

func (Tunit) String() string { return "()" }

// Common type constructors

// Int returns the signed integer type of the given size
func Int(size IntSize) Type {
	return Tint{Size: size, Sign: Signed}
}

// UInt returns the unsigned integer type of the given size
func UInt(size IntSize) Type {
	return Tint{Size: size, Sign: Unsigned}
}

// Float returns the f32 type
func Float() Type {
	return Tfloat{Size: F32}
}

// Double returns the f64 type
func Double() Type {
	return Tfloat{Size: F64}
}

// Bool returns the bool type
func Bool() Type {
	return Tbool{}
}

// Unit returns the unit type
func Unit() Type {
	return Tunit{}
}

var names = map[string]Type{
	"i8":    Int(I8),
	"i16":   Int(I16),
	"i32":   Int(I32),
	"i64":   Int(I64),
	"i128":  Int(I128),
	"isize": Int(ISize),
	"u8":    UInt(I8),
	"u16":   UInt(I16),
	"u32":   UInt(I32),
	"u64":   UInt(I64),
	"u128":  UInt(I128),
	"usize": UInt(ISize),
	"f32":   Float(),
	"f64":   Double(),
	"bool":  Bool(),
}

// Lookup resolves a type name as written in source.
func Lookup(name string) (Type, bool) {
	t, ok := names[name]
	return t, ok
}

// IsNumericSuffix reports whether name may follow a numeric literal (7u16).
func IsNumericSuffix(name string) bool {
	t, ok := names[name]
	if !ok {
		return false
	}
	_, isBool := t.(Tbool)
	return !isBool
}

// Equal checks if two types are equal
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch ta := a.(type) {
	case Tint:
		tb, ok := b.(Tint)
		return ok && ta.Size == tb.Size && ta.Sign == tb.Sign
	case Tfloat:
		tb, ok := b.(Tfloat)
		return ok && ta.Size == tb.Size
	case Tbool:
		_, ok := b.(Tbool)
		return ok
	case Tunit:
		_, ok := b.(Tunit)
		return ok
	}
	return false
}
