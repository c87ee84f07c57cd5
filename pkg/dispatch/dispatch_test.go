package dispatch

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestMethodNames(t *testing.T) {
	expected := []string{"fast_add", "fast_sub", "fast_mul", "fast_div", "fast_rem", "fast_shl", "fast_shr"}
	methods := Methods()
	if len(methods) != len(expected) {
		t.Fatalf("expected %d methods, got %d", len(expected), len(methods))
	}
	for i, m := range methods {
		if m.String() != expected[i] {
			t.Errorf("method %d: expected %q, got %q", i, expected[i], m.String())
		}
		parsed, ok := ParseMethod(expected[i])
		if !ok || parsed != m {
			t.Errorf("ParseMethod(%q) = %v, %v", expected[i], parsed, ok)
		}
	}
	if _, ok := ParseMethod("fast_pow"); ok {
		t.Error("ParseMethod accepted an unknown name")
	}
	if Method(42).String() != "?" {
		t.Errorf("out of range method: got %q", Method(42).String())
	}
}

func TestIntegerFastAdd(t *testing.T) {
	a, b := U32(1), U32(2)
	if got := a.FastAdd(b); got != 3 {
		t.Errorf("1 fast_add 2 = %d", got)
	}
	if got := Add(a, b); got != 3 {
		t.Errorf("Add(1, 2) = %d", got)
	}
}

func TestIntegerOverflowWraps(t *testing.T) {
	if got := U8(math.MaxUint8).FastAdd(1); got != 0 {
		t.Errorf("u8 max + 1 = %d, want 0", got)
	}
	if got := I32(math.MaxInt32).FastAdd(1); got != math.MinInt32 {
		t.Errorf("i32 max + 1 = %d, want min", got)
	}
	if got := U16(0).FastSub(1); got != math.MaxUint16 {
		t.Errorf("u16 0 - 1 = %d, want max", got)
	}
}

// Add, sub and mul must coincide with modular arithmetic for every pair,
// including the overflowing ones.
func TestWraparoundAgreementExhaustive8(t *testing.T) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			ua, ub := U8(x), U8(y)
			if got, want := ua.FastAdd(ub), U8((x+y)&0xff); got != want {
				t.Fatalf("u8 %d+%d: got %d, want %d", x, y, got, want)
			}
			if got, want := ua.FastSub(ub), U8((x-y)&0xff); got != want {
				t.Fatalf("u8 %d-%d: got %d, want %d", x, y, got, want)
			}
			if got, want := ua.FastMul(ub), U8((x*y)&0xff); got != want {
				t.Fatalf("u8 %d*%d: got %d, want %d", x, y, got, want)
			}

			sx, sy := int(int8(x)), int(int8(y))
			ia, ib := I8(sx), I8(sy)
			if got, want := ia.FastAdd(ib), I8(wrap8(sx+sy)); got != want {
				t.Fatalf("i8 %d+%d: got %d, want %d", sx, sy, got, want)
			}
			if got, want := ia.FastSub(ib), I8(wrap8(sx-sy)); got != want {
				t.Fatalf("i8 %d-%d: got %d, want %d", sx, sy, got, want)
			}
			if got, want := ia.FastMul(ib), I8(wrap8(sx*sy)); got != want {
				t.Fatalf("i8 %d*%d: got %d, want %d", sx, sy, got, want)
			}
		}
	}
}

func wrap8(v int) int {
	v &= 0xff
	if v >= 128 {
		v -= 256
	}
	return v
}

// For pairs with a representable result the fast path equals exact math.
func TestSafeInputsMatchExact(t *testing.T) {
	for x := -128; x < 128; x++ {
		for y := -128; y < 128; y++ {
			if y == 0 || (x == -128 && y == -1) {
				continue
			}
			a, b := I8(x), I8(y)
			q := new(big.Int).Quo(big.NewInt(int64(x)), big.NewInt(int64(y)))
			r := new(big.Int).Rem(big.NewInt(int64(x)), big.NewInt(int64(y)))
			if got := a.FastDiv(b); int64(got) != q.Int64() {
				t.Fatalf("%d/%d: got %d, want %s", x, y, got, q)
			}
			if got := a.FastRem(b); int64(got) != r.Int64() {
				t.Fatalf("%d%%%d: got %d, want %s", x, y, got, r)
			}
			if sum := x + y; sum >= -128 && sum < 128 {
				if got := a.FastAdd(b); int(got) != sum {
					t.Fatalf("%d+%d: got %d", x, y, got)
				}
			}
		}
	}
}

func TestIntegerOtherOps(t *testing.T) {
	x, y := I16(-5), I16(3)
	tests := []struct {
		name string
		got  I16
		want I16
	}{
		{"sub", x.FastSub(y), -8},
		{"mul", x.FastMul(y), -15},
		{"div", x.FastDiv(y), -1},
		{"rem", x.FastRem(y), -2},
		{"shl", x.FastShl(2), -20},
		{"shr", x.FastShr(1), -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestChainedOpsWrap(t *testing.T) {
	// ((a + b) * c) / d with a + b overflowing i32
	a, b, c, d := I32(math.MaxInt32-10), I32(20), I32(2), I32(3)
	got := Div(Mul(Add(a, b), c), d)
	var w int32 = math.MaxInt32 - 10
	w += 20
	w *= 2
	w /= 3
	if int32(got) != w {
		t.Errorf("got %d, want %d", got, w)
	}
}

func TestFloatAgreesWithinEpsilon(t *testing.T) {
	const epsilon = 1e-6
	values := []float64{0.5, 1.5, -2.3, 3.14, 10.25, -7.75}
	for _, x := range values {
		for _, y := range values {
			a, b := F64(x), F64(y)
			checks := []struct {
				name      string
				got, want float64
			}{
				{"add", float64(a.FastAdd(b)), x + y},
				{"sub", float64(a.FastSub(b)), x - y},
				{"mul", float64(a.FastMul(b)), x * y},
				{"div", float64(a.FastDiv(b)), x / y},
				{"rem", float64(a.FastRem(b)), math.Mod(x, y)},
			}
			for _, c := range checks {
				if math.Abs(c.got-c.want) >= epsilon {
					t.Errorf("%s(%v, %v): got %v, want %v", c.name, x, y, c.got, c.want)
				}
			}

			fa, fb := F32(x), F32(y)
			if got, want := float32(fa.FastMul(fb)), float32(x)*float32(y); math.Abs(float64(got-want)) >= epsilon {
				t.Errorf("f32 mul(%v, %v): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFloatShiftPanics(t *testing.T) {
	shifts := map[string]func(){
		"f32 shl": func() { F32(1).FastShl(1) },
		"f32 shr": func() { F32(1).FastShr(1) },
		"f64 shl": func() { F64(1).FastShl(1) },
		"f64 shr": func() { F64(1).FastShr(1) },
	}
	for name, fn := range shifts {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrFloatShift) {
					t.Errorf("expected ErrFloatShift panic, got %v", r)
				}
			}()
			fn()
		})
	}
}

func TestInvoke(t *testing.T) {
	got, err := Invoke(MethodMul, I64(6), I64(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != I64(42) {
		t.Errorf("expected 42, got %v", got)
	}

	got, err = Invoke(MethodShl, U8(1), U32(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != U8(8) {
		t.Errorf("expected 8, got %v", got)
	}

	got, err = Invoke(MethodAdd, Vec2[F32]{1, 2}, Vec2[F32]{0.5, 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (Vec2[F32]{1.5, 2.5}) {
		t.Errorf("expected {1.5 2.5}, got %v", got)
	}
}

func TestInvokeErrors(t *testing.T) {
	tests := []struct {
		name    string
		m       Method
		lhs     any
		rhs     any
		wantErr error
	}{
		{"mixed widths", MethodAdd, I32(1), I64(1), ErrTypeMismatch},
		{"shift by u8", MethodShr, U64(8), U8(1), ErrTypeMismatch},
		{"not numeric", MethodSub, "x", "y", ErrNotNumeric},
		{"unknown method", Method(99), U32(1), U32(1), ErrUnknownMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Invoke(tt.m, tt.lhs, tt.rhs)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
