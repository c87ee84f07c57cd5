package ntypes

import "testing"

func TestTypeConstructors(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		wantStr string
	}{
		{"i8", Int(I8), "i8"},
		{"u16", UInt(I16), "u16"},
		{"i32", Int(I32), "i32"},
		{"u64", UInt(I64), "u64"},
		{"i128", Int(I128), "i128"},
		{"usize", UInt(ISize), "usize"},
		{"f32", Float(), "f32"},
		{"f64", Double(), "f64"},
		{"bool", Bool(), "bool"},
		{"unit", Unit(), "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, name := range []string{"i8", "i16", "i32", "i64", "i128", "isize", "u8", "u16", "u32", "u64", "u128", "usize", "f32", "f64", "bool"} {
		typ, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if typ.String() != name {
			t.Errorf("Lookup(%q).String() = %q", name, typ.String())
		}
	}
	if _, ok := Lookup("int"); ok {
		t.Error("Lookup accepted a C type name")
	}
}

func TestNumericSuffix(t *testing.T) {
	tests := map[string]bool{"u16": true, "f32": true, "i128": true, "bool": false, "x": false}
	for name, want := range tests {
		if got := IsNumericSuffix(name); got != want {
			t.Errorf("IsNumericSuffix(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestBits(t *testing.T) {
	tests := []struct {
		size IntSize
		bits int
	}{
		{I8, 8}, {I16, 16}, {I32, 32}, {I64, 64}, {I128, 128}, {ISize, 64},
	}
	for _, tt := range tests {
		if got := tt.size.Bits(); got != tt.bits {
			t.Errorf("%v.Bits() = %d, want %d", tt.size, got, tt.bits)
		}
	}
}

func TestTypeEquality(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Type
		equal bool
	}{
		{"i32 == i32", Int(I32), Int(I32), true},
		{"i32 != u32", Int(I32), UInt(I32), false},
		{"i32 != i64", Int(I32), Int(I64), false},
		{"f32 != f64", Float(), Double(), false},
		{"bool == bool", Bool(), Bool(), true},
		{"bool != unit", Bool(), Unit(), false},
		{"nil == nil", nil, nil, true},
		{"nil != i8", nil, Int(I8), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
		})
	}
}
