package dispatch

import (
	"math/big"

	"lukechampine.com/uint128"
)

// U128 is the u128 numeric type.
type U128 uint128.Uint128

// I128 is the i128 numeric type, stored as its two's-complement bit pattern.
type I128 uint128.Uint128

// U128From64 widens a uint64.
func U128From64(v uint64) U128 { return U128(uint128.From64(v)) }

// I128From64 sign-extends an int64.
func I128From64(v int64) I128 {
	hi := uint64(0)
	if v < 0 {
		hi = ^uint64(0)
	}
	return I128(uint128.New(uint64(v), hi))
}

var mod128 = new(big.Int).Lsh(big.NewInt(1), 128)

// wrap128 reduces b modulo 2^128 into [0, 2^128).
func wrap128(b *big.Int) uint128.Uint128 {
	r := new(big.Int).Mod(b, mod128)
	return uint128.FromBig(r)
}

// U128FromBig truncates b to its low 128 bits.
func U128FromBig(b *big.Int) U128 { return U128(wrap128(b)) }

// I128FromBig truncates b to its low 128 bits, read as two's complement.
func I128FromBig(b *big.Int) I128 { return I128(wrap128(b)) }

func (a U128) u() uint128.Uint128 { return uint128.Uint128(a) }

// Big returns the value as a big.Int.
func (a U128) Big() *big.Int { return a.u().Big() }

func (a U128) String() string { return a.u().String() }

func (a U128) FastAdd(b U128) U128 { return U128(a.u().AddWrap(b.u())) }
func (a U128) FastSub(b U128) U128 { return U128(a.u().SubWrap(b.u())) }
func (a U128) FastMul(b U128) U128 { return U128(a.u().MulWrap(b.u())) }
func (a U128) FastDiv(b U128) U128 { return U128(a.u().Div(b.u())) }
func (a U128) FastRem(b U128) U128 { return U128(a.u().Mod(b.u())) }

func (a U128) FastShl(n uint32) U128 { return U128(a.u().Lsh(uint(n))) }
func (a U128) FastShr(n uint32) U128 { return U128(a.u().Rsh(uint(n))) }

func (a U128) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }

func (a I128) u() uint128.Uint128 { return uint128.Uint128(a) }

func (a I128) negative() bool { return a.Hi>>63 == 1 }

// abs returns the magnitude of a; the magnitude of the minimum value wraps
// onto itself, which the unsigned division below handles correctly.
func (a I128) abs() uint128.Uint128 {
	if a.negative() {
		return uint128.Zero.SubWrap(a.u())
	}
	return a.u()
}

func neg128(v uint128.Uint128) I128 { return I128(uint128.Zero.SubWrap(v)) }

// Big returns the value as a big.Int.
func (a I128) Big() *big.Int {
	b := a.abs().Big()
	if a.negative() {
		b.Neg(b)
	}
	return b
}

func (a I128) String() string { return a.Big().String() }

// Two's complement add, sub and mul are sign-agnostic.
func (a I128) FastAdd(b I128) I128 { return I128(a.u().AddWrap(b.u())) }
func (a I128) FastSub(b I128) I128 { return I128(a.u().SubWrap(b.u())) }
func (a I128) FastMul(b I128) I128 { return I128(a.u().MulWrap(b.u())) }

// FastDiv truncates toward zero.
func (a I128) FastDiv(b I128) I128 {
	q := a.abs().Div(b.abs())
	if a.negative() != b.negative() {
		return neg128(q)
	}
	return I128(q)
}

// FastRem takes the sign of the dividend.
func (a I128) FastRem(b I128) I128 {
	r := a.abs().Mod(b.abs())
	if a.negative() {
		return neg128(r)
	}
	return I128(r)
}

func (a I128) FastShl(n uint32) I128 { return I128(a.u().Lsh(uint(n))) }

// FastShr is an arithmetic shift.
func (a I128) FastShr(n uint32) I128 {
	if a.negative() {
		inv := uint128.Max.Xor(a.u())
		return I128(uint128.Max.Xor(inv.Rsh(uint(n))))
	}
	return I128(a.u().Rsh(uint(n)))
}

func (a I128) Invoke(m Method, rhs any) (any, error) { return invoke(a, m, rhs) }
