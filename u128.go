package uint128

import (
	"math/bits"
)

// U128 is an unsigned 128-bit integer, stored as two 64-bit limbs. The zero
// value is ready to use and equal to Zero.
//
// U128 is a value type; every operation returns a new value and arithmetic
// wraps modulo 2^128 exactly like Go's native unsigned integers.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromInt64 converts a signed 64-bit value using two's complement sign
// extension: a negative v fills the upper limb with ones, so that
// U128FromInt64(-1) == MaxU128. This is the same result as converting a
// negative int64 to a native unsigned type of 128 bits.
func U128FromInt64(v int64) U128 {
	if v < 0 {
		return U128{hi: maxUint64, lo: uint64(v)}
	}
	return U128{lo: uint64(v)}
}

func U128FromInt32(v int32) U128 { return U128FromInt64(int64(v)) }
func U128FromInt16(v int16) U128 { return U128FromInt64(int64(v)) }
func U128FromInt8(v int8) U128   { return U128FromInt64(int64(v)) }
func U128FromInt(v int) U128     { return U128FromInt64(int64(v)) }

func U128FromBool(b bool) U128 {
	if b {
		return One
	}
	return Zero
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Bool reports whether u is nonzero. It is the equivalent of converting a
// native integer to a truth value in languages that allow it.
func (u U128) Bool() bool { return u.hi|u.lo != 0 }

// LogicalAnd reports whether both u and v are nonzero.
func (u U128) LogicalAnd(v U128) bool { return u.Bool() && v.Bool() }

// LogicalOr reports whether either u or v is nonzero.
func (u U128) LogicalOr(v U128) bool { return u.Bool() || v.Bool() }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Hi returns the most significant 64 bits of u.
func (u U128) Hi() uint64 { return u.hi }

// Lo returns the least significant 64 bits of u.
func (u U128) Lo() uint64 { return u.lo }

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }
func (u U128) AsUint32() uint32 { return uint32(u.lo) }
func (u U128) AsUint16() uint16 { return uint16(u.lo) }
func (u U128) AsUint8() uint8   { return uint8(u.lo) }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }
func (u U128) IsUint32() bool { return u.hi == 0 && u.lo <= maxUint32 }
func (u U128) IsUint16() bool { return u.hi == 0 && u.lo <= maxUint16 }
func (u U128) IsUint8() bool  { return u.hi == 0 && u.lo <= maxUint8 }

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Add64(n uint64) (v U128) {
	v.lo = u.lo + n
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Sub64(n uint64) (v U128) {
	v.lo = u.lo - n
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

// Neg returns the two's complement of u, i.e. 0 - u modulo 2^128.
func (u U128) Neg() U128 {
	return u.Not().Inc()
}

// Mul returns u * n, discarding any bits that overflow 128.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = mul128to128(u.hi, u.lo, n.hi, n.lo)
	return dest
}

func (u U128) Mul64(n uint64) (dest U128) {
	dest.hi, dest.lo = mul64to128(u.lo, n)
	dest.hi += u.hi * n
	return dest
}

// Cmp compares u to n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
//
func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Cmp64(n uint64) int {
	if u.hi > 0 || u.lo > n {
		return 1
	} else if u.lo < n {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) Equal64(n uint64) bool {
	return u.hi == 0 && u.lo == n
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) And64(v uint64) (out U128) {
	out.lo = u.lo & v
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Or64(v uint64) (out U128) {
	out.hi = u.hi
	out.lo = u.lo | v
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U128) Xor64(v uint64) (out U128) {
	out.hi = u.hi
	out.lo = u.lo ^ v
	return out
}

// Not returns the bitwise complement of u (^u in Go, ~u elsewhere).
func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

// Lsh returns u << n. Shifting by 128 or more yields zero, as it does for
// Go's native unsigned integers.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else { // n == 64
		v.hi = u.lo
	}
	return v
}

// Rsh returns u >> n. Shifting by 128 or more yields zero.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else { // n == 64
		v.lo = u.hi
	}
	return v
}

// LshU128 is Lsh with a 128-bit shift amount. Any amount that does not fit
// in [0, 128) yields zero.
func (u U128) LshU128(n U128) U128 {
	if n.hi != 0 || n.lo >= 128 {
		return zeroU128
	}
	return u.Lsh(uint(n.lo))
}

// RshU128 is Rsh with a 128-bit shift amount. Any amount that does not fit
// in [0, 128) yields zero.
func (u U128) RshU128(n U128) U128 {
	if n.hi != 0 || n.lo >= 128 {
		return zeroU128
	}
	return u.Rsh(uint(n.lo))
}

// Bit returns the value of the i'th bit of u. Bits outside [0, 128) are 0.
func (u U128) Bit(i int) uint {
	if i < 0 || i >= 128 {
		return 0
	}
	if i >= 64 {
		return uint((u.hi >> uint(i-64)) & 1)
	}
	return uint((u.lo >> uint(i)) & 1)
}

// SetBit returns a copy of u with the i'th bit set to b (0 or 1). It panics if
// b is not 0 or 1, or if i is outside [0, 128).
func (u U128) SetBit(i int, b uint) (out U128) {
	if i < 0 || i >= 128 {
		panic("u128: bit out of range")
	}
	out = u
	switch b {
	case 0:
		if i >= 64 {
			out.hi &^= 1 << uint(i-64)
		} else {
			out.lo &^= 1 << uint(i)
		}
	case 1:
		if i >= 64 {
			out.hi |= 1 << uint(i-64)
		} else {
			out.lo |= 1 << uint(i)
		}
	default:
		panic("u128: bit value not 0 or 1")
	}
	return out
}

// BitLen returns the number of bits required to represent u: the 1-based
// position of the highest set bit, or 0 if u is zero.
func (u U128) BitLen() int {
	if u.hi != 0 {
		return 64 + bits.Len64(u.hi)
	}
	return bits.Len64(u.lo)
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}
