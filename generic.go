package uint128

// Unsigned is the set of native unsigned integer types a U128 can be
// truncated to.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the set of native signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Integer is the set of native integer types a U128 can be built from.
type Integer interface {
	Signed | Unsigned
}

// From promotes any native integer to a U128. Signed values are sign-extended
// into the upper limb (see U128FromInt64), unsigned values are zero-extended.
//
// From is how a native value is used as either operand of a U128 operation:
//
//	u.Add(From(n))      // u + n
//	From(n).Sub(u)      // n - u
//
func From[T Integer](v T) U128 {
	// v < 0 is always false for unsigned T; the conversion through int64 is
	// only reached for signed T.
	if v < 0 {
		return U128FromInt64(int64(v))
	}
	return U128{lo: uint64(v)}
}

// Truncate narrows u to T, keeping only the low bits of the lower limb like a
// native integer conversion would. Use the IsUintN methods to check first.
func Truncate[T Unsigned](u U128) T {
	return T(u.lo)
}
