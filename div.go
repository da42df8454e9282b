package uint128

import (
	"github.com/pkg/errors"
)

// DivMod returns the quotient and remainder of dividend / divisor. It returns
// an error wrapping ErrDivideByZero if divisor is zero; this is the only
// arithmetic operation that reports a failure rather than wrapping.
//
// DivMod uses binary long division: one shift, compare and subtract step per
// significant bit of the dividend, so never more than 128 steps.
func DivMod(dividend, divisor U128) (q, r U128, err error) {
	if divisor.hi|divisor.lo == 0 {
		return q, r, errors.Wrapf(ErrDivideByZero, "%s / 0", dividend)
	}
	q, r = quorem(dividend, divisor)
	return q, r, nil
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs, just like it would for a native integer.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs; the panic value is ErrDivideByZero.
// Use DivMod to receive an error instead.
//
// QuoRem implements truncated division and modulus (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi|by.lo == 0 {
		panic(ErrDivideByZero)
	}
	return quorem(u, by)
}

// QuoRem64 is QuoRem with a 64-bit divisor and remainder.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	var rr U128
	q, rr = u.QuoRem(U128{lo: by})
	return q, rr.lo
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// quorem expects a nonzero divisor.
func quorem(u, by U128) (q, r U128) {
	if by.hi == 0 && by.lo == 1 {
		return u, r
	}

	if u.hi|by.hi == 0 {
		// protected from div/0 because by.lo is guaranteed to be set if by.hi is 0:
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder

	} else if cmp == 0 {
		q.lo = 1 // dividend and divisor are the same
		return q, r
	}

	return quorem128bin(u, by)
}

// quorem128bin walks the dividend from its highest set bit down to bit 0,
// shifting each bit into the running remainder and subtracting the divisor
// whenever the remainder reaches it.
func quorem128bin(u, by U128) (q, r U128) {
	for i := u.BitLen() - 1; i >= 0; i-- {
		// If the remainder's top bit is about to be shifted out, the true
		// remainder is >= 2^128 > by; the wrapped subtraction below is still
		// exact because the result is < by.
		carry := r.hi >> 63

		// {{{ Lsh(1)
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		r.hi = (r.hi << 1) | (r.lo >> 63)
		r.lo = r.lo << 1
		// }}}

		r.lo |= uint64(u.Bit(i))

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if carry != 0 || !(r.hi < by.hi || (r.hi == by.hi && r.lo < by.lo)) {
			r = r.Sub(by)
			q.lo |= 1
		}
	}
	return q, r
}
