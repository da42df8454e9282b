package uint128

const mask32 = 0xffffffff

// mul128to128 multiplies two 128-bit values, each split into four 32-bit
// digits, and returns the low 128 bits of the product.
//
// Digit k of the result collects the low half of every partial product
// a[i]*b[j] where i+j == k and the high half of every partial product where
// i+j == k-1. Partial products that only contribute above digit 3 are never
// computed. Each accumulator sums at most seven 32-bit quantities, so none of
// them can overflow a uint64 before the carries are propagated.
func mul128to128(uhi, ulo, nhi, nlo uint64) (ohi, olo uint64) {
	a0, a1, a2, a3 := ulo&mask32, ulo>>32, uhi&mask32, uhi>>32
	b0, b1, b2, b3 := nlo&mask32, nlo>>32, nhi&mask32, nhi>>32

	// row a0
	p00, p01, p02, p03 := a0*b0, a0*b1, a0*b2, a0*b3
	d0 := p00 & mask32
	d1 := (p01 & mask32) + (p00 >> 32)
	d2 := (p02 & mask32) + (p01 >> 32)
	d3 := (p03 & mask32) + (p02 >> 32)

	// row a1
	p10, p11, p12 := a1*b0, a1*b1, a1*b2
	d1 += p10 & mask32
	d2 += (p11 & mask32) + (p10 >> 32)
	d3 += (p12 & mask32) + (p11 >> 32)

	// row a2
	p20, p21 := a2*b0, a2*b1
	d2 += p20 & mask32
	d3 += (p21 & mask32) + (p20 >> 32)

	// row a3
	d3 += (a3 * b0) & mask32

	// carry upwards, then strip the carry from each digit
	d1 += d0 >> 32
	d2 += d1 >> 32
	d3 += d2 >> 32

	d0 &= mask32
	d1 &= mask32
	d2 &= mask32
	d3 &= mask32

	return (d3 << 32) | d2, (d1 << 32) | d0
}

// mul64to128 returns the full 128-bit product of two uint64s.
func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & mask32)
		v1 = (v & mask32)
		t  = (u1 * v1)
		w3 = (t & mask32)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & mask32)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}
