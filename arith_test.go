package uint128

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"github.com/zeebo/mwc"
)

func TestMul128To128(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := mwc.Rand()

	for i := 0; i < 50000; i++ {
		u1, u2 := RandU128(&rng), RandU128(&rng)

		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		if i%4 == 1 {
			u1.hi = 0
		} else if i%4 == 2 {
			u2.hi = 0
		}

		b1, b2 := u1.AsBigInt(), u2.AsBigInt()
		rhi, rlo := mul128to128(u1.hi, u1.lo, u2.hi, u2.lo)

		rb := new(big.Int).Mul(b1, b2)
		rb.And(rb, maxBigU128)

		tt.MustEqual(rb.String(), U128{hi: rhi, lo: rlo}.String(), "failed at index %d\n%s%s", i, dump(u1), dump(u2))
	}
}

func TestMul128To128Edges(t *testing.T) {
	for _, tc := range []struct {
		a, b, out U128
	}{
		{MaxU128, MaxU128, One},
		{MaxU128, Zero, Zero},
		{U128{hi: 1}, U128{hi: 1}, Zero}, // 2^128 wraps
		{U128{lo: 1 << 63}, u64(2), U128{hi: 1}},
		{U128{lo: mask32}, U128{lo: mask32}, U128{lo: 0xfffffffe00000001}},
	} {
		tt := assert.WrapTB(t)
		hi, lo := mul128to128(tc.a.hi, tc.a.lo, tc.b.hi, tc.b.lo)
		tt.MustEqual(tc.out, U128{hi: hi, lo: lo})
	}
}

func TestMul64To128(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := mwc.Rand()

	for i := 0; i < 50000; i++ {
		a, b := rng.Uint64(), rng.Uint64()
		hi, lo := mul64to128(a, b)

		rb := new(big.Int).Mul(bigU64(a), bigU64(b))
		tt.MustEqual(rb.String(), U128{hi: hi, lo: lo}.String(), "%d * %d", a, b)
	}
}

var BenchU128In1, BenchU128In2 = U128{hi: 1234, lo: 5678}, U128{hi: 9123, lo: 5678}

func BenchmarkMul128to128(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, _ = mul128to128(BenchU128In1.hi, BenchU128In1.lo, BenchU128In2.hi, BenchU128In2.lo)
	}
}
