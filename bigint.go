package uint128

import (
	"math/big"
)

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'. Negative values yield zero, also inaccurate.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("u128: unsupported bit size")
	}
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < 2 {
			words = make([]big.Word, 2)
		}
		words = words[:2]
		words[0] = big.Word(u.lo)
		words[1] = big.Word(u.hi)
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < 4 {
			words = make([]big.Word, 4)
		}
		words = words[:4]
		words[0] = big.Word(u.lo & 0xFFFFFFFF)
		words[1] = big.Word(u.lo >> 32)
		words[2] = big.Word(u.hi & 0xFFFFFFFF)
		words[3] = big.Word(u.hi >> 32)
		b.SetBits(words)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

// AsBigInt allocates a new big.Int and copies this U128 into it.
func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}
