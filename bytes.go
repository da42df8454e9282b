package uint128

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Endian selects the byte order used by the compact byte export. The full
// 16 byte export is always big-endian.
type Endian int

const (
	BigEndian Endian = iota
	LittleEndian
)

func (e Endian) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "unknown"
	}
}

// ExportBits appends the 16 byte big-endian representation of u to dst and
// returns the extended buffer. The upper limb is written first.
func (u U128) ExportBits(dst []byte) []byte {
	var buf [16]byte
	u.PutBits(buf[:])
	return append(dst, buf[:]...)
}

// PutBits stores u in b in big-endian order. It panics if len(b) < 16.
func (u U128) PutBits(b []byte) {
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
}

// ExportBitsCompact returns the big-endian representation of u with leading
// zero bytes removed. Zero yields an empty slice.
func (u U128) ExportBitsCompact() []byte {
	return u.ExportBitsCompactEndian(BigEndian)
}

// ExportBitsCompactEndian returns the compact representation of u in the
// requested byte order; LittleEndian is the byte-reversal of BigEndian.
func (u U128) ExportBitsCompactEndian(e Endian) []byte {
	out := make([]byte, 16)
	n := u.PutBitsCompact(e, out)
	return out[:n]
}

// PutBitsCompact writes the compact representation of u to the start of dst
// in the requested byte order and returns the number of bytes written. It
// panics if dst is too short to hold u.BitLen()/8 (rounded up) bytes.
func (u U128) PutBitsCompact(e Endian, dst []byte) int {
	var buf [16]byte
	u.PutBits(buf[:])

	i := 0
	for i < 16 && buf[i] == 0 {
		i++
	}
	n := copy(dst[:16-i], buf[i:])

	if e == LittleEndian {
		for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
			dst[l], dst[r] = dst[r], dst[l]
		}
	}
	return n
}

// U128FromBytes is the inverse of ExportBitsCompactEndian: it reads up to 16
// bytes in the given order. A longer input returns an error wrapping
// ErrInvalidLength.
func U128FromBytes(b []byte, e Endian) (out U128, err error) {
	if len(b) > 16 {
		return out, errors.Wrapf(ErrInvalidLength, "%d bytes exceeds 16", len(b))
	}

	var buf [16]byte
	if e == LittleEndian {
		for i, c := range b {
			buf[15-i] = c
		}
	} else {
		copy(buf[16-len(b):], b)
	}

	out.hi = binary.BigEndian.Uint64(buf[:8])
	out.lo = binary.BigEndian.Uint64(buf[8:])
	return out, nil
}
