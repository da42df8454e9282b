package uint128

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const digits = "0123456789abcdef"

// Number of right-most characters considered when parsing in each supported
// base; MaxU128 has exactly this many digits. Octal and decimal windows can
// still hold values above MaxU128, which wrap.
const (
	maxLenBase2  = 128
	maxLenBase8  = 43
	maxLenBase10 = 39
	maxLenBase16 = 32
)

// U128FromString parses s in the given base, which must be 2, 8, 10 or 16.
// Prefixes such as "0x" are not accepted.
//
// Parsing is deliberately forgiving, in the manner of C's strtoul:
//
//   - leading whitespace is skipped;
//   - an empty or all-whitespace string yields zero in any base;
//   - if the input is longer than the widest possible 128-bit value in that
//     base, only the right-most characters are read;
//   - digits are consumed until the first character that is not valid in the
//     base, and the rest of the input is ignored.
//
// An unsupported base yields zero and an error wrapping ErrInvalidBase.
func U128FromString(s string, base int) (out U128, err error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return out, nil
	}

	switch base {
	case 16:
		return parseHex(s), nil
	case 10:
		return parseMul(rightmost(s, maxLenBase10), 10), nil
	case 8:
		return parseMul(rightmost(s, maxLenBase8), 8), nil
	case 2:
		return parseBin(s), nil
	default:
		return out, errors.Wrapf(ErrInvalidBase, "cannot parse base %d, expected 2, 8, 10 or 16", base)
	}
}

func rightmost(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

func digitVal(c byte) uint64 {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0')
	case 'a' <= c && c <= 'f':
		return uint64(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return uint64(c - 'A' + 10)
	}
	return 255
}

// parseHex decodes the upper and lower 16 characters of the window
// independently, so an invalid character in the upper half does not stop
// the lower half from being read.
func parseHex(s string) (out U128) {
	s = rightmost(s, maxLenBase16)
	split := 0
	if len(s) > 16 {
		split = len(s) - 16
	}
	out.hi = parseHex64(s[:split])
	out.lo = parseHex64(s[split:])
	return out
}

func parseHex64(s string) (v uint64) {
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= 16 {
			break
		}
		v = v<<4 | d
	}
	return v
}

func parseMul(s string, base uint64) (out U128) {
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= base {
			break
		}
		out = out.Mul64(base).Add64(d)
	}
	return out
}

// parseBin fills the upper limb from all but the last 64 characters of the
// window, then the lower limb. Reading stops for good at the first character
// that is not a binary digit.
func parseBin(s string) (out U128) {
	s = rightmost(s, maxLenBase2)
	split := 0
	if len(s) > 64 {
		split = len(s) - 64
	}

	i := 0
	for ; i < split; i++ {
		c := s[i]
		if c != '0' && c != '1' {
			return out
		}
		out.hi = out.hi<<1 | uint64(c-'0')
	}
	for ; i < len(s); i++ {
		c := s[i]
		if c != '0' && c != '1' {
			return out
		}
		out.lo = out.lo<<1 | uint64(c-'0')
	}
	return out
}

// Str renders u in the given base, which must be in [2, 16], using lower-case
// digits. The result is left-padded with '0' to at least minLen characters.
// An invalid base returns an error wrapping ErrInvalidBase.
func (u U128) Str(base, minLen int) (string, error) {
	if base < 2 || base > 16 {
		return "", errors.Wrapf(ErrInvalidBase, "cannot render base %d, expected [2, 16]", base)
	}
	return string(u.appendStr(nil, base, minLen)), nil
}

func (u U128) appendStr(dst []byte, base, minLen int) []byte {
	var buf [128]byte
	i := len(buf)

	if u.IsZero() {
		i--
		buf[i] = '0'
	} else {
		by := U128{lo: uint64(base)}
		q, r := u, U128{}
		for !q.IsZero() {
			q, r = quorem(q, by)
			i--
			buf[i] = digits[r.lo]
		}
	}

	for n := len(buf) - i; n < minLen; n++ {
		dst = append(dst, '0')
	}
	return append(dst, buf[i:]...)
}

func (u U128) String() string {
	if u.hi == 0 && u.lo < 10 {
		return digits[u.lo : u.lo+1]
	}
	return string(u.appendStr(nil, 10, 0))
}
