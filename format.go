package uint128

import (
	"fmt"
	"strings"
)

// Format implements fmt.Formatter, so U128 values print with the same verbs
// and flags as Go's native unsigned integers:
//
//	%b    base 2, '#' adds 0b
//	%o    base 8, '#' adds a leading 0
//	%O    base 8 with 0o prefix
//	%d    base 10 (also %v and %s)
//	%x    base 16, lower-case, '#' adds 0x
//	%X    base 16, upper-case, '#' adds 0X
//
// Width, precision and the '-', '0', '+' and ' ' flags behave as they do for
// uint64.
func (u U128) Format(s fmt.State, c rune) {
	var base int
	var prefix string

	switch c {
	case 'b':
		base = 2
		if s.Flag('#') {
			prefix = "0b"
		}
	case 'o':
		base = 8
	case 'O':
		base = 8
		prefix = "0o"
	case 'd', 's', 'v':
		base = 10
	case 'x':
		base = 16
		if s.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		base = 16
		if s.Flag('#') {
			prefix = "0X"
		}
	default:
		fmt.Fprintf(s, "%%!%c(uint128.U128=%s)", c, u.String())
		return
	}

	width, hasWidth := s.Width()
	precision, hasPrecision := s.Precision()

	// Zero padding from the '0' flag is applied to the digits before any
	// prefix or sign is added, the same as the fmt package does for uint64.
	prec := 0
	if hasPrecision {
		prec = precision
		if prec == 0 && u.IsZero() {
			writePadding(s, width)
			return
		}
	} else if s.Flag('0') && !s.Flag('-') && hasWidth {
		prec = width
		if s.Flag('+') || s.Flag(' ') {
			prec--
		}
	}

	num := u.appendStr(nil, base, prec)
	if c == 'X' {
		num = []byte(strings.ToUpper(string(num)))
	}

	if base == 8 && s.Flag('#') && num[0] != '0' {
		prefix += "0"
	}

	var sign string
	if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	out := make([]byte, 0, len(sign)+len(prefix)+len(num))
	out = append(out, sign...)
	out = append(out, prefix...)
	out = append(out, num...)

	if !hasWidth || len(out) >= width {
		_, _ = s.Write(out)
	} else if s.Flag('-') {
		_, _ = s.Write(out)
		writePadding(s, width-len(out))
	} else {
		writePadding(s, width-len(out))
		_, _ = s.Write(out)
	}
}

func writePadding(s fmt.State, n int) {
	if n > 0 {
		_, _ = s.Write([]byte(strings.Repeat(" ", n)))
	}
}
