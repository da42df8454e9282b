package uint128_test

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	uint128 "github.com/shabbyrobe/go-uint128"
)

func ExampleU128_Mul() {
	u1 := uint128.U128From64(math.MaxUint64)
	u2 := uint128.U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225
}

func ExampleDivMod() {
	q, r, _ := uint128.DivMod(uint128.U128From64(10), uint128.U128From64(3))
	fmt.Println(q, r)

	_, _, err := uint128.DivMod(uint128.One, uint128.Zero)
	fmt.Println(errors.Cause(err) == uint128.ErrDivideByZero)
	// Output:
	// 3 1
	// true
}

func ExampleU128FromString() {
	u, _ := uint128.U128FromString("ffffffffffffffffffffffffffffffff", 16)
	fmt.Println(u.Equal(uint128.MaxU128))

	// Parsing stops at the first character that is not a digit in the base:
	u, _ = uint128.U128FromString("  1234xyz", 10)
	fmt.Println(u)
	// Output:
	// true
	// 1234
}

func ExampleU128_Str() {
	u := uint128.U128From64(2216002924)
	s, _ := u.Str(16, 0)
	fmt.Println(s)
	s, _ = u.Str(3, 24)
	fmt.Println(s)
	// Output:
	// 8415856c
	// 000012201102210121112101
}

func ExampleU128_Format() {
	u := uint128.U128From64(0xfedcba9876543210)
	fmt.Printf("%o %d %x\n", u, u, u)
	fmt.Printf("%#X\n", uint128.MaxU128)
	// Output:
	// 1773345651416625031020 18364758544493064720 fedcba9876543210
	// 0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF
}

func ExampleU128_ExportBitsCompactEndian() {
	u := uint128.U128From64(0x0123456789abcdef)
	fmt.Printf("%x\n", u.ExportBits(nil))
	fmt.Printf("%x\n", u.ExportBitsCompact())
	fmt.Printf("%x\n", u.ExportBitsCompactEndian(uint128.LittleEndian))
	// Output:
	// 00000000000000000123456789abcdef
	// 0123456789abcdef
	// efcdab8967452301
}

func ExampleFrom() {
	u := uint128.U128FromRaw(1, 0)
	fmt.Println(u.Add(uint128.From(-1))) // u - 1, via sign extension
	fmt.Println(uint128.From(uint8(200)).Mul64(2))
	// Output:
	// 18446744073709551615
	// 400
}
