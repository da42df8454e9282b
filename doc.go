/*
Package uint128 provides an unsigned 128-bit integer type, U128, with the
arithmetic, bitwise, shift, comparison and formatting behaviour of Go's
native unsigned integers.

U128 is a value type; all operations return new values. Arithmetic wraps
modulo 2^128, shifts by 128 or more yield zero, and division by zero panics
(or, through DivMod, returns ErrDivideByZero).

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

U128 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromInt64(v int64) U128    // sign-extended
	U128FromBool(b bool) U128
	From[T Integer](v T) U128
	U128FromString(s string, base int) (U128, error)
	U128FromBytes(b []byte, e Endian) (U128, error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)

U128 renders to text in any base from 2 to 16 with Str, and to bytes with
ExportBits, ExportBitsCompact and ExportBitsCompactEndian.

U128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- yaml.Marshaler (gopkg.in/yaml.v2)
	- yaml.Unmarshaler (gopkg.in/yaml.v2)

*/
package uint128
