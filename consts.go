package uint128

const (
	maxUint8  = 1<<8 - 1
	maxUint16 = 1<<16 - 1
	maxUint32 = 1<<32 - 1
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	Zero    = U128{}
	One     = U128{lo: 1}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroU128 U128
)
