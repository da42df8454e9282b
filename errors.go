package uint128

import (
	"github.com/pkg/errors"
)

// Errors returned (or, for the panicking division methods, raised) by this
// package. Errors carrying extra context wrap one of these; compare against
// errors.Cause(err).
var (
	ErrDivideByZero  = errors.New("u128: division or modulus by zero")
	ErrInvalidBase   = errors.New("u128: invalid base")
	ErrInvalidLength = errors.New("u128: invalid length")
)
