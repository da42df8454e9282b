package uint128

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// parseText is the strict parser used by the unmarshallers: the whole string
// must be a valid number that fits in 128 bits. Decimal is the default; 0x,
// 0o and 0b prefixes select another base.
func parseText(s string) (out U128, err error) {
	base := 10
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		base = 0
	}

	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return out, errors.Errorf("u128: string %q invalid", s)
	}
	out, accurate := U128FromBigInt(b)
	if !accurate {
		return Zero, errors.Errorf("u128: string %q out of range", s)
	}
	return out, nil
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := parseText(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Errorf("u128: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := parseText(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalYAML implements yaml.Marshaler (gopkg.in/yaml.v2) without importing
// it; values are emitted as decimal strings.
func (u U128) MarshalYAML() (interface{}, error) {
	return u.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler (gopkg.in/yaml.v2).
func (u *U128) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := parseText(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
