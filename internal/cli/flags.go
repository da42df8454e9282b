package cli

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	uint128 "github.com/shabbyrobe/go-uint128"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const envVarPrefix = "U128"

// flagNameToEnvVar forms the environment variable that can supply a flag's
// default, e.g. "log-level" becomes "U128_LOG_LEVEL".
func flagNameToEnvVar(name string) string {
	return envVarPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// envDefault returns the value of the flag's environment variable if it is
// set, otherwise def.
func envDefault(name string, def string) string {
	if v, ok := os.LookupEnv(flagNameToEnvVar(name)); ok && v != "" {
		return v
	}
	return def
}

// inputBase is a pflag.Value accepting 2, 8, 10 or 16, or 0 to pick the base
// from each value's prefix.
type inputBase int

var _ pflag.Value = (*inputBase)(nil)

func (b *inputBase) String() string { return strconv.Itoa(int(*b)) }
func (b *inputBase) Type() string   { return "base" }

func (b *inputBase) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "invalid base %q", s)
	}
	switch v {
	case 0, 2, 8, 10, 16:
		*b = inputBase(v)
		return nil
	}
	return errors.Wrapf(uint128.ErrInvalidBase, "input base %d, expected 0, 2, 8, 10 or 16", v)
}

// outputBase is a pflag.Value accepting any base from 2 to 16.
type outputBase int

var _ pflag.Value = (*outputBase)(nil)

func (b *outputBase) String() string { return strconv.Itoa(int(*b)) }
func (b *outputBase) Type() string   { return "base" }

func (b *outputBase) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return errors.Wrapf(err, "invalid base %q", s)
	}
	if v < 2 || v > 16 {
		return errors.Wrapf(uint128.ErrInvalidBase, "output base %d, expected 2 to 16", v)
	}
	*b = outputBase(v)
	return nil
}

// endianValue is a pflag.Value for uint128.Endian.
type endianValue uint128.Endian

var _ pflag.Value = (*endianValue)(nil)

func (e *endianValue) String() string { return uint128.Endian(*e).String() }
func (e *endianValue) Type() string   { return "endian" }

func (e *endianValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "big", "be":
		*e = endianValue(uint128.BigEndian)
	case "little", "le":
		*e = endianValue(uint128.LittleEndian)
	default:
		return errors.Errorf("invalid byte order %q, expected big or little", s)
	}
	return nil
}

func addFromFlag(f *pflag.FlagSet, p *inputBase) {
	f.VarP(p, "from", "f", "Input base: 2, 8, 10 or 16; 0 reads a 0x, 0o or 0b prefix and defaults to decimal")
}

func addToFlag(f *pflag.FlagSet, p *outputBase) {
	f.VarP(p, "to", "t", "Output base, from 2 to 16")
}

// parseValue parses a command line value. Unlike uint128.U128FromString,
// which stops quietly at the first invalid digit, the whole of s must be a
// number that fits in 128 bits.
func parseValue(s string, base int) (uint128.U128, error) {
	in := strings.TrimSpace(s)
	if base == 0 {
		base = 10
		if len(in) > 2 && in[0] == '0' {
			switch in[1] {
			case 'x', 'X':
				base, in = 16, in[2:]
			case 'o', 'O':
				base, in = 8, in[2:]
			case 'b', 'B':
				base, in = 2, in[2:]
			}
		}
	}
	if in == "" {
		return uint128.Zero, errors.Errorf("empty value %q", s)
	}

	u, err := uint128.U128FromString(in, base)
	if err != nil {
		return u, err
	}

	// Rendering back catches both invalid digits and values wider than 128
	// bits.
	back, err := u.Str(base, 0)
	if err != nil {
		return u, err
	}
	if trimZeros(strings.ToLower(in)) != trimZeros(back) {
		return uint128.Zero, errors.Errorf("value %q is not a base %d number in the 128-bit range", s, base)
	}

	log.WithFields(log.Fields{"input": s, "base": base, "hi": u.Hi(), "lo": u.Lo()}).Debug("parsed value")
	return u, nil
}

func trimZeros(s string) string {
	return strings.TrimLeft(s, "0")
}

// valuesFromArgsOrStdin returns args, or if there are none and STDIN is not a
// terminal, one value per non-blank line of STDIN. Lines starting with '#'
// are skipped.
func valuesFromArgsOrStdin(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil, errors.New("no values given; pass them as arguments or pipe them to STDIN")
	}

	var out []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read STDIN")
	}
	if len(out) == 0 {
		return nil, errors.New("no values found on STDIN")
	}
	log.WithField("count", len(out)).Debug("read values from STDIN")
	return out, nil
}
