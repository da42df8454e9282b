package cli

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	uint128 "github.com/shabbyrobe/go-uint128"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type bytesRecord struct {
	Input  string       `json:"input" yaml:"input"`
	Value  uint128.U128 `json:"value" yaml:"value"`
	Endian string       `json:"endian" yaml:"endian"`
	Hex    string       `json:"hex" yaml:"hex"`
}

func (r bytesRecord) line() string {
	return r.Hex
}

// decodedRecord is printed by 'bytes --decode'.
type decodedRecord struct {
	Input  string       `json:"input" yaml:"input"`
	Endian string       `json:"endian" yaml:"endian"`
	Value  uint128.U128 `json:"value" yaml:"value"`
}

func (r decodedRecord) line() string { return r.Value.String() }

type bytesOptions struct {
	from    inputBase
	endian  endianValue
	compact bool
	decode  bool
}

func newBytesCmd(g *globalOptions) *cobra.Command {
	opts := bytesOptions{endian: endianValue(uint128.BigEndian)}

	cmd := &cobra.Command{
		Use:   "bytes [VALUE...]",
		Short: "Print the byte representation of values as hex",
		Long: `Print the 16 byte big-endian representation of each VALUE as hex.

With --compact, leading zero bytes are dropped and --endian selects the byte
order. With --decode, each VALUE is instead read as hex bytes in the --endian
order and printed as a decimal number.

With no VALUE arguments, values are read one per line from STDIN, as long
as STDIN is not a terminal.`,
		Example: `  u128 bytes 0x0123456789abcdef
  u128 bytes --compact --endian little 0x0123456789abcdef
  u128 bytes --decode --endian little efcdab8967452301`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := valuesFromArgsOrStdin(cmd, args)
			if err != nil {
				return err
			}
			if !opts.compact && !opts.decode && uint128.Endian(opts.endian) != uint128.BigEndian {
				log.Warn("--endian only applies to --compact and --decode; the full export is always big-endian")
			}

			records := make([]record, 0, len(inputs))
			for _, in := range inputs {
				var r record
				if opts.decode {
					r, err = opts.decodeHex(in)
				} else {
					r, err = opts.export(in)
				}
				if err != nil {
					return err
				}
				records = append(records, r)
			}
			return g.printer(cmd.OutOrStdout()).printList(records)
		},
	}

	f := cmd.Flags()
	addFromFlag(f, &opts.from)
	f.VarP(&opts.endian, "endian", "e", "Byte order for --compact and --decode: big or little")
	f.BoolVarP(&opts.compact, "compact", "c", false, "Drop leading zero bytes")
	f.BoolVarP(&opts.decode, "decode", "d", false, "Read each VALUE as hex bytes and print its decimal value")
	return cmd
}

func (o bytesOptions) export(in string) (bytesRecord, error) {
	u, err := parseValue(in, int(o.from))
	if err != nil {
		return bytesRecord{}, err
	}

	e := uint128.BigEndian
	var raw []byte
	if o.compact {
		e = uint128.Endian(o.endian)
		raw = u.ExportBitsCompactEndian(e)
	} else {
		raw = u.ExportBits(make([]byte, 0, 16))
	}
	return bytesRecord{Input: in, Value: u, Endian: e.String(), Hex: hex.EncodeToString(raw)}, nil
}

func (o bytesOptions) decodeHex(in string) (decodedRecord, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(in, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return decodedRecord{}, errors.Wrapf(err, "invalid hex bytes %q", in)
	}

	e := uint128.Endian(o.endian)
	u, err := uint128.U128FromBytes(raw, e)
	if err != nil {
		return decodedRecord{}, err
	}
	return decodedRecord{Input: in, Endian: e.String(), Value: u}, nil
}
