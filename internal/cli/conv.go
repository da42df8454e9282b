package cli

import (
	uint128 "github.com/shabbyrobe/go-uint128"
	"github.com/spf13/cobra"
)

type convRecord struct {
	Input    string       `json:"input" yaml:"input"`
	Value    uint128.U128 `json:"value" yaml:"value"`
	Base     int          `json:"base" yaml:"base"`
	Rendered string       `json:"rendered" yaml:"rendered"`
}

func (r convRecord) line() string { return r.Rendered }

type convOptions struct {
	from  inputBase
	to    outputBase
	width int
}

func newConvCmd(g *globalOptions) *cobra.Command {
	opts := convOptions{to: 10}

	cmd := &cobra.Command{
		Use:   "conv [VALUE...]",
		Short: "Convert values between bases",
		Long: `Parse each VALUE and print it in the base given by --to.

With no VALUE arguments, values are read one per line from STDIN, as long
as STDIN is not a terminal.`,
		Example: `  u128 conv --to 16 340282366920938463463374607431768211455
  u128 conv --to 2 --width 128 0xff
  seq 1 10 | u128 conv --to 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := valuesFromArgsOrStdin(cmd, args)
			if err != nil {
				return err
			}

			records := make([]record, 0, len(inputs))
			for _, in := range inputs {
				r, err := opts.convert(in)
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
	addToFlag(f, &opts.to)
	f.IntVarP(&opts.width, "width", "w", 0, "Left-pad the output with zeros to at least this many digits")
	return cmd
}

func (o convOptions) convert(in string) (convRecord, error) {
	u, err := parseValue(in, int(o.from))
	if err != nil {
		return convRecord{}, err
	}
	s, err := u.Str(int(o.to), o.width)
	if err != nil {
		return convRecord{}, err
	}
	return convRecord{Input: in, Value: u, Base: int(o.to), Rendered: s}, nil
}
