package cli

import (
	uint128 "github.com/shabbyrobe/go-uint128"
	"github.com/spf13/cobra"
)

type divModRecord struct {
	Dividend  uint128.U128 `json:"dividend" yaml:"dividend"`
	Divisor   uint128.U128 `json:"divisor" yaml:"divisor"`
	Quotient  uint128.U128 `json:"quotient" yaml:"quotient"`
	Remainder uint128.U128 `json:"remainder" yaml:"remainder"`

	text string
}

func (r divModRecord) line() string { return r.text }

func newDivModCmd(g *globalOptions) *cobra.Command {
	var from inputBase
	to := outputBase(10)

	cmd := &cobra.Command{
		Use:   "divmod A B",
		Short: "Print the quotient and remainder of A / B",
		Long: `Print the truncated quotient and the remainder of A / B, separated by a
space, in the base given by --to. Division by zero is an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseValue(args[0], int(from))
			if err != nil {
				return err
			}
			b, err := parseValue(args[1], int(from))
			if err != nil {
				return err
			}

			q, r, err := uint128.DivMod(a, b)
			if err != nil {
				return err
			}
			qs, err := q.Str(int(to), 0)
			if err != nil {
				return err
			}
			rs, err := r.Str(int(to), 0)
			if err != nil {
				return err
			}

			out := divModRecord{Dividend: a, Divisor: b, Quotient: q, Remainder: r, text: qs + " " + rs}
			return g.printer(cmd.OutOrStdout()).printOne(out)
		},
	}

	f := cmd.Flags()
	addFromFlag(f, &from)
	addToFlag(f, &to)
	return cmd
}
