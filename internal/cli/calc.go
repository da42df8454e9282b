package cli

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	uint128 "github.com/shabbyrobe/go-uint128"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type binaryOp func(a, b uint128.U128) (uint128.U128, error)

var calcOps = map[string]binaryOp{
	"+":  func(a, b uint128.U128) (uint128.U128, error) { return a.Add(b), nil },
	"-":  func(a, b uint128.U128) (uint128.U128, error) { return a.Sub(b), nil },
	"*":  func(a, b uint128.U128) (uint128.U128, error) { return a.Mul(b), nil },
	"&":  func(a, b uint128.U128) (uint128.U128, error) { return a.And(b), nil },
	"|":  func(a, b uint128.U128) (uint128.U128, error) { return a.Or(b), nil },
	"^":  func(a, b uint128.U128) (uint128.U128, error) { return a.Xor(b), nil },
	"&^": func(a, b uint128.U128) (uint128.U128, error) { return a.AndNot(b), nil },
	"<<": func(a, b uint128.U128) (uint128.U128, error) { return a.LshU128(b), nil },
	">>": func(a, b uint128.U128) (uint128.U128, error) { return a.RshU128(b), nil },
	"/": func(a, b uint128.U128) (uint128.U128, error) {
		q, _, err := uint128.DivMod(a, b)
		return q, err
	},
	"%": func(a, b uint128.U128) (uint128.U128, error) {
		_, r, err := uint128.DivMod(a, b)
		return r, err
	},
}

const opCmp = "cmp"

func calcOpNames() []string {
	names := make([]string, 0, len(calcOps)+1)
	for k := range calcOps {
		names = append(names, k)
	}
	sort.Strings(names)
	return append(names, opCmp)
}

type calcRecord struct {
	A      uint128.U128 `json:"a" yaml:"a"`
	Op     string       `json:"op" yaml:"op"`
	B      uint128.U128 `json:"b" yaml:"b"`
	Result string       `json:"result" yaml:"result"`
}

func (r calcRecord) line() string { return r.Result }

type calcOptions struct {
	from  inputBase
	to    outputBase
	width int
}

func newCalcCmd(g *globalOptions) *cobra.Command {
	opts := calcOptions{to: 10}

	cmd := &cobra.Command{
		Use:   "calc A OP B",
		Short: "Apply a binary operator to two values",
		Long: `Apply OP to A and B with 128-bit wrapping arithmetic and print the result
in the base given by --to.

OP is one of: ` + strings.Join(calcOpNames(), " ") + `

Shifts by 128 or more give zero. Division or modulus by zero is an error.
'cmp' prints -1, 0 or 1. Quote operators your shell would interpret.`,
		Example: `  u128 calc 18446744073709551615 '*' 18446744073709551615
  u128 calc --to 16 1 '<<' 127
  u128 calc 0 - 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.calculate(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return g.printer(cmd.OutOrStdout()).printOne(r)
		},
	}

	f := cmd.Flags()
	addFromFlag(f, &opts.from)
	addToFlag(f, &opts.to)
	f.IntVarP(&opts.width, "width", "w", 0, "Left-pad the result with zeros to at least this many digits")
	return cmd
}

func (o calcOptions) calculate(as, op, bs string) (calcRecord, error) {
	a, err := parseValue(as, int(o.from))
	if err != nil {
		return calcRecord{}, err
	}
	b, err := parseValue(bs, int(o.from))
	if err != nil {
		return calcRecord{}, err
	}

	out := calcRecord{A: a, Op: op, B: b}
	if op == opCmp {
		out.Result = strconv.Itoa(a.Cmp(b))
		return out, nil
	}

	fn, ok := calcOps[op]
	if !ok {
		return calcRecord{}, errors.Errorf("unknown operator %q, expected one of: %s", op, strings.Join(calcOpNames(), " "))
	}
	result, err := fn(a, b)
	if err != nil {
		return calcRecord{}, err
	}
	log.WithFields(log.Fields{"a": a, "op": op, "b": b, "result": result}).Debug("calculated")

	out.Result, err = result.Str(int(o.to), o.width)
	return out, err
}
