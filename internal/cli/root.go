package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version   = "0.1.0"
	buildDate = "2022-04-12T00:00+0000"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	output   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "u128",
		Short: "Convert and calculate with unsigned 128-bit integers",
		Long: `u128 parses, renders and calculates with unsigned 128-bit integers.

Values are read as decimal unless they carry a 0x, 0o or 0b prefix, or the
input base is fixed with --from. Arithmetic wraps modulo 2^128.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	// General setup.
	cobra.EnableCommandSorting = false

	// Global flags.
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.output, "output", "o", envDefault("output", outputText),
		`Output format: "text | json | yaml" (or set `+flagNameToEnvVar("output")+`)`)
	pf.StringVarP(&opts.logLevel, "log-level", "l", envDefault("log-level", "warn"),
		`Log level: "error | warn | info | debug" (or set `+flagNameToEnvVar("log-level")+`)`)

	rootCmd.AddCommand(
		newConvCmd(opts),
		newBytesCmd(opts),
		newCalcCmd(opts),
		newDivModCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// setup validates the global flags and configures the logger.
func (o *globalOptions) setup(stderr io.Writer) error {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", o.logLevel)
	}
	log.SetOutput(stderr)
	log.SetLevel(level)

	switch o.output {
	case outputText, outputJSON, outputYAML:
	default:
		return errors.Errorf("invalid --output %q, expected text, json or yaml", o.output)
	}
	log.WithFields(log.Fields{"output": o.output, "level": level}).Debug("options configured")
	return nil
}

func (o *globalOptions) printer(w io.Writer) printer {
	return printer{format: o.output, w: w}
}

// Execute builds the command tree and runs it against os.Args.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		// Execute() prints the error.
		os.Exit(1)
	}
}
