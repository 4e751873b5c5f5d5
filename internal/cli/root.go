package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	cfg Config
	log *logrus.Logger
}

// NewRootCmd creates the root cobra command.
func NewRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "arrdrill",
		Short: "arrdrill runs the classic array drills from the shell",
		Long: `arrdrill runs the classic array drills from the shell: even selection,
doubling, truthiness, indexed logging and a family of stable sorts over
numbers, words and JSON records.

Results go to stdout; diagnostics go to stderr.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(a.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.log = log
			a.log.WithField("command", cmd.CommandPath()).Debug("starting")
			return nil
		},
	}

	rootCmd.SetIn(cfg.Stdin)
	rootCmd.SetOut(cfg.Stdout)
	rootCmd.SetErr(cfg.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text or json)")

	rootCmd.AddCommand(
		newEvensCmd(a),
		newDoubleCmd(a),
		newBooleansCmd(a),
		newLogCmd(a),
		newSortCmd(a),
		newRecordsCmd(a),
	)

	return rootCmd
}

type jsonEncoder interface {
	ToJSON() ([]byte, error)
}

// printJSON writes v as JSON followed by a newline to the command's stdout.
func printJSON(cmd *cobra.Command, v jsonEncoder) error {
	b, err := v.ToJSON()
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
