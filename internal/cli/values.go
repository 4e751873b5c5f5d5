package cli

import (
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-array-drills/arr"
	"github.com/hasbyte1/go-array-drills/collections"
	"github.com/hasbyte1/go-array-drills/drills"
)

func newBooleansCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "booleans [value...]",
		Short: "Print the truthiness of each argument",
		Long: `Print the truthiness of each argument.

Arguments are read as values: null and undefined become nil, true and false
become booleans, NaN and anything numeric become numbers, and everything else
(including the empty string) stays a string.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := arr.Map(args, parseValue)
			a.log.WithField("count", len(values)).Debug("converting to booleans")
			return printJSON(cmd, collections.From(drills.ConvertToBooleans(values)))
		},
	}
}

func newLogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log [value...]",
		Short: `Print "Value: v, index: i." for each argument`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.WithField("count", len(args)).Debug("logging values")
			drills.FprintEachValue(cmd.OutOrStdout(), args)
			return nil
		},
	}
}

// parseValue turns a shell token into the loosely typed value it spells.
func parseValue(token string) any {
	switch token {
	case "null", "undefined":
		return nil
	case "true":
		return true
	case "false":
		return false
	case "NaN":
		return math.NaN()
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	return token
}
