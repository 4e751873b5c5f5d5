package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-array-drills/collections"
	"github.com/hasbyte1/go-array-drills/drills"
)

func newEvensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "evens [int...]",
		Short: "Print the even integers among the arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			evens := drills.GetEvenNumbers(nums)
			a.log.WithField("in", len(nums)).WithField("out", len(evens)).Debug("selected even numbers")
			return printJSON(cmd, collections.From(evens))
		},
	}
}

func newDoubleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "double [number...]",
		Short: "Print every argument multiplied by two",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args)
			if err != nil {
				return err
			}
			a.log.WithField("count", len(nums)).Debug("doubling")
			return printJSON(cmd, collections.From(drills.DoubleEveryNumber(nums)))
		},
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidNumber, arg, err)
		}
		out[i] = n
	}
	return out, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidNumber, arg, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w %q: not finite", ErrInvalidNumber, arg)
		}
		out[i] = f
	}
	return out, nil
}
