package cli

import (
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-array-drills/collections"
	"github.com/hasbyte1/go-array-drills/drills"
)

func newSortCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Stable sorts over words and numbers",
	}
	cmd.AddCommand(newSortWordsCmd(a), newSortNumbersCmd(a))
	return cmd
}

func newSortWordsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "words [word...]",
		Short: "Sort words by code point, uppercase before lowercase",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.WithField("count", len(args)).Debug("sorting words")
			return printJSON(cmd, firstN(collections.From(drills.SortWords(args)), limit))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print only the first N results (0 prints all)")
	return cmd
}

func newSortNumbersCmd(a *app) *cobra.Command {
	var (
		desc  bool
		limit int
	)
	cmd := &cobra.Command{
		Use:   "numbers [number...]",
		Short: "Sort numbers numerically",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args)
			if err != nil {
				return err
			}
			a.log.WithField("count", len(nums)).WithField("desc", desc).Debug("sorting numbers")
			return printJSON(cmd, firstN(collections.From(drills.SortNumbersBetter(nums, desc)), limit))
		},
	}
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	cmd.Flags().IntVar(&limit, "limit", 0, "print only the first N results (0 prints all)")
	return cmd
}

// firstN keeps the leading n items when n is positive.
func firstN[T any](c *collections.Collection[T], n int) *collections.Collection[T] {
	return c.When(n > 0, func(c *collections.Collection[T]) *collections.Collection[T] {
		return c.Take(n)
	})
}
