package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-array-drills/collections"
	"github.com/hasbyte1/go-array-drills/drills"
)

func newRecordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Operate on a JSON array of objects read from stdin",
		Long: `Operate on a JSON array of objects read from stdin.

Fields are addressed with dot-notation keys, e.g. "profile.order".
The resulting array is written to stdout as JSON.`,
	}
	cmd.AddCommand(newRecordsSortCmd(a), newRecordsSetCmd(a))
	return cmd
}

func newRecordsSortCmd(a *app) *cobra.Command {
	var (
		by   string
		desc bool
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Stable sort of records by a field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := readRecords(cmd.InOrStdin())
			if err != nil {
				return err
			}
			a.log.WithField("count", len(records)).WithField("by", by).Debug("sorting records")
			return printJSON(cmd, collections.From(drills.SortRecordsBy(records, by, desc)))
		},
	}
	cmd.Flags().StringVar(&by, "by", "name", "dot-notation field to sort by")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	return cmd
}

func newRecordsSetCmd(a *app) *cobra.Command {
	var field, raw string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a field on every record",
		Long: `Set a field on every record.

--value is decoded as JSON when possible (true, 3, {"a":1}); otherwise it is
stored as a plain string.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := readRecords(cmd.InOrStdin())
			if err != nil {
				return err
			}
			var value any
			if err := json.Unmarshal([]byte(raw), &value); err != nil {
				a.log.WithField("value", raw).Debug("value is not JSON, storing as string")
				value = raw
			}
			drills.SetField(records, field, value)
			return printJSON(cmd, collections.From(records))
		},
	}
	cmd.Flags().StringVar(&field, "field", "isHappy", "dot-notation field to set")
	cmd.Flags().StringVar(&raw, "value", "true", "value to store")
	return cmd
}

func readRecords(r io.Reader) ([]drills.Record, error) {
	var records []drills.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecords, err)
	}
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrInvalidRecords, i)
		}
	}
	return records, nil
}
