// Get command: the filtered, ordered listing.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cltodo/internal/render"
	"github.com/dukaforge/cltodo/pkg/types"
)

// Accepted --from/--to layouts besides RFC 3339.
const (
	dateOnly      = "2006-01-02"
	localDateTime = "2006-01-02T15:04:05"
)

func newGetCmd() *cobra.Command {
	var (
		priorityName  string
		fromArg       string
		toArg         string
		reversed      bool
		extended      bool
		chronological bool
		jsonOut       bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "List todo entries",
		Long: `Get lists entries, most recent first, with critical entries on top,
then important, then normal. All filters combine.

--from and --to accept a full RFC 3339 timestamp, a local date-time
(2006-01-02T15:04:05), or a bare date. A bare date covers the whole day
on either end.

Example:
  cltodo get --priority critical --from 2024-01-01 --to 2024-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := types.ListFilter{
				Reversed:      reversed,
				Chronological: chronological,
			}

			if priorityName != "" {
				p, err := types.ParsePriority(priorityName)
				if err != nil {
					return err
				}
				filter.Priority = &p
			}
			if fromArg != "" {
				from, err := parseBound(fromArg, false)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				filter.From = &from
			}
			if toArg != "" {
				to, err := parseBound(toArg, true)
				if err != nil {
					return fmt.Errorf("--to: %w", err)
				}
				filter.To = &to
			}

			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			todos, err := s.List(filter)
			if err != nil {
				return err
			}

			if jsonOut {
				return render.JSON(cmd.OutOrStdout(), todos)
			}
			return render.List(cmd.OutOrStdout(), todos, extended)
		},
	}

	cmd.Flags().StringVarP(&priorityName, "priority", "p", "", "only entries with this priority (normal, important, critical)")
	cmd.Flags().StringVar(&fromArg, "from", "", "only entries on or after this date or timestamp")
	cmd.Flags().StringVar(&toArg, "to", "", "only entries on or before this date or timestamp")
	cmd.Flags().BoolVar(&reversed, "reversed", false, "oldest entries first")
	cmd.Flags().BoolVar(&extended, "extended", false, "show full timestamps instead of dates")
	cmd.Flags().BoolVar(&chronological, "chronological", false, "pure date order, no priority grouping")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")

	return cmd
}

// parseBound converts a --from/--to value into a concrete instant. A bare
// date resolves to 00:00:00 local time, or to 23:59:59 for the upper
// bound, so both bounds include the whole named day.
func parseBound(value string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(localDateTime, value, time.Local); err == nil {
		return t, nil
	}

	day, err := time.ParseInLocation(dateOnly, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s, %s, or RFC 3339",
			value, dateOnly, localDateTime)
	}
	if upper {
		// DST-transition days are not 24 hours long, so the end of day
		// comes from calendar components rather than a duration add.
		return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.Local), nil
	}
	return day, nil
}
