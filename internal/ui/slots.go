package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndri/hallbook/internal/booking"
	"github.com/ndri/hallbook/internal/dateutil"
)

func (a *App) slotsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Show free time windows for a date",
		Long: `Show the free windows between bookings within the hall's
operating hours.`,
		Example: `  hallbook slots
  hallbook slots --date=2025-01-15`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			free, err := a.service.Availability(context.Background(), day,
				a.config.Hall.DayStart, a.config.Hall.DayEnd)
			if err != nil {
				return fmt.Errorf("checking availability: %w", err)
			}

			fmt.Printf("=== %s ===\n", formatHeader(day.Format("Monday, January 2, 2006")))

			if len(free) == 0 {
				fmt.Println(formatWarn("Fully booked."))
				return nil
			}

			for _, w := range free {
				startDisplay, err := booking.RenderTime(w.Start)
				if err != nil {
					return err
				}
				endDisplay, err := booking.RenderTime(w.End)
				if err != nil {
					return err
				}
				fmt.Printf("  %s  %s\n",
					formatFree(fmt.Sprintf("%s-%s", w.Start, w.End)),
					formatMuted(fmt.Sprintf("(%s to %s)", startDisplay, endDisplay)),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to check (YYYY-MM-DD, defaults to today)")

	return cmd
}
