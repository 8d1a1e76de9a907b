package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndri/hallbook/internal/booking"
	"github.com/ndri/hallbook/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		Long: `List bookings for a date, or every booking with --all.

If no date is specified, lists today's bookings.`,
		Example: `  hallbook list
  hallbook list --date=2025-01-15
  hallbook list --all`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}
			ctx := context.Background()

			var bookings []*booking.Booking
			if all {
				var err error
				bookings, err = a.service.AllBookings(ctx)
				if err != nil {
					return fmt.Errorf("listing bookings: %w", err)
				}
			} else {
				day, err := dateutil.ParseDate(date)
				if err != nil {
					return err
				}
				bookings, err = a.service.Schedule(ctx, day)
				if err != nil {
					return fmt.Errorf("listing bookings: %w", err)
				}
			}

			if len(bookings) == 0 {
				fmt.Println("No bookings found.")
				return nil
			}

			printGrouped(bookings)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Booking date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&all, "all", false, "List every booking")

	return cmd
}

// printGrouped prints bookings grouped under a header per date.
func printGrouped(bookings []*booking.Booking) {
	maxDescWidth := descWidth()

	var currentDate string
	for _, b := range bookings {
		date := b.Date.Format("2006-01-02")
		if date != currentDate {
			if currentDate != "" {
				fmt.Println()
			}
			fmt.Printf("=== %s ===\n", formatHeader(b.Date.Format("Monday, January 2, 2006")))
			currentDate = date
		}
		PrintBookingRow(b, maxDescWidth)
	}
}
