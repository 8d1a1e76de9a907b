package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndri/hallbook/internal/booking"
	"github.com/ndri/hallbook/internal/dateutil"
	"github.com/ndri/hallbook/internal/report"
)

func (a *App) reportCmd() *cobra.Command {
	var (
		date string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export bookings to a report file",
		Long: `Write bookings to a line-oriented text report.

Exports every booking unless --date restricts it to a single day.`,
		Example: `  hallbook report
  hallbook report --date=2025-01-15 --out=/tmp/report.txt`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}
			ctx := context.Background()

			var (
				bookings []*booking.Booking
				err      error
			)
			if date != "" {
				day, derr := dateutil.ParseDate(date)
				if derr != nil {
					return derr
				}
				bookings, err = a.service.Schedule(ctx, day)
			} else {
				bookings, err = a.service.AllBookings(ctx)
			}
			if err != nil {
				return fmt.Errorf("fetching bookings: %w", err)
			}

			if len(bookings) == 0 {
				fmt.Println("No bookings to report.")
				return nil
			}

			path := out
			if path == "" {
				path = a.config.Report.Path
			}
			if err := report.Export(path, bookings); err != nil {
				return err
			}

			fmt.Printf("Wrote %d booking(s) to %s\n", len(bookings), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Restrict the report to one date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&out, "out", "", "Output path (defaults to the configured report path)")

	return cmd
}
