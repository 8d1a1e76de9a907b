package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) bookCmd() *cobra.Command {
	var (
		date        string
		start       string
		end         string
		bookedBy    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book the hall",
		Long: `Book the hall for a time window on a calendar date.

Times are given in 12-hour form with an AM/PM suffix. The window is
half-open: a booking ending at 10:00 AM and one starting at 10:00 AM do
not conflict.`,
		Example: `  hallbook book --start="9:00 AM" --end="10:30 AM" --by="Alice"
  hallbook book --date=2025-01-10 --start="2:00 PM" --end="3:00 PM" --by="Bob" --desc="Quarterly review"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			b, err := a.service.Create(context.Background(), date, start, end, bookedBy, description)
			if err != nil {
				return err
			}

			fmt.Printf("Booked #%d: %s %s-%s by %s\n",
				b.ID,
				b.Date.Format("2006-01-02"),
				b.Start,
				b.End,
				b.BookedBy,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Booking date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (e.g. \"9:00 AM\", required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (e.g. \"10:30 AM\", required)")
	cmd.Flags().StringVar(&bookedBy, "by", "", "Who the booking is for (required)")
	cmd.Flags().StringVar(&description, "desc", "", "Optional description")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}
