package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) cancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [booking-id]",
		Short: "Cancel a booking",
		Long: `Cancel a booking by its ID.

Cancellation is permanent; to correct a booking, cancel it and book again.

Example:
  hallbook cancel 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid booking ID: %w", err)
			}

			if err := a.service.Cancel(context.Background(), id); err != nil {
				return fmt.Errorf("cancelling booking: %w", err)
			}

			fmt.Printf("Cancelled booking #%d\n", id)
			return nil
		},
	}
}
