package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cinevo/cinevo-cli/internal/booking"
	"github.com/cinevo/cinevo-cli/internal/guard"
)

func newBookCmd() *cobra.Command {
	var show booking.ShowDetails

	cmd := &cobra.Command{
		Use:   "book <movie-id>",
		Short: "Start a ticket booking for a movie",
		Long:  "Create a booking draft for a movie showing. The draft gets a transaction id used by the seats, pay, and ticket commands.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(guard.Requirements{Auth: true}); err != nil {
				return err
			}

			movieID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}

			draft, err := flow.StartDraft(cmd.Context(), movieID, show)
			if err != nil {
				return err
			}

			fmt.Printf("Booked %s at %s %s, %s %s\n", draft.Title, draft.Cinema, draft.Location, draft.Date, draft.Time)
			fmt.Printf("Transaction: %s\n", draft.TransactionID)
			fmt.Printf("Next: cinevo seats %s --seats A1,A2\n", draft.TransactionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&show.Date, "date", "", "Show date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&show.Time, "time", "", "Show time (hh:mm)")
	cmd.Flags().StringVar(&show.Location, "location", "", "City")
	cmd.Flags().StringVar(&show.Cinema, "cinema", "", "Cinema name")
	return cmd
}

func newSeatsCmd() *cobra.Command {
	var seatList string

	cmd := &cobra.Command{
		Use:   "seats <transaction-id>",
		Short: "Choose seats for a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(guard.Requirements{Auth: true}); err != nil {
				return err
			}
			if seatList == "" {
				return fmt.Errorf("choose at least one seat with --seats")
			}

			seats := strings.Split(seatList, ",")
			for i := range seats {
				seats[i] = strings.TrimSpace(seats[i])
			}

			draft, err := flow.SelectSeats(args[0], seats)
			if err != nil {
				return flowErr(err)
			}

			fmt.Printf("Seats %s reserved for %s\n", strings.Join(draft.Seats, ", "), draft.Title)
			fmt.Printf("Amount: %s\n", rupiah(draft.Amount))
			fmt.Printf("Next: cinevo pay %s --method gopay --phone <number>\n", draft.TransactionID)
			return nil
		},
	}

	cmd.Flags().StringVar(&seatList, "seats", "", "Comma-separated seats (e.g. A1,A2)")
	return cmd
}
