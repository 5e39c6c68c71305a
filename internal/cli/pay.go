package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cinevo/cinevo-cli/internal/booking"
	"github.com/cinevo/cinevo-cli/internal/guard"
	"github.com/cinevo/cinevo-cli/pkg/model"
)

func newPayCmd() *cobra.Command {
	var payment booking.Payment
	var yes bool

	cmd := &cobra.Command{
		Use:   "pay <transaction-id>",
		Short: "Pay for a booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(guard.Requirements{Auth: true}); err != nil {
				return err
			}
			if len(args) != 1 {
				return fmt.Errorf("usage: cinevo pay <transaction-id>")
			}

			if !yes {
				d, ok := store.FindBooking(args[0])
				if !ok {
					return flowErr(booking.ErrDraftNotFound)
				}
				if d.IsPaid() {
					return flowErr(booking.ErrAlreadyPaid)
				}
				fmt.Printf("Pay %s for %s (%s)? [y/N] ", rupiah(d.Amount), d.Title, strings.Join(d.Seats, ", "))
				answer, _ := prompt("")
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			paid, err := flow.Pay(cmd.Context(), args[0], payment)
			if err != nil {
				return flowErr(err)
			}

			fmt.Printf("Payment accepted via %s.\n", paid.PaymentMethod)
			fmt.Printf("Order id: %s\n", paid.ServerTxnID)
			fmt.Printf("Next: cinevo ticket %s\n", paid.TransactionID)
			return nil
		},
	}

	methods := make([]string, 0, len(model.PaymentMethods))
	for m := range model.PaymentMethods {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	cmd.Flags().StringVar(&payment.Method, "method", "", "Payment method ("+strings.Join(methods, ", ")+")")
	cmd.Flags().StringVar(&payment.Phone, "phone", "", "Phone number for the payment provider")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newTicketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ticket <transaction-id>",
		Short: "Show the ticket for a paid booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(guard.Requirements{Auth: true}); err != nil {
				return err
			}

			draft, err := flow.Ticket(args[0])
			if err != nil {
				return flowErr(err)
			}

			fmt.Println("=== CINEVO TICKET ===")
			fmt.Printf("Movie:    %s\n", draft.Title)
			fmt.Printf("Cinema:   %s, %s\n", draft.Cinema, draft.Location)
			fmt.Printf("Date:     %s %s\n", draft.Date, draft.Time)
			fmt.Printf("Seats:    %s\n", strings.Join(draft.Seats, ", "))
			fmt.Printf("Total:    %s\n", rupiah(draft.Amount))
			fmt.Printf("Order id: %s\n", draft.ServerTxnID)
			return nil
		},
	}
}

// flowErr maps booking flow errors to messages that tell the user where
// to go next instead of leaking internals.
func flowErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrDraftNotFound):
		return fmt.Errorf("booking not found; start again with \"cinevo book <movie-id>\"")
	case errors.Is(err, booking.ErrAlreadyPaid):
		return fmt.Errorf("this booking is already paid; view it with \"cinevo ticket <transaction-id>\"")
	case errors.Is(err, booking.ErrNotPaid):
		return fmt.Errorf("this booking is not paid yet; pay first with \"cinevo pay <transaction-id>\"")
	default:
		return err
	}
}

func rupiah(amount int) string {
	return "Rp " + humanize.Comma(int64(amount))
}
