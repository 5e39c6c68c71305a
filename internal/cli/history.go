package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cinevo/cinevo-cli/internal/guard"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List your past ticket purchases",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireGuard(guard.Requirements{Auth: true}); err != nil {
				return err
			}

			txns, err := client.Transactions(cmd.Context())
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Println("No purchases yet.")
				return nil
			}

			fmt.Printf("%-10s  %-28s  %-16s  %-12s  %s\n", "ORDER", "MOVIE", "SHOW", "SEATS", "AMOUNT")
			for _, t := range txns {
				show := t.ShowDate + " " + t.ShowTime
				fmt.Printf("%-10s  %-28s  %-16s  %-12s  %s\n",
					t.ID, t.MovieTitle, show, strings.Join(t.Seats, ","), rupiah(t.Amount))
			}
			if last := txns[len(txns)-1]; !last.CreatedAt.IsZero() {
				fmt.Printf("(latest purchase %s)\n", humanize.Time(last.CreatedAt))
			}
			return nil
		},
	}
}
