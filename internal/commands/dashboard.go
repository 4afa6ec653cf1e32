package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/model"
)

// recentCount is how many transactions the dashboard shows.
const recentCount = 5

func newDashboardCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Wallet overview: balance, recent transactions, unread notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}

			balance, err := app.Ledger.Balance()
			if err != nil {
				return err
			}
			txs, err := app.Ledger.Transactions()
			if err != nil {
				return err
			}
			unread, err := app.Notifications.UnreadCount()
			if err != nil {
				return err
			}
			sess, err := app.Sessions.Load()
			if err != nil {
				return err
			}

			fmt.Printf("Welcome back, %s\n", app.Config.Owner.Name)
			fmt.Printf("Balance: %s\n", app.Fmt.FormatWithCurrency(balance))
			if !sess.KYCVerified {
				fmt.Println("Identity not verified, run `workwealth kyc run` to unlock loans")
			}
			if unread > 0 {
				fmt.Printf("%d unread notification(s)\n", unread)
			}

			if len(txs) == 0 {
				fmt.Println("\nNo transactions yet")
				return nil
			}
			fmt.Println("\nRecent transactions:")
			for i, tx := range txs {
				if i == recentCount {
					break
				}
				sign := "+"
				if tx.Type == model.TypeDebit {
					sign = "-"
				}
				fmt.Printf("  %s  %s%s  %s\n",
					tx.Date.Format("Jan 02 15:04"), sign, app.Fmt.Format(tx.Amount), tx.Description)
			}
			return nil
		},
	}
}
