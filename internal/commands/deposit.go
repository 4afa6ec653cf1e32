package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/model"
	"github.com/workwealth/workwealth/internal/money"
	"github.com/workwealth/workwealth/internal/simop"
)

func newDepositCommand(dataDir func() (string, error)) *cobra.Command {
	var amount string
	var note string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Add money to the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir()
			if err != nil {
				return err
			}
			app, err := openApp(dir)
			if err != nil {
				return err
			}
			sess, err := app.requireAuth()
			if err != nil {
				return err
			}

			value, err := money.Parse(amount)
			if err != nil {
				return err
			}

			fmt.Println("Processing deposit...")
			tx, err := simop.Run(cmd.Context(), app.Config.Wallet.SimulatedDelay(), func() (model.Transaction, error) {
				return app.Ledger.Deposit(value, note)
			})
			if err != nil {
				return err
			}

			app.recordActivity(string(sess.Role), "deposit",
				"deposited "+app.Fmt.Format(tx.Amount), tx.Reference)
			printReceipt(app, tx)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount to deposit (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&note, "note", "", "description for the transaction")

	return cmd
}

func printReceipt(app *App, tx model.Transaction) {
	balance, err := app.Ledger.Balance()
	if err != nil {
		fmt.Printf("%s - %s (ref %s)\n", tx.Description, app.Fmt.FormatWithCurrency(tx.Amount), tx.Reference)
		return
	}
	fmt.Printf("%s - %s (ref %s)\nNew balance: %s\n",
		tx.Description, app.Fmt.FormatWithCurrency(tx.Amount), tx.Reference,
		app.Fmt.FormatWithCurrency(balance))
}
