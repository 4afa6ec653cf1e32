package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/model"
	"github.com/workwealth/workwealth/internal/money"
	"github.com/workwealth/workwealth/internal/simop"
)

func newTransferCommand(dataDir func() (string, error)) *cobra.Command {
	var amount string
	var recipient string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send money to someone",
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

			fmt.Println("Processing transfer...")
			tx, err := simop.Run(cmd.Context(), app.Config.Wallet.SimulatedDelay(), func() (model.Transaction, error) {
				return app.Ledger.Transfer(value, recipient)
			})
			if err != nil {
				return err
			}

			app.recordActivity(string(sess.Role), "transfer",
				fmt.Sprintf("sent %s to %s", app.Fmt.Format(tx.Amount), recipient), tx.Reference)
			printReceipt(app, tx)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "amount to send (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&recipient, "to", "", "recipient name or wallet identifier (required)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
