package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/model"
	"github.com/workwealth/workwealth/internal/money"
	"github.com/workwealth/workwealth/internal/simop"
)

func newBillCommand(dataDir func() (string, error)) *cobra.Command {
	billCmd := &cobra.Command{
		Use:   "bill",
		Short: "Pay bills: electricity, water, airtime, TV, internet",
	}
	billCmd.AddCommand(newBillProvidersCommand(dataDir))
	billCmd.AddCommand(newBillPayCommand(dataDir))
	return billCmd
}

func newBillProvidersCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List available bill providers",
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

			for _, p := range app.Billers.All() {
				fmt.Printf("%-12s %-20s %-12s needs %s\n", p.Code, p.Name, p.Kind, p.DetailLabel)
			}
			return nil
		},
	}
}

func newBillPayCommand(dataDir func() (string, error)) *cobra.Command {
	var provider string
	var detail string
	var amount string

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay a bill through a provider",
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

			p, ok := app.Billers.Get(provider)
			if !ok {
				return fmt.Errorf("unknown provider %q, see `workwealth bill providers`", provider)
			}
			if err := p.ValidateDetail(detail); err != nil {
				return err
			}

			value, err := money.Parse(amount)
			if err != nil {
				return err
			}

			fmt.Println("Processing bill payment...")
			tx, err := simop.Run(cmd.Context(), app.Config.Wallet.SimulatedDelay(), func() (model.Transaction, error) {
				return app.Ledger.PayBill(value, p.PaymentDescription(detail))
			})
			if err != nil {
				return err
			}

			app.recordActivity(string(sess.Role), "bill.pay",
				fmt.Sprintf("paid %s to %s", app.Fmt.Format(tx.Amount), p.Name), tx.Reference)
			printReceipt(app, tx)
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "provider code (required)")
	_ = cmd.MarkFlagRequired("provider")
	cmd.Flags().StringVar(&detail, "detail", "", "provider detail: meter, phone or smartcard number (required)")
	_ = cmd.MarkFlagRequired("detail")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to pay (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
