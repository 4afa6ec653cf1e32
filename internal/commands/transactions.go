package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/ledger"
	"github.com/workwealth/workwealth/internal/model"
)

func newTransactionsCommand(dataDir func() (string, error)) *cobra.Command {
	var category string
	var exportPath string

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List or export the transaction history",
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
			if _, err := app.requireAuth(); err != nil {
				return err
			}

			var txs []model.Transaction
			if category != "" {
				c := model.Category(category)
				if !model.ValidCategory(c) {
					return fmt.Errorf("unknown category %q", category)
				}
				txs, err = app.Ledger.TransactionsByCategory(c)
			} else {
				txs, err = app.Ledger.Transactions()
			}
			if err != nil {
				return err
			}

			if exportPath != "" {
				return exportTransactions(exportPath, txs)
			}

			if len(txs) == 0 {
				fmt.Println("No transactions yet")
				return nil
			}
			for _, tx := range txs {
				sign := "+"
				if tx.Type == model.TypeDebit {
					sign = "-"
				}
				fmt.Printf("%s  %s%-12s %-10s %-40s %s\n",
					tx.Date.Format("2006-01-02 15:04"),
					sign, app.Fmt.Format(tx.Amount),
					tx.Category, tx.Description, tx.Reference)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (deposit, withdrawal, transfer, loan, savings, bills, shopping)")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the listed transactions to a CSV file")

	return cmd
}

func exportTransactions(path string, txs []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := ledger.ExportCSV(f, txs); err != nil {
		return err
	}
	fmt.Printf("Exported %d transactions to %s\n", len(txs), path)
	return nil
}
