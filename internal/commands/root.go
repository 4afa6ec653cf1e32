package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDirFlag string

	rootCmd := &cobra.Command{
		Use:     "workwealth",
		Short:   "Savings, transfers and bills for informal workers",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "wallet data directory (default ~/.workwealth)")

	dataDir := func() (string, error) { return defaultDataDir(dataDirFlag) }

	rootCmd.AddCommand(newInitCommand(dataDir))
	rootCmd.AddCommand(newLoginCommand(dataDir))
	rootCmd.AddCommand(newLogoutCommand(dataDir))
	rootCmd.AddCommand(newDashboardCommand(dataDir))
	rootCmd.AddCommand(newDepositCommand(dataDir))
	rootCmd.AddCommand(newWithdrawCommand(dataDir))
	rootCmd.AddCommand(newTransferCommand(dataDir))
	rootCmd.AddCommand(newBillCommand(dataDir))
	rootCmd.AddCommand(newTransactionsCommand(dataDir))
	rootCmd.AddCommand(newNotificationsCommand(dataDir))
	rootCmd.AddCommand(newLoanCommand(dataDir))
	rootCmd.AddCommand(newKycCommand(dataDir))
	rootCmd.AddCommand(newActivityCommand(dataDir))

	return rootCmd
}
