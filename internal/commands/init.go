package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/config"
	"github.com/workwealth/workwealth/internal/gitops"
	"github.com/workwealth/workwealth/internal/ledger"
	"github.com/workwealth/workwealth/internal/money"
	"github.com/workwealth/workwealth/internal/notify"
	"github.com/workwealth/workwealth/internal/storage"
)

func newInitCommand(dataDir func() (string, error)) *cobra.Command {
	var name string
	var openingBalance string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new WorkWealth wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir()
			if err != nil {
				return err
			}
			return runInit(dir, name, openingBalance, useGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "wallet owner name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&openingBalance, "opening-balance", "0", "opening wallet balance")
	cmd.Flags().BoolVar(&useGit, "git", false, "track the data dir in git and auto-commit mutations")

	return cmd
}

func runInit(dir, name, openingBalance string, useGit bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("wallet already initialized at %s", dir)
	}

	balance, err := money.Parse(openingBalance)
	if err != nil {
		return fmt.Errorf("invalid opening balance: %w", err)
	}
	if balance.IsNegative() {
		return fmt.Errorf("opening balance cannot be negative")
	}

	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	cfg := config.Default(name)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	db, err := storage.Open(filepath.Join(dir, "wallet.db"))
	if err != nil {
		return err
	}

	led := ledger.NewService(db.LedgerStore())
	if err := led.Reset(balance); err != nil {
		return fmt.Errorf("setting opening balance: %w", err)
	}

	center := notify.NewCenter(db.NotificationStore(),
		notify.WithFormatter(money.NewFormatter(cfg.Wallet.Locale, cfg.Wallet.Currency)))
	if err := center.Seed(name); err != nil {
		return fmt.Errorf("seeding notifications: %w", err)
	}

	if useGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		if _, err := gitops.CommitAll(dir, "init: create wallet for "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Printf("Initialized WorkWealth wallet for %s at %s\n", name, dir)
	return nil
}
