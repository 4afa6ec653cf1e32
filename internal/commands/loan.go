package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/model"
	"github.com/workwealth/workwealth/internal/money"
	"github.com/workwealth/workwealth/internal/session"
	"github.com/workwealth/workwealth/internal/simop"
)

func newLoanCommand(dataDir func() (string, error)) *cobra.Command {
	loanCmd := &cobra.Command{
		Use:   "loan",
		Short: "Apply for and manage loans",
	}
	loanCmd.AddCommand(newLoanApplyCommand(dataDir))
	loanCmd.AddCommand(newLoanHistoryCommand(dataDir))
	loanCmd.AddCommand(newLoanApproveCommand(dataDir))
	loanCmd.AddCommand(newLoanRejectCommand(dataDir))
	return loanCmd
}

func newLoanApplyCommand(dataDir func() (string, error)) *cobra.Command {
	var amount string
	var term int
	var purpose string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for a loan",
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
			if !sess.KYCVerified {
				return fmt.Errorf("loans require identity verification, run `workwealth kyc run` first")
			}

			value, err := money.Parse(amount)
			if err != nil {
				return err
			}

			fmt.Println("Submitting application...")
			app2, err := simop.Run(cmd.Context(), app.Config.Wallet.SimulatedDelay(), func() (model.LoanApplication, error) {
				return app.Loans.Apply(value, term, purpose)
			})
			if err != nil {
				return err
			}

			app.recordActivity(string(sess.Role), "loan.apply",
				fmt.Sprintf("applied for %s over %d months", app.Fmt.Format(app2.Amount), app2.TermMonths), "")
			fmt.Printf("Application %s submitted (%s, %d months), status: %s\n",
				app2.ID, app.Fmt.FormatWithCurrency(app2.Amount), app2.TermMonths, app2.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "loan amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().IntVar(&term, "term", 6, "repayment term in months (1-24)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "what the loan is for (required)")
	_ = cmd.MarkFlagRequired("purpose")

	return cmd
}

func newLoanHistoryCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List loan applications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}

			apps, err := app.Loans.List()
			if err != nil {
				return err
			}
			if len(apps) == 0 {
				fmt.Println("No loan applications")
				return nil
			}
			for _, a := range apps {
				fmt.Printf("%s  %-10s %-12s %2d months  %s  (%s)\n",
					a.AppliedAt.Format("2006-01-02"), a.Status,
					app.Fmt.Format(a.Amount), a.TermMonths, a.Purpose, a.ID)
			}
			return nil
		},
	}
}

func newLoanApproveCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending application and disburse the principal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decideLoan(dataDir, args[0], true)
		},
	}
}

func newLoanRejectCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decideLoan(dataDir, args[0], false)
		},
	}
}

// decideLoan approves or rejects a pending application. Reserved for
// agent and admin sessions.
func decideLoan(dataDir func() (string, error), id string, approve bool) error {
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
	if sess.Role != session.RoleAgent && sess.Role != session.RoleAdmin {
		return fmt.Errorf("loan decisions require an agent or admin session")
	}

	if approve {
		decided, err := app.Loans.Approve(id)
		if err != nil {
			return err
		}
		app.recordActivity(string(sess.Role), "loan.approve",
			fmt.Sprintf("approved %s for %q", app.Fmt.Format(decided.Amount), decided.Purpose), "")
		fmt.Printf("Approved %s, %s disbursed to wallet\n", decided.ID, app.Fmt.FormatWithCurrency(decided.Amount))
		return nil
	}

	decided, err := app.Loans.Reject(id)
	if err != nil {
		return err
	}
	app.recordActivity(string(sess.Role), "loan.reject",
		fmt.Sprintf("rejected application for %q", decided.Purpose), "")
	fmt.Printf("Rejected %s\n", decided.ID)
	return nil
}
