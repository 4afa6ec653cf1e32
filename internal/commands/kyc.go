package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/kyc"
	"github.com/workwealth/workwealth/internal/model"
)

func newKycCommand(dataDir func() (string, error)) *cobra.Command {
	kycCmd := &cobra.Command{
		Use:   "kyc",
		Short: "Identity verification",
	}
	kycCmd.AddCommand(newKycRunCommand(dataDir))
	kycCmd.AddCommand(newKycStatusCommand(dataDir))
	kycCmd.AddCommand(newKycResetCommand(dataDir))
	return kycCmd
}

func newKycRunCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start or resume the verification wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}
			return runKycWizard(app, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newKycStatusCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show verification progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}
			w, err := kyc.Load(app.DataDir)
			if err != nil {
				return err
			}
			sess, err := app.Sessions.Load()
			if err != nil {
				return err
			}
			fmt.Printf("Wizard step: %s\n", w.State())
			fmt.Printf("Verified: %t\n", sess.KYCVerified)
			return nil
		},
	}
}

func newKycResetCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard wizard progress and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}
			return kyc.Discard(app.DataDir)
		},
	}
}

// runKycWizard drives the wizard interactively. Progress is saved after
// every transition so an interrupted run resumes where it stopped. Typing
// "back" at a prompt returns to the previous step.
func runKycWizard(app *App, in io.Reader, out io.Writer) error {
	w, err := kyc.Load(app.DataDir)
	if err != nil {
		return err
	}
	if w.State() == kyc.StateSubmitted {
		fmt.Fprintln(out, "Verification already submitted")
		return nil
	}

	scanner := bufio.NewScanner(in)
	prompt := func(label string) (string, error) {
		fmt.Fprintf(out, "%s: ", label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	for w.State() != kyc.StateSubmitted {
		var stepErr error
		switch w.State() {
		case kyc.StateUploadID:
			doc, err := prompt("Path to ID document")
			if err != nil {
				return saveAndStop(app, w, err)
			}
			stepErr = w.AttachID(doc)

		case kyc.StateVerificationDetails:
			fullName, err := prompt("Full name (or 'back')")
			if err != nil {
				return saveAndStop(app, w, err)
			}
			if fullName == "back" {
				stepErr = w.Back()
				break
			}
			dob, err := prompt("Date of birth (YYYY-MM-DD)")
			if err != nil {
				return saveAndStop(app, w, err)
			}
			idNumber, err := prompt("Government ID number")
			if err != nil {
				return saveAndStop(app, w, err)
			}
			stepErr = w.SetDetails(kyc.Details{FullName: fullName, DateOfBirth: dob, IDNumber: idNumber})

		case kyc.StateReviewSubmit:
			d := w.Details()
			fmt.Fprintf(out, "Review:\n  ID document: %s\n  Name: %s\n  Date of birth: %s\n  ID number: %s\n",
				w.IDDocument(), d.FullName, d.DateOfBirth, d.IDNumber)
			answer, err := prompt("Submit? (yes/back)")
			if err != nil {
				return saveAndStop(app, w, err)
			}
			if answer == "back" {
				stepErr = w.Back()
				break
			}
			if answer != "yes" {
				continue
			}
			stepErr = w.Submit()
		}

		if stepErr != nil {
			fmt.Fprintln(out, stepErr)
			continue
		}
		if err := kyc.Save(app.DataDir, w); err != nil {
			return err
		}
	}

	if err := app.Sessions.SetKYCVerified(); err != nil {
		return err
	}
	_, _ = app.Notifications.Add("Identity verified",
		"Your identity verification is complete. Loans are now available.",
		model.NotificationSystem)

	sess, err := app.Sessions.Load()
	if err == nil {
		app.recordActivity(string(sess.Role), "kyc.submit", "identity verification submitted", "")
	}

	fmt.Fprintln(out, "Verification submitted, your identity is confirmed")
	return nil
}

// saveAndStop persists wizard progress before surfacing a read error.
// EOF means the user stopped mid-flow, which is not an error.
func saveAndStop(app *App, w *kyc.Wizard, readErr error) error {
	if err := kyc.Save(app.DataDir, w); err != nil {
		return err
	}
	if errors.Is(readErr, io.EOF) {
		return nil
	}
	return readErr
}
