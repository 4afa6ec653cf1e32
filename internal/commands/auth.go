package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/session"
)

func newLoginCommand(dataDir func() (string, error)) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start an authenticated session",
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

			sess, err := app.Sessions.Login(session.Role(role))
			if err != nil {
				return err
			}
			app.recordActivity(string(sess.Role), "login", "session started", "")

			fmt.Printf("Logged in as %s (%s)\n", app.Config.Owner.Name, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(session.RoleUser), "session role: user, agent or admin")

	return cmd
}

func newLogoutCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
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

			if err := app.Sessions.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
