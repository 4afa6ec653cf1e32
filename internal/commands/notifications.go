package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotificationsCommand(dataDir func() (string, error)) *cobra.Command {
	notifCmd := &cobra.Command{
		Use:   "notifications",
		Short: "View and manage notifications",
	}
	notifCmd.AddCommand(newNotificationsListCommand(dataDir))
	notifCmd.AddCommand(newNotificationsReadCommand(dataDir))
	notifCmd.AddCommand(newNotificationsReadAllCommand(dataDir))
	notifCmd.AddCommand(newNotificationsClearCommand(dataDir))
	return notifCmd
}

func newNotificationsListCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}

			all, err := app.Notifications.All()
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Println("No notifications")
				return nil
			}
			unread, err := app.Notifications.UnreadCount()
			if err != nil {
				return err
			}
			fmt.Printf("%d notifications, %d unread\n", len(all), unread)
			for _, n := range all {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				fmt.Printf("%s %s  [%-11s] %s: %s  (%s)\n",
					marker, n.Timestamp.Format("2006-01-02 15:04"), n.Type, n.Title, n.Message, n.ID)
			}
			return nil
		},
	}
}

func newNotificationsReadCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}
			return app.Notifications.MarkRead(args[0])
		},
	}
}

func newNotificationsReadAllCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}
			return app.Notifications.MarkAllRead()
		},
	}
}

func newNotificationsClearCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}
			if err := app.Notifications.ClearAll(); err != nil {
				return err
			}
			fmt.Println("Notifications cleared")
			return nil
		},
	}
}

// openAuthedApp opens the app and requires an authenticated session.
func openAuthedApp(dataDir func() (string, error)) (*App, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	app, err := openApp(dir)
	if err != nil {
		return nil, err
	}
	if _, err := app.requireAuth(); err != nil {
		return nil, err
	}
	return app, nil
}
