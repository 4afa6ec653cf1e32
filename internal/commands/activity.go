package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workwealth/workwealth/internal/activitylog"
)

func newActivityCommand(dataDir func() (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the wallet activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openAuthedApp(dataDir)
			if err != nil {
				return err
			}

			entries, err := activitylog.Read(app.DataDir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No activity recorded")
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s  %-6s %-12s %s",
					e.Timestamp.Format("2006-01-02 15:04:05"), e.Actor, e.Action, e.Details)
				if e.Reference != "" {
					line += "  (" + e.Reference + ")"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
