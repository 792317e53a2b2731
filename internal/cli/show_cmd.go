package cli

import (
	"fmt"

	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var file, dayID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print each day's derived schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(app, file, dayID)
			if err != nil {
				return err
			}
			if dayID != "" {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDaySchedule(store.ActiveDay(), store.Schedule()))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrip(store.Trip()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "trip document (default: built-in sample trip)")
	cmd.Flags().StringVar(&dayID, "day", "", "only show this day id")
	return cmd
}
