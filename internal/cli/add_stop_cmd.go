package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/alexanderramin/waypoint/internal/importer"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/spf13/cobra"
)

func newAddStopCmd(app *App) *cobra.Command {
	var file, out, dayID, stopID string
	var name, duration, start, ticket, remarks, expenses, link string
	category := &categoryFlag{}

	cmd := &cobra.Command{
		Use:   "add-stop",
		Short: "Add a stop to a trip document, or edit one with --id",
		Example: `  waypoint add-stop -f trip.json --name "Tsukiji Outer Market" --category food --duration 90
  waypoint add-stop -f trip.json --id s3 --duration PT2H`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			if stopID == "" && name == "" {
				return errors.New("--name is required when adding a stop")
			}

			store, err := openStore(app, file, dayID)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var fields itinerary.StopFields
			setIfChanged := func(flag string, dst **string, v string) {
				if flags.Changed(flag) {
					*dst = itinerary.Str(v)
				}
			}
			setIfChanged("name", &fields.Name, name)
			setIfChanged("category", &fields.Category, category.String())
			setIfChanged("duration", &fields.Duration, duration)
			setIfChanged("start", &fields.StartTime, start)
			setIfChanged("ticket", &fields.TicketInfo, ticket)
			setIfChanged("remarks", &fields.Remarks, remarks)
			setIfChanged("expenses", &fields.Expenses, expenses)
			setIfChanged("link", &fields.ExternalLink, link)

			id, err := store.UpsertStop(stopID, fields)
			if err != nil {
				return err
			}
			if id == "" {
				return fmt.Errorf("stop %q not found on %s", stopID, store.ActiveDay().Label)
			}

			dest := out
			if dest == "" {
				dest = file
			}
			if err := importer.SaveTrip(dest, store.Trip()); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}

			day := store.ActiveDay()
			verb := "Added"
			if stopID != "" {
				verb = "Updated"
			}
			idx := day.StopIndex(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s to %s %s\n",
				formatter.StyleGreen.Render("✔"), verb,
				formatter.Bold(day.Stops[idx].Name), day.Label,
				formatter.Dim("("+id+")"))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "trip document to update (required)")
	f.StringVarP(&out, "out", "o", "", "write the result here instead of --file")
	f.StringVar(&dayID, "day", "", "day id (default: first day)")
	f.StringVar(&stopID, "id", "", "edit the stop with this id instead of adding one")
	f.StringVarP(&name, "name", "n", "", "stop name")
	f.VarP(category, "category", "c", "category: "+categoryNames())
	f.StringVarP(&duration, "duration", "d", "", "duration: minutes, 1h30m or PT1H30M")
	f.StringVarP(&start, "start", "s", "", "start time HH:MM (used for the first stop of the day)")
	f.StringVar(&ticket, "ticket", "", "ticket or booking info")
	f.StringVar(&remarks, "remarks", "", "free-form remarks")
	f.StringVar(&expenses, "expenses", "", "expected cost, e.g. ¥1,500")
	f.StringVar(&link, "link", "", "external link (http or https)")
	return cmd
}
