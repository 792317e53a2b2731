package cli

import (
	"fmt"

	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/importer"
	"github.com/alexanderramin/waypoint/internal/llm"
	"github.com/alexanderramin/waypoint/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var file, dayID, location, theme, out string
	var enrich bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Draft a day's stops with the AI planner",
		Long: `Drafts four stops for a day from a location and a theme, replacing the
day's existing stops. With --enrich every drafted stop also gets a tip.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Assist == nil || !app.Assist.Enabled() {
				return assistDisabledError()
			}

			cfg := app.config()
			if app.LLM != nil && !app.LLM.Available(cmd.Context()) {
				return fmt.Errorf("%w: is ollama running at %s?", llm.ErrOllamaUnavailable, cfg.LLMConfig().Endpoint)
			}
			location = domain.CoalesceStr(location, cfg.Planner.Location)
			theme = domain.CoalesceStr(theme, cfg.Planner.Theme)

			store, err := openStore(app, file, dayID)
			if err != nil {
				return err
			}
			day := store.ActiveDayID()

			spinOut := cmd.ErrOrStderr()
			if !app.interactive() {
				spinOut = nil
			}

			stop := formatter.StartSpinner(spinOut, fmt.Sprintf("Planning %s in %s...", theme, location))
			n, err := app.Assist.PlanDay(cmd.Context(), store, day, location, theme)
			stop()
			if err != nil {
				return fmt.Errorf("planning day: %w", err)
			}
			app.logger().Info("day planned", "day", day, "stops", n, "location", location, "theme", theme)

			if enrich {
				stop := formatter.StartSpinner(spinOut, "Collecting tips...")
				tipped, err := app.Assist.EnrichDay(cmd.Context(), store, day)
				stop()
				if err != nil {
					return fmt.Errorf("enriching day: %w", err)
				}
				if tipped < n {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim(fmt.Sprintf("Tips found for %d of %d stops.", tipped, n)))
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprint(w, formatter.FormatDaySchedule(store.ActiveDay(), store.Schedule()))

			if out != "" {
				if err := importer.SaveTrip(out, store.Trip()); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}
				fmt.Fprintf(w, "%s Saved %s\n", formatter.StyleGreen.Render("✔"), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "destination (default from config)")
	cmd.Flags().StringVarP(&theme, "theme", "t", "", "theme of the day (default from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "trip document (default: built-in sample trip)")
	cmd.Flags().StringVar(&dayID, "day", "", "day id to plan (default: first day)")
	cmd.Flags().BoolVar(&enrich, "enrich", false, "add a tip to every drafted stop")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the resulting trip document here")
	return cmd
}

func assistDisabledError() error {
	return fmt.Errorf("%w: set WAYPOINT_LLM_ENABLED=true or llm.enabled in the config file", service.ErrAssistDisabled)
}
