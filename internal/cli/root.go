package cli

import (
	"log/slog"

	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/alexanderramin/waypoint/internal/llm"
	"github.com/alexanderramin/waypoint/internal/service"
	"github.com/spf13/cobra"
)

// App holds the configuration and services used by CLI commands.
type App struct {
	Config *config.Config
	Assist service.AssistService
	Logger *slog.Logger

	// LLM is probed before a plan is drafted. Nil skips the check.
	LLM llm.LLMClient

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the editor only when it returns true.
	IsInteractive func() bool

	// NewID overrides stop and day id generation. Nil means random uuids.
	NewID itinerary.IDFunc
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		return config.DefaultConfig()
	}
	return a.Config
}

// NewRootCmd creates the top-level "waypoint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "waypoint",
		Short:         "Day-by-day trip itinerary planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runEditor(cmd, app, "", "")
		},
	}

	root.AddCommand(
		newEditCmd(app),
		newShowCmd(app),
		newPlanCmd(app),
		newAddStopCmd(app),
		newExportCmd(app),
	)

	return root
}
