package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newEditCmd(app *App) *cobra.Command {
	var file, out string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive itinerary editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, app, file, out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "trip document (default: built-in sample trip)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "where 'w' writes the trip (default: --file)")
	return cmd
}

// runEditor opens the editor full-screen and blocks until it quits.
func runEditor(cmd *cobra.Command, app *App, file, out string) error {
	store, err := openStore(app, file, "")
	if err != nil {
		return err
	}
	if out == "" {
		out = file
	}

	m := newEditorModel(cmd.Context(), app, store, out)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	if em, ok := final.(editorModel); ok && em.dirty {
		fmt.Fprintln(cmd.ErrOrStderr(), "Unsaved changes were discarded.")
	}
	return nil
}
