package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/waypoint/internal/calendar"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/importer"
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatICS  = "ics"
)

func newExportCmd(app *App) *cobra.Command {
	var file, format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a trip as a JSON document or an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := exporterFor(format)
			if err != nil {
				return err
			}
			trip, err := loadTrip(file)
			if err != nil {
				return err
			}

			if out == "" {
				return write(trip, cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := write(trip, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			app.logger().Info("trip exported", "format", format, "path", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "trip document (default: built-in sample trip)")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format: json or ics")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: stdout)")
	return cmd
}

func exporterFor(format string) (func(domain.Trip, io.Writer) error, error) {
	switch format {
	case formatJSON:
		return func(t domain.Trip, w io.Writer) error { return importer.WriteTrip(w, t) }, nil
	case formatICS:
		return func(t domain.Trip, w io.Writer) error { return calendar.Export(t, w) }, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want %s or %s)", format, formatJSON, formatICS)
	}
}
