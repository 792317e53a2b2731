// Package calendar renders a trip as an iCalendar feed so derived stop
// times can be imported into a calendar application.
package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/scheduler"
)

// ProductID identifies the producer in exported calendars.
const ProductID = "-//waypoint//trip itinerary//EN"

// floatingLayout formats a DATE-TIME without a zone designator, which
// calendar clients read as local wall-clock time.
const floatingLayout = "20060102T150405"

// Export writes one VEVENT per stop. DTSTART is the day's date at the
// derived start; DTEND is DTSTART plus the duration, so an event that
// crosses midnight ends on the following date.
func Export(trip domain.Trip, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetName(trip.Title)

	stamp := time.Now().UTC()
	for _, day := range trip.Days {
		for _, st := range scheduler.DeriveSchedule(day.Stops) {
			start := eventStart(day.Date, st)
			end := start.Add(time.Duration(st.DurationMin) * time.Minute)

			event := cal.AddEvent(fmt.Sprintf("%s@%s", st.ID, trip.ID))
			event.SetDtStampTime(stamp)
			event.SetProperty(ics.ComponentPropertyDtStart, start.Format(floatingLayout))
			event.SetProperty(ics.ComponentPropertyDtEnd, end.Format(floatingLayout))
			event.SetSummary(st.Name)
			event.SetProperty(ics.ComponentPropertyCategories, strings.ToUpper(string(st.Category)))
			if desc := description(st.Stop); desc != "" {
				event.SetDescription(desc)
			}
			if st.ExternalLink != "" {
				event.SetURL(st.ExternalLink)
			}
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// eventStart places the derived clock on the day's date, moved forward by
// one date per midnight the schedule has crossed.
func eventStart(date time.Time, st scheduler.ScheduledStop) time.Time {
	base := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, st.DayOffset).Add(time.Duration(st.Start) * time.Minute)
}

func description(s domain.Stop) string {
	var parts []string
	if s.Remarks != "" {
		parts = append(parts, s.Remarks)
	}
	if s.TicketInfo != "" {
		parts = append(parts, "Ticket: "+s.TicketInfo)
	}
	if s.Expenses != "" {
		parts = append(parts, "Cost: "+s.Expenses)
	}
	return strings.Join(parts, "\n")
}
