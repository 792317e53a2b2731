package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/scheduler"
)

// RolloverMark flags stops whose derived time has wrapped past midnight.
const RolloverMark = "+1d"

// TimeRange renders "HH:MM–HH:MM" for a scheduled stop, marking midnight
// crossings.
func TimeRange(s scheduler.ScheduledStop) string {
	text := s.Start.String() + "–" + s.End().String()
	if s.Rollover || s.EndsNextDay() {
		text += " " + StyleRed.Render(RolloverMark)
	}
	return text
}

// DayHeading renders "Day 1 · Wed, Apr 10 2024".
func DayHeading(day domain.Day) string {
	return Bold(day.Label) + Dim(" · "+DayDate(day.Date))
}

// SummaryLine renders the totals of a day's schedule.
func SummaryLine(sum scheduler.DaySummary) string {
	if sum.Stops == 0 {
		return Dim("No stops yet.")
	}
	line := fmt.Sprintf("%d stops · %s–%s · %s visiting · %s travel",
		sum.Stops, sum.Start, sum.End, FormatMinutes(sum.VisitMin), FormatMinutes(sum.TravelMin))
	if sum.Rollover {
		line += " · " + StyleRed.Render("runs past midnight")
	}
	return Dim(line)
}

// FormatDaySchedule renders one day's derived schedule as a table with a
// travel leg between consecutive stops.
func FormatDaySchedule(day domain.Day, schedule []scheduler.ScheduledStop) string {
	var b strings.Builder
	b.WriteString(DayHeading(day))
	b.WriteString("\n")

	if len(schedule) == 0 {
		b.WriteString(SummaryLine(scheduler.DaySummary{}))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(schedule)*2)
	for i, s := range schedule {
		if i > 0 {
			rows = append(rows, []string{"", Dim(fmt.Sprintf("  ↓ %dm travel", scheduler.TravelBufferMin)), "", "", ""})
		}
		rows = append(rows, []string{
			TimeRange(s),
			Bold(s.Name),
			CategoryBadge(s.Category),
			FormatMinutes(s.DurationMin),
			stopNotes(s.Stop),
		})
	}
	b.WriteString(RenderTable([]string{"TIME", "STOP", "CATEGORY", "DURATION", "NOTES"}, rows))
	b.WriteString(SummaryLine(scheduler.Summarize(schedule)))
	b.WriteString("\n")
	return b.String()
}

func stopNotes(s domain.Stop) string {
	var parts []string
	if s.Expenses != "" {
		parts = append(parts, s.Expenses)
	}
	if s.TicketInfo != "" {
		parts = append(parts, "🎟 "+s.TicketInfo)
	}
	if s.Remarks != "" {
		parts = append(parts, Truncate(FirstLine(s.Remarks), 40))
	}
	return Dim(strings.Join(parts, " · "))
}

// FormatTrip renders the title and every day's schedule.
func FormatTrip(trip domain.Trip) string {
	var b strings.Builder
	b.WriteString(Header(trip.Title))
	b.WriteString("\n\n")
	for i, day := range trip.Days {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatDaySchedule(day, scheduler.DeriveSchedule(day.Stops)))
	}
	return b.String()
}
