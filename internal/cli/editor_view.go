package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/alexanderramin/waypoint/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

const dayLoadWidth = 24

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	tabStyle      = lipgloss.NewStyle().Padding(0, 1).Foreground(formatter.ColorDim)
	activeTab     = lipgloss.NewStyle().Padding(0, 1).Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Bold(true)
	helpKeyStyle  = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	helpDescStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m editorModel) View() string {
	var b strings.Builder
	trip := m.store.Trip()

	b.WriteString(formatter.Header(trip.Title))
	b.WriteString("\n")
	b.WriteString(m.dayTabs())
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(formatter.StyleHeader.Render(m.form.title))
		b.WriteString("\n\n")
		b.WriteString(m.form.form.View())
		b.WriteString("\n")
		b.WriteString(formatter.Dim("esc cancel"))
		b.WriteString("\n")
		return b.String()
	}

	day := m.store.ActiveDay()
	schedule := m.store.Schedule()
	b.WriteString(formatter.DayHeading(day))
	b.WriteString("\n\n")
	if len(schedule) == 0 {
		b.WriteString(formatter.Dim("  No stops yet. Press a to add one or g to plan the day."))
		b.WriteString("\n")
	}
	for i, s := range schedule {
		if i > 0 {
			b.WriteString(formatter.Dim(fmt.Sprintf("      ↓ %dm", scheduler.TravelBufferMin)))
			b.WriteString("\n")
		}
		b.WriteString(m.stopLine(i, s))
		b.WriteString("\n")
		if i == m.cursor {
			b.WriteString(stopDetails(s))
		}
	}
	b.WriteString("\n")
	sum := scheduler.Summarize(schedule)
	b.WriteString(formatter.SummaryLine(sum))
	if sum.Stops > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.RenderDayLoad(sum.TotalMin(), dayLoadWidth))
	}
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m editorModel) dayTabs() string {
	trip := m.store.Trip()
	tabs := make([]string, 0, len(trip.Days))
	for _, d := range trip.Days {
		if d.ID == m.store.ActiveDayID() {
			tabs = append(tabs, activeTab.Render(d.Label))
		} else {
			tabs = append(tabs, tabStyle.Render(d.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m editorModel) stopLine(i int, s scheduler.ScheduledStop) string {
	marker := "  "
	name := s.Name
	if i == m.cursor {
		marker = cursorStyle.Render("▸ ")
		name = cursorStyle.Render(name)
	}
	return fmt.Sprintf("%s%s  %s  %s  %s",
		marker,
		formatter.TimeRange(s),
		formatter.CategoryStyle(s.Category).Render(formatter.CategoryGlyph(s.Category)),
		name,
		formatter.Dim(formatter.FormatMinutes(s.DurationMin)),
	)
}

func stopDetails(s scheduler.ScheduledStop) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, "      "+formatter.Dim(label+" ")+value)
		}
	}
	add("Ticket:", s.TicketInfo)
	add("Cost:", s.Expenses)
	add("Link:", s.ExternalLink)
	for _, r := range strings.Split(s.Remarks, "\n") {
		add("›", r)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m editorModel) statusLine() string {
	var parts []string
	if m.inFlight > 0 {
		parts = append(parts, m.spinner.View())
	}
	if m.status != "" {
		if m.statusErr {
			parts = append(parts, formatter.StyleRed.Render(m.status))
		} else {
			parts = append(parts, m.status)
		}
	}
	if m.dirty {
		parts = append(parts, formatter.StyleYellow.Render("● unsaved"))
	}
	return strings.Join(parts, " ")
}

func (m editorModel) helpLine() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, helpDescStyle.Render(" · "))
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(line)
	}
	return line
}
