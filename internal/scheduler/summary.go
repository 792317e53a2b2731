package scheduler

import "github.com/alexanderramin/waypoint/internal/domain"

// DaySummary aggregates a derived schedule for headers and reports.
type DaySummary struct {
	Stops     int
	VisitMin  int
	TravelMin int
	Start     domain.Clock
	End       domain.Clock
	// Rollover is true when any part of the day runs past midnight.
	Rollover bool
}

// TotalMin is the span from the first start to the last end.
func (s DaySummary) TotalMin() int {
	return s.VisitMin + s.TravelMin
}

func Summarize(schedule []ScheduledStop) DaySummary {
	var sum DaySummary
	if len(schedule) == 0 {
		return sum
	}
	sum.Stops = len(schedule)
	sum.Start = schedule[0].Start
	last := schedule[len(schedule)-1]
	sum.End = last.End()
	for _, s := range schedule {
		sum.VisitMin += s.DurationMin
		if s.Rollover || s.EndsNextDay() {
			sum.Rollover = true
		}
	}
	sum.TravelMin = (len(schedule) - 1) * TravelBufferMin
	return sum
}
