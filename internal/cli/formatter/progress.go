package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Day load thresholds as a share of the 24-hour clock.
const (
	busyDayPct     = 0.5
	overfullDayPct = 0.75
)

// RenderDayLoad renders how much of a 24-hour day a schedule spans, like
// [████░░░░] 8h 15m. Long days turn yellow, very long days red.
func RenderDayLoad(totalMin, width int) string {
	if width < 2 {
		width = 2
	}
	pct := float64(totalMin) / domain.MinutesPerDay
	pct = min(max(pct, 0), 1)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct >= overfullDayPct:
		style = StyleRed
	case pct >= busyDayPct:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %s", style.Render(bar), FormatMinutes(totalMin))
}
