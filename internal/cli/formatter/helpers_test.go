package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{150, "2h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.min))
	}
}

func TestDayDate(t *testing.T) {
	assert.Equal(t, "Wed, Apr 10 2024", DayDate(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "anything", Truncate("anything", 0))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", FirstLine("one\ntwo"))
	assert.Equal(t, "single", FirstLine("single"))
}

func TestHeader_UppercasesAndUnderlines(t *testing.T) {
	out := stripANSI(Header("Weekend in Tokyo"))
	lines := strings.Split(out, "\n")
	assert.Equal(t, "WEEKEND IN TOKYO", lines[0])
	assert.Equal(t, strings.Repeat("─", len("WEEKEND IN TOKYO")), lines[1])
}

func TestRenderBox_IncludesTitle(t *testing.T) {
	out := stripANSI(RenderBox("tip", "Try the melon pan"))
	assert.Contains(t, out, "TIP")
	assert.Contains(t, out, "Try the melon pan")
	assert.Contains(t, out, "╭")
}

func TestCategoryGlyph_OtherIsDefault(t *testing.T) {
	assert.Equal(t, "•", CategoryGlyph(domain.CategoryOther))
	assert.Equal(t, "•", CategoryGlyph(domain.Category("museum")))
	for _, c := range domain.Categories {
		assert.NotEqual(t, "•", CategoryGlyph(c), "category %s", c)
	}
}

func TestCategoryBadge(t *testing.T) {
	assert.Equal(t, "♨ food", stripANSI(CategoryBadge(domain.CategoryFood)))
}
