package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDayLoad(t *testing.T) {
	tests := []struct {
		name     string
		totalMin int
		width    int
		want     string
	}{
		{"empty", 0, 8, "[░░░░░░░░] 0m"},
		{"quarter", 360, 8, "[██░░░░░░] 6h"},
		{"half", 720, 4, "[██░░] 12h"},
		{"over a day", 1800, 4, "[████] 30h"},
		{"min width", 720, 0, "[█░] 12h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderDayLoad(tt.totalMin, tt.width)))
		})
	}
}
