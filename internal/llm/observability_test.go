package llm

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.OnCallComplete(LLMCallEvent{Task: TaskTip, Model: "llama3.2", LatencyMs: 12, Success: true})
	obs.OnCallComplete(LLMCallEvent{Task: TaskItinerary, Model: "llama3.2", ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "task=tip")
	assert.Contains(t, out, "latency_ms=12")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error_code=TIMEOUT")
	assert.Contains(t, out, "component=llm")
}
