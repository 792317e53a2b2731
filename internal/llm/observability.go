package llm

import (
	"context"
	"log/slog"
)

// LLMCallEvent describes one completed Generate call, retries included.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer is notified after every Generate call.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver logs call events as "llm_call" records. Failures are
// logged at warn level with their error code.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns a LogObserver writing to logger, or to the
// default logger when logger is nil.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger.With(slog.String("component", "llm"))}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.String("task", string(event.Task)),
		slog.String("model", event.Model),
		slog.Int64("latency_ms", event.LatencyMs),
	}
	if !event.Success {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error_code", event.ErrorCode))
	}
	o.logger.LogAttrs(context.Background(), level, "llm_call", attrs...)
}

// NoopObserver ignores events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
