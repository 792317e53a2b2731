package intelligence

import (
	"errors"

	"github.com/alexanderramin/waypoint/internal/llm"
)

func observerOrNoop(o llm.Observer) llm.Observer {
	if o == nil {
		return llm.NoopObserver{}
	}
	return o
}

// reportRejected records a call whose answer arrived but could not be
// used. The client has already reported the transport as successful.
func reportRejected(o llm.Observer, task llm.TaskType, resp *llm.GenerateResponse, err error) {
	code := "INVALID_OUTPUT"
	if errors.Is(err, ErrEmptyResult) {
		code = "EMPTY_RESULT"
	}
	o.OnCallComplete(llm.LLMCallEvent{
		Task:      task,
		Model:     resp.Model,
		LatencyMs: resp.LatencyMs,
		ErrorCode: code,
	})
}
