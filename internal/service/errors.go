package service

import "errors"

// ErrAssistDisabled is returned by assist use cases when no LLM is configured.
var ErrAssistDisabled = errors.New("assist is disabled: set llm.enabled or WAYPOINT_LLM_ENABLED=true")
