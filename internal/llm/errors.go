package llm

import (
	"errors"
	"fmt"
	"net"
)

var (
	// ErrOllamaUnavailable indicates the Ollama server could not be reached.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates a request exceeded its task timeout or the caller
	// gave up waiting.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the model's text could not be parsed into
	// the expected JSON shape.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted wraps the last error once every attempt has failed.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)

// StatusError is a non-200 answer from the Ollama API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ollama returned status %d: %s", e.Code, e.Body)
}

// classify maps a transport error onto the package sentinels.
func classify(err error, timedOut bool) error {
	switch {
	case timedOut:
		return ErrTimeout
	case isConnectionError(err):
		return ErrOllamaUnavailable
	default:
		return err
	}
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

// errorCode is the short code reported to observers.
func errorCode(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("HTTP_%d", statusErr.Code)
	default:
		return "UNKNOWN"
	}
}
