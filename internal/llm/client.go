package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// GenerateRequest is one generation call. Task picks the temperature,
// token budget and timeout unless overridden here.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
	// Format is an optional JSON schema constraining the output
	// (Ollama structured outputs). Nil means free text.
	Format json.RawMessage
}

// GenerateResponse is the model's raw text with call metadata.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient is a text generation backend.
type LLMClient interface {
	// Generate returns the model's answer to one prompt.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the backend answers at all.
	Available(ctx context.Context) bool
}

// dialTimeout bounds connection setup; the task timeout covers the rest.
const dialTimeout = 5 * time.Second

type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates an LLMClient for the Ollama HTTP API at
// cfg.Endpoint. A nil observer discards call events.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	transport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: dialTimeout}).DialContext,
	}
	return &ollamaClient{
		cfg:      cfg,
		http:     &http.Client{Transport: transport},
		observer: observer,
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string          `json:"model"`
	System  string          `json:"system,omitempty"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Format  json.RawMessage `json:"format,omitempty"`
	Options ollamaOptions   `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

// requestBody resolves task defaults and per-call overrides.
func (c *ollamaClient) requestBody(req GenerateRequest) ollamaRequest {
	task := c.cfg.Tasks[req.Task]
	opts := ollamaOptions{Temperature: task.Temperature, NumPredict: task.MaxTokens}
	if req.Temperature != nil {
		opts.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		opts.NumPredict = *req.MaxTokens
	}
	return ollamaRequest{
		Model:   c.cfg.Model,
		System:  req.SystemPrompt,
		Prompt:  req.UserPrompt,
		Format:  req.Format,
		Options: opts,
	}
}

// Generate posts the prompt, retrying up to MaxRetries times. Each attempt
// gets the full task timeout. Timeouts and an unreachable server come back
// as ErrTimeout and ErrOllamaUnavailable; anything else is wrapped in
// ErrRetryExhausted.
func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	body := c.requestBody(req)
	timeout := time.Duration(c.cfg.TaskTimeout(req.Task)) * time.Millisecond

	var lastErr error
	for range max(1, 1+c.cfg.MaxRetries) {
		if ctx.Err() != nil {
			lastErr = ErrTimeout
			break
		}
		resp, err := c.attempt(ctx, body, timeout)
		if err == nil {
			latency := c.report(req.Task, start, nil)
			return &GenerateResponse{Text: resp.Response, Model: resp.Model, LatencyMs: latency}, nil
		}
		lastErr = err
	}

	c.report(req.Task, start, lastErr)
	if errors.Is(lastErr, ErrTimeout) || errors.Is(lastErr, ErrOllamaUnavailable) {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
}

// attempt runs one request under its own deadline and classifies failures.
func (c *ollamaClient) attempt(ctx context.Context, body ollamaRequest, timeout time.Duration) (*ollamaResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.doRequest(ctx, body)
	if err != nil {
		return nil, classify(err, errors.Is(ctx.Err(), context.DeadlineExceeded))
	}
	return resp, nil
}

// report sends the call event to the observer and returns the latency.
func (c *ollamaClient) report(task TaskType, start time.Time, err error) int64 {
	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(LLMCallEvent{
		Task:      task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return latency
}

// maxErrorBody caps how much of a failed response is kept in StatusError.
const maxErrorBody = 4 << 10

func (c *ollamaClient) url(path string) string {
	return strings.TrimRight(c.cfg.Endpoint, "/") + path
}

func (c *ollamaClient) doRequest(ctx context.Context, body ollamaRequest) (*ollamaResponse, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encoding generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/api/generate"), &buf)
	if err != nil {
		return nil, fmt.Errorf("building generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return nil, &StatusError{Code: res.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	var out ollamaResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding generate response: %w", err)
	}
	return &out, nil
}

// Available reports whether the server answers GET /api/tags within two
// seconds.
func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/tags"), nil)
	if err != nil {
		return false
	}
	res, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}
