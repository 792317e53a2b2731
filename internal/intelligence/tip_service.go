package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/llm"
)

// TipMaxWords caps the length of a tip kept from the model.
const TipMaxWords = 20

// TipService produces a one-line insider tip for a stop.
type TipService interface {
	Tip(ctx context.Context, stopName string) (string, error)
}

type tipService struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewTipService creates a TipService backed by an LLM client.
func NewTipService(client llm.LLMClient, observer llm.Observer) TipService {
	return &tipService{client: client, observer: observerOrNoop(observer)}
}

func (s *tipService) Tip(ctx context.Context, stopName string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTip,
		SystemPrompt: tipSystemPrompt,
		UserPrompt:   fmt.Sprintf(tipUserPromptFormat, strings.TrimSpace(stopName)),
	})
	if err != nil {
		return "", fmt.Errorf("llm tip failed: %w", err)
	}

	tip := cleanTip(resp.Text)
	if tip == "" {
		reportRejected(s.observer, llm.TaskTip, resp, ErrEmptyResult)
		return "", ErrEmptyResult
	}
	return tip, nil
}

// cleanTip flattens the answer to one line, strips wrapping quotes and a
// leading "Tip:" label, and truncates to TipMaxWords.
func cleanTip(raw string) string {
	words := strings.Fields(raw)
	text := strings.Join(words, " ")
	text = strings.Trim(text, "\"'“”")
	for _, prefix := range []string{"Tip:", "tip:", "TIP:"} {
		text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
	}
	text = strings.Trim(text, "\"'“”")

	words = strings.Fields(text)
	if len(words) > TipMaxWords {
		words = words[:TipMaxWords]
	}
	return strings.Join(words, " ")
}
