package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/intelligence"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/sourcegraph/conc/pool"
)

// DefaultTipConcurrency bounds the number of tip requests in flight.
const DefaultTipConcurrency = 4

type assistService struct {
	drafts      intelligence.ItineraryDraftService
	tips        intelligence.TipService
	concurrency int
	observer    UseCaseObserver
}

// NewAssistService builds the assist use cases. Passing nil collaborators
// yields a disabled service whose calls return ErrAssistDisabled.
func NewAssistService(
	drafts intelligence.ItineraryDraftService,
	tips intelligence.TipService,
	observers ...UseCaseObserver,
) AssistService {
	return &assistService{
		drafts:      drafts,
		tips:        tips,
		concurrency: DefaultTipConcurrency,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *assistService) Enabled() bool {
	return s.drafts != nil && s.tips != nil
}

func (s *assistService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     name,
		Duration: time.Since(startedAt),
		Success:  err == nil,
		Err:      err,
		Fields:   fields,
	})
}

func (s *assistService) DraftDay(ctx context.Context, location, theme string) (records []itinerary.StopFields, err error) {
	startedAt := time.Now()
	fields := map[string]any{"location": location, "theme": theme}
	defer func() {
		fields["stop_count"] = len(records)
		s.observe(ctx, "draft-day", startedAt, fields, err)
	}()

	if s.drafts == nil {
		return nil, ErrAssistDisabled
	}
	records, err = s.drafts.DraftDay(ctx, location, theme)
	if err != nil {
		return nil, fmt.Errorf("drafting day: %w", err)
	}
	return records, nil
}

func (s *assistService) SuggestTip(ctx context.Context, stopName string) (tip string, err error) {
	startedAt := time.Now()
	defer func() {
		s.observe(ctx, "suggest-tip", startedAt, map[string]any{"stop": stopName}, err)
	}()

	if s.tips == nil {
		return "", ErrAssistDisabled
	}
	tip, err = s.tips.Tip(ctx, stopName)
	if err != nil {
		return "", fmt.Errorf("suggesting tip for %q: %w", stopName, err)
	}
	return tip, nil
}

type indexedTip struct {
	index int
	TipResult
}

func (s *assistService) SuggestTips(ctx context.Context, stops []domain.Stop) []TipResult {
	startedAt := time.Now()
	results := make([]TipResult, len(stops))
	if s.tips == nil {
		for i, st := range stops {
			results[i] = TipResult{StopID: st.ID, Err: ErrAssistDisabled}
		}
		s.observe(ctx, "suggest-tips", startedAt, map[string]any{"stop_count": len(stops)}, ErrAssistDisabled)
		return results
	}

	p := pool.NewWithResults[indexedTip]().WithMaxGoroutines(s.concurrency)
	for i, st := range stops {
		p.Go(func() indexedTip {
			tip, err := s.tips.Tip(ctx, st.Name)
			return indexedTip{index: i, TipResult: TipResult{StopID: st.ID, Tip: tip, Err: err}}
		})
	}

	failed := 0
	for _, r := range p.Wait() {
		results[r.index] = r.TipResult
		if r.Err != nil {
			failed++
		}
	}
	s.observe(ctx, "suggest-tips", startedAt, map[string]any{
		"stop_count": len(stops),
		"failed":     failed,
	}, nil)
	return results
}

func (s *assistService) PlanDay(ctx context.Context, store *itinerary.Store, dayID, location, theme string) (int, error) {
	records, err := s.DraftDay(ctx, location, theme)
	if err != nil {
		return 0, err
	}
	if err := store.ReplaceDayStops(dayID, records); err != nil {
		return 0, fmt.Errorf("applying drafted day: %w", err)
	}
	day, _ := store.Trip().DayByID(dayID)
	return len(day.Stops), nil
}

func (s *assistService) EnrichDay(ctx context.Context, store *itinerary.Store, dayID string) (int, error) {
	if !s.Enabled() {
		return 0, ErrAssistDisabled
	}
	day, ok := store.Trip().DayByID(dayID)
	if !ok {
		return 0, nil
	}

	// Lookups run concurrently; mutations are applied here, one at a time.
	applied := 0
	for _, r := range s.SuggestTips(ctx, day.Stops) {
		if r.Err != nil || r.Tip == "" {
			continue
		}
		store.AppendRemark(dayID, r.StopID, itinerary.TipMarker, r.Tip)
		applied++
	}
	return applied, nil
}
