package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/intelligence"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/alexanderramin/waypoint/internal/llm"
	"github.com/alexanderramin/waypoint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDrafts struct {
	records []itinerary.StopFields
	err     error
}

func (s *stubDrafts) DraftDay(ctx context.Context, location, theme string) ([]itinerary.StopFields, error) {
	return s.records, s.err
}

// stubTips answers from a map keyed by stop name; unknown names fail.
type stubTips struct {
	tips     map[string]string
	delay    time.Duration
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (s *stubTips) Tip(ctx context.Context, stopName string) (string, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if n <= seen || s.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	time.Sleep(s.delay)
	tip, ok := s.tips[stopName]
	if !ok {
		return "", intelligence.ErrEmptyResult
	}
	return tip, nil
}

type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *captureObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func fourRecords() []itinerary.StopFields {
	names := []string{"Senso-ji", "Tempura", "Kappabashi", "Skytree"}
	out := make([]itinerary.StopFields, len(names))
	for i, n := range names {
		out[i] = itinerary.StopFields{Name: itinerary.Str(n), Category: itinerary.Str("sight"), Duration: itinerary.Str("60")}
	}
	return out
}

func newStore(t *testing.T) *itinerary.Store {
	t.Helper()
	store, err := itinerary.NewStore(itinerary.SampleTrip(), itinerary.WithIDFunc(testutil.SeqIDs("gen")))
	require.NoError(t, err)
	return store
}

func TestAssist_DisabledWithoutCollaborators(t *testing.T) {
	svc := NewAssistService(nil, nil)
	assert.False(t, svc.Enabled())

	_, err := svc.DraftDay(context.Background(), "Tokyo", "x")
	assert.ErrorIs(t, err, ErrAssistDisabled)
	_, err = svc.SuggestTip(context.Background(), "x")
	assert.ErrorIs(t, err, ErrAssistDisabled)

	store := newStore(t)
	before := store.Trip()
	_, err = svc.EnrichDay(context.Background(), store, "day-1")
	assert.ErrorIs(t, err, ErrAssistDisabled)
	assert.Equal(t, before, store.Trip())

	results := svc.SuggestTips(context.Background(), before.Days[0].Stops)
	require.Len(t, results, 5)
	assert.ErrorIs(t, results[0].Err, ErrAssistDisabled)
}

func TestAssist_PlanDayReplacesStops(t *testing.T) {
	obs := &captureObserver{}
	svc := NewAssistService(&stubDrafts{records: fourRecords()}, &stubTips{}, obs)
	store := newStore(t)

	n, err := svc.PlanDay(context.Background(), store, "day-2", "Tokyo", "Classic Sightseeing")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	day, _ := store.Trip().DayByID("day-2")
	require.Len(t, day.Stops, 4)
	assert.Equal(t, []string{"gen-1", "gen-2", "gen-3", "gen-4"},
		[]string{day.Stops[0].ID, day.Stops[1].ID, day.Stops[2].ID, day.Stops[3].ID})
	assert.Equal(t, domain.DefaultStartTime, day.Stops[0].StartTime)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "draft-day", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 4, obs.events[0].Fields["stop_count"])
}

func TestAssist_PlanDayFailureLeavesStoreUnchanged(t *testing.T) {
	cases := []struct {
		name   string
		drafts *stubDrafts
	}{
		{"collaborator error", &stubDrafts{err: llm.ErrOllamaUnavailable}},
		{"invalid record", &stubDrafts{records: []itinerary.StopFields{{Name: itinerary.Str("X"), Duration: itinerary.Str("a bit")}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAssistService(tc.drafts, &stubTips{})
			store := newStore(t)
			before := store.Trip()

			_, err := svc.PlanDay(context.Background(), store, "day-1", "Tokyo", "x")
			assert.Error(t, err)
			assert.Equal(t, before, store.Trip())
		})
	}
}

func TestAssist_SuggestTipsKeepsOrderAndBoundsConcurrency(t *testing.T) {
	tips := &stubTips{
		delay: 10 * time.Millisecond,
		tips: map[string]string{
			"Arrive at Narita Airport": "Buy a Suica card at the JR counter.",
			"Ramen Lunch":              "Order the tsukemen.",
			"Shibuya Crossing":         "Watch from the Starbucks upstairs.",
		},
	}
	svc := NewAssistService(&stubDrafts{}, tips)
	stops := itinerary.SampleTrip().Days[0].Stops

	results := svc.SuggestTips(context.Background(), stops)
	require.Len(t, results, len(stops))
	for i, r := range results {
		assert.Equal(t, stops[i].ID, r.StopID)
	}
	assert.Equal(t, "Buy a Suica card at the JR counter.", results[0].Tip)
	assert.ErrorIs(t, results[1].Err, intelligence.ErrEmptyResult)
	assert.Equal(t, "Watch from the Starbucks upstairs.", results[4].Tip)
	assert.LessOrEqual(t, tips.maxSeen.Load(), int32(DefaultTipConcurrency))
}

func TestAssist_EnrichDayAppliesOnlySuccessfulTips(t *testing.T) {
	tips := &stubTips{tips: map[string]string{
		"Arrive at Narita Airport": "Buy a Suica card at the JR counter.",
		"Meiji Jingu Shrine":       "Visit the inner garden in June for irises.",
	}}
	svc := NewAssistService(&stubDrafts{}, tips)
	store := newStore(t)

	n, err := svc.EnrichDay(context.Background(), store, "day-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	day := store.Trip().Days[0]
	assert.Equal(t, "Pick up pocket WiFi at terminal\n✨ Tip: Buy a Suica card at the JR counter.", day.Stops[0].Remarks)
	assert.Equal(t, "✨ Tip: Visit the inner garden in June for irises.", day.Stops[3].Remarks)
	assert.Empty(t, day.Stops[2].Remarks)
}

func TestAssist_SuggestTipWrapsError(t *testing.T) {
	obs := &captureObserver{}
	svc := NewAssistService(&stubDrafts{}, &stubTips{}, obs)

	_, err := svc.SuggestTip(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, intelligence.ErrEmptyResult)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "Nowhere", obs.events[0].Fields["stop"])
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "draft-day", Success: true, Fields: map[string]any{"location": "Tokyo"}})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "suggest-tip", Err: errors.New("boom")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=DEBUG")
	assert.Contains(t, lines[0], "location=Tokyo")
	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], "error=boom")

	_, isNoop := NewLogUseCaseObserver(nil).(NoopUseCaseObserver)
	assert.True(t, isNoop)
}
