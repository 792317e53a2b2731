package service

import (
	"context"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/itinerary"
)

// TipResult is the outcome of one tip lookup in a fan-out.
type TipResult struct {
	StopID string
	Tip    string
	Err    error
}

// AssistService wraps the content-generation collaborators. Every failure
// is returned as an error and leaves any itinerary untouched; callers
// decide whether to surface it.
type AssistService interface {
	Enabled() bool
	DraftDay(ctx context.Context, location, theme string) ([]itinerary.StopFields, error)
	SuggestTip(ctx context.Context, stopName string) (string, error)
	// SuggestTips looks up tips for several stops concurrently. Results
	// come back in the order of stops.
	SuggestTips(ctx context.Context, stops []domain.Stop) []TipResult

	// PlanDay drafts a day and replaces dayID's stops in store. It returns
	// the number of stops written.
	PlanDay(ctx context.Context, store *itinerary.Store, dayID, location, theme string) (int, error)
	// EnrichDay appends a tip to every stop of dayID that got one and
	// returns how many were annotated.
	EnrichDay(ctx context.Context, store *itinerary.Store, dayID string) (int, error)
}
