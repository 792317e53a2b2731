package intelligence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/alexanderramin/waypoint/internal/llm"
)

// ItineraryDraftService asks the model for a full day of stops.
type ItineraryDraftService interface {
	// DraftDay returns stop records ready for itinerary.ReplaceDayStops.
	// Ids and start times are never taken from the model.
	DraftDay(ctx context.Context, location, theme string) ([]itinerary.StopFields, error)
}

type itineraryDraftService struct {
	client   llm.LLMClient
	observer llm.Observer
}

// NewItineraryDraftService creates an ItineraryDraftService backed by an LLM client.
func NewItineraryDraftService(client llm.LLMClient, observer llm.Observer) ItineraryDraftService {
	return &itineraryDraftService{client: client, observer: observerOrNoop(observer)}
}

// draftStop is one generated record. Models are inconsistent about
// numeric fields, so duration accepts both 90 and "90".
type draftStop struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Duration flexString `json:"duration"`
	Remarks  string     `json:"remarks,omitempty"`
	Expenses string     `json:"expenses,omitempty"`
}

type draftEnvelope struct {
	Stops []draftStop `json:"stops"`
}

// flexString decodes a JSON string or number into its text form.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = flexString(strconv.FormatInt(i, 10))
		return nil
	}
	fl, err := n.Float64()
	if err != nil {
		return err
	}
	*f = flexString(strconv.Itoa(int(fl)))
	return nil
}

func (s *itineraryDraftService) DraftDay(ctx context.Context, location, theme string) ([]itinerary.StopFields, error) {
	location = strings.TrimSpace(location)
	theme = strings.TrimSpace(theme)
	if location == "" {
		return nil, errors.New("location is required")
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskItinerary,
		SystemPrompt: itinerarySystemPrompt,
		UserPrompt:   fmt.Sprintf(itineraryUserPromptFormat, location, theme),
		Format:       json.RawMessage(itinerarySchema),
	})
	if err != nil {
		return nil, fmt.Errorf("llm itinerary draft failed: %w", err)
	}

	stops, err := parseDraftStops(resp.Text)
	if err != nil {
		reportRejected(s.observer, llm.TaskItinerary, resp, err)
		return nil, err
	}

	records := make([]itinerary.StopFields, 0, len(stops))
	for _, st := range stops {
		records = append(records, toStopFields(st))
	}
	return records, nil
}

// parseDraftStops accepts a bare array or an object wrapping it in "stops".
func parseDraftStops(raw string) ([]draftStop, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyResult
	}

	stops, err := llm.ExtractJSON(raw, validateDraftStops)
	if err != nil {
		env, envErr := llm.ExtractJSON(raw, func(e draftEnvelope) error {
			return validateDraftStops(e.Stops)
		})
		if envErr != nil {
			return nil, fmt.Errorf("failed to extract itinerary JSON: %w", err)
		}
		stops = env.Stops
	}
	if len(stops) == 0 {
		return nil, ErrEmptyResult
	}
	return stops, nil
}

func validateDraftStops(stops []draftStop) error {
	for i, st := range stops {
		if strings.TrimSpace(st.Name) == "" {
			return fmt.Errorf("stop %d has no name", i+1)
		}
	}
	return nil
}

func toStopFields(st draftStop) itinerary.StopFields {
	f := itinerary.StopFields{
		Name:     itinerary.Str(strings.TrimSpace(st.Name)),
		Category: itinerary.Str(st.Category),
	}
	if d := strings.TrimSpace(string(st.Duration)); d != "" {
		f.Duration = itinerary.Str(d)
	}
	if r := strings.TrimSpace(st.Remarks); r != "" {
		f.Remarks = itinerary.Str(r)
	}
	if e := strings.TrimSpace(st.Expenses); e != "" {
		f.Expenses = itinerary.Str(e)
	}
	return f
}
