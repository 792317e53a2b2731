package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// TripDocument is the JSON interchange form of a trip.
type TripDocument struct {
	ID        string        `json:"id,omitempty"`
	Title     string        `json:"title"`
	StartDate string        `json:"start_date"`
	Days      []DayDocument `json:"days"`
}

// DayDocument is one day of a TripDocument.
type DayDocument struct {
	ID    string         `json:"id,omitempty"`
	Date  string         `json:"date"`
	Label string         `json:"label,omitempty"`
	Stops []StopDocument `json:"stops"`
}

// StopDocument is one stop of a DayDocument. Only the first stop's
// start_time affects the derived schedule.
type StopDocument struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Category     string  `json:"category,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	TicketInfo   string  `json:"ticket_info,omitempty"`
	Remarks      string  `json:"remarks,omitempty"`
	Expenses     string  `json:"expenses,omitempty"`
	ExternalLink string  `json:"external_link,omitempty"`
}

// ParseTrip decodes a TripDocument without validating it.
func ParseTrip(r io.Reader) (*TripDocument, error) {
	var doc TripDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing trip document: %w", err)
	}
	return &doc, nil
}

// LoadTrip reads, validates and converts a trip document file.
func LoadTrip(path string) (domain.Trip, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Trip{}, err
	}
	defer f.Close()

	doc, err := ParseTrip(f)
	if err != nil {
		return domain.Trip{}, err
	}
	if errs := ValidateTripDocument(doc); len(errs) > 0 {
		return domain.Trip{}, fmt.Errorf("invalid trip document %s: %w", path, errors.Join(errs...))
	}
	return ToDomain(doc)
}

// WriteTrip encodes trip as an indented TripDocument.
func WriteTrip(w io.Writer, trip domain.Trip) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(FromDomain(trip)); err != nil {
		return fmt.Errorf("encoding trip document: %w", err)
	}
	return nil
}

// SaveTrip writes trip to path, replacing any existing file.
func SaveTrip(path string, trip domain.Trip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTrip(f, trip); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
