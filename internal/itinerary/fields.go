package itinerary

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// StopFields carries a partial stop as authored by a user or a generator.
// A nil field means "not specified": on edit the stop keeps its value, on
// insert the default applies. Values are raw strings and are coerced here.
type StopFields struct {
	Name         *string
	Category     *string
	Duration     *string
	StartTime    *string
	TicketInfo   *string
	Remarks      *string
	Expenses     *string
	ExternalLink *string
}

// Str is a convenience for building StopFields literals.
func Str(s string) *string { return &s }

// newStop builds a stop from fields, applying insert defaults.
func newStop(id string, f StopFields) (domain.Stop, error) {
	s := domain.Stop{
		ID:          id,
		Category:    domain.CategoryOther,
		StartTime:   domain.DefaultStartTime,
		DurationMin: domain.DefaultDurationMin,
	}
	if f.Name == nil {
		return domain.Stop{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := applyFields(&s, f); err != nil {
		return domain.Stop{}, err
	}
	return s, nil
}

// applyFields merges the non-nil fields into s. s is left untouched when
// any field fails to coerce.
func applyFields(s *domain.Stop, f StopFields) error {
	next := *s

	if f.Name != nil {
		name := strings.TrimSpace(*f.Name)
		if name == "" {
			return fmt.Errorf("%w: name must not be blank", domain.ErrValidation)
		}
		next.Name = name
	}
	if f.Category != nil {
		next.Category = domain.ParseCategory(*f.Category)
	}
	if f.Duration != nil {
		d, err := domain.ParseDurationMinutes(*f.Duration)
		if err != nil {
			return err
		}
		next.DurationMin = domain.ClampDuration(d)
	}
	if f.StartTime != nil {
		c, err := domain.ParseClock(*f.StartTime)
		if err != nil {
			return err
		}
		next.StartTime = c
	}
	if f.TicketInfo != nil {
		next.TicketInfo = strings.TrimSpace(*f.TicketInfo)
	}
	if f.Remarks != nil {
		next.Remarks = strings.TrimSpace(*f.Remarks)
	}
	if f.Expenses != nil {
		next.Expenses = strings.TrimSpace(*f.Expenses)
	}
	if f.ExternalLink != nil {
		link := strings.TrimSpace(*f.ExternalLink)
		if err := ValidateLink(link); err != nil {
			return err
		}
		next.ExternalLink = link
	}

	*s = next
	return nil
}

// ValidateLink accepts an empty string or an absolute http(s) URI.
func ValidateLink(link string) error {
	if link == "" {
		return nil
	}
	u, err := url.Parse(link)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: external link %q must be an http(s) URL", domain.ErrValidation, link)
	}
	return nil
}
