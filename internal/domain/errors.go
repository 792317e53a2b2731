package domain

import "errors"

// ErrValidation is returned when authored input cannot be coerced into the
// data model (non-numeric duration, malformed time or date, blank name).
// Lookups that miss are not errors; see package itinerary.
var ErrValidation = errors.New("validation error")
