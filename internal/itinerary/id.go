package itinerary

import "github.com/google/uuid"

// IDFunc produces a fresh identifier for a new day or stop.
type IDFunc func() string

// NewID returns a random UUID string.
func NewID() string {
	return uuid.New().String()
}

func idOrDefault(fn IDFunc) IDFunc {
	if fn == nil {
		return NewID
	}
	return fn
}
