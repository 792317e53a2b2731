package cli

import (
	"fmt"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/importer"
	"github.com/alexanderramin/waypoint/internal/itinerary"
)

// loadTrip reads a trip document, or returns the sample trip when path is
// empty.
func loadTrip(path string) (domain.Trip, error) {
	if path == "" {
		return itinerary.SampleTrip(), nil
	}
	trip, err := importer.LoadTrip(path)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return trip, nil
}

// openStore loads a trip into a store and activates dayID when given.
func openStore(app *App, path, dayID string) (*itinerary.Store, error) {
	trip, err := loadTrip(path)
	if err != nil {
		return nil, err
	}
	var opts []itinerary.StoreOption
	if app.NewID != nil {
		opts = append(opts, itinerary.WithIDFunc(app.NewID))
	}
	store, err := itinerary.NewStore(trip, opts...)
	if err != nil {
		return nil, err
	}
	if dayID != "" && !store.SetActiveDay(dayID) {
		return nil, fmt.Errorf("day %q not found", dayID)
	}
	return store, nil
}
