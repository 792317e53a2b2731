package cli

import (
	"testing"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStopFormValues_Defaults(t *testing.T) {
	v, err := newStopFormValues(domain.Stop{})
	require.NoError(t, err)
	assert.Equal(t, &stopFormValues{Category: "sight", Start: "09:00", Duration: "60"}, v)
}

func TestNewStopFormValues_PrefillsFromStop(t *testing.T) {
	stop := itinerary.SampleTrip().Days[0].Stops[0]

	v, err := newStopFormValues(stop)
	require.NoError(t, err)
	assert.Equal(t, "Arrive at Narita Airport", v.Name)
	assert.Equal(t, "transport", v.Category)
	assert.Equal(t, "10:00", v.Start)
	assert.Equal(t, "60", v.Duration)
	assert.Equal(t, "Flight JL123", v.TicketInfo)
	assert.Equal(t, "¥2,000", v.Expenses)
	assert.Equal(t, "Pick up pocket WiFi at terminal", v.Remarks)
}

func TestStopFormValues_FieldsOmitStartUnlessFirst(t *testing.T) {
	v := &stopFormValues{Name: "Onsen", Category: "other", Start: "18:00", Duration: "90"}

	assert.Nil(t, v.fields(false).StartTime)
	f := v.fields(true)
	require.NotNil(t, f.StartTime)
	assert.Equal(t, "18:00", *f.StartTime)
	assert.Equal(t, "Onsen", *f.Name)
}

func TestCategoryFlag(t *testing.T) {
	var f categoryFlag
	require.NoError(t, f.Set(" Coffee "))
	assert.Equal(t, "coffee", f.String())
	require.NoError(t, f.Set("other"))
	assert.Equal(t, "other", f.String())

	err := f.Set("museum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sight, food, hotel, transport, coffee, other")
	assert.Equal(t, "other", f.String(), "failed Set keeps the previous value")
	assert.Equal(t, "category", f.Type())
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateClock("9:30"))
	assert.Error(t, validateClock("25:00"))
	assert.NoError(t, validateDuration("1h30m"))
	assert.Error(t, validateDuration("soon"))
	assert.NoError(t, validateDate("2024-04-12"))
	assert.Error(t, validateDate("12/04/2024"))
	assert.Error(t, validateRequired("name")("  "))
}
