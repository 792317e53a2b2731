package cli

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/charmbracelet/huh"
	"github.com/jinzhu/copier"
)

// stopFormValues backs the stop form. Start and Duration are named apart
// from domain.Stop's typed fields so copier only fills the text fields.
type stopFormValues struct {
	Name         string
	Category     string
	Start        string
	Duration     string
	TicketInfo   string
	Remarks      string
	Expenses     string
	ExternalLink string
}

// newStopFormValues prefills the form from stop. A zero stop yields the
// insert defaults.
func newStopFormValues(stop domain.Stop) (*stopFormValues, error) {
	v := &stopFormValues{
		Category: string(domain.CategorySight),
		Start:    domain.DefaultStartTime.String(),
		Duration: strconv.Itoa(domain.DefaultDurationMin),
	}
	if stop.ID == "" {
		return v, nil
	}
	if err := copier.Copy(v, &stop); err != nil {
		return nil, err
	}
	v.Category = string(stop.Category)
	v.Start = stop.StartTime.String()
	v.Duration = strconv.Itoa(stop.DurationMin)
	return v, nil
}

// fields converts the form into a full StopFields record. The start time
// is only sent for the first stop of a day.
func (v *stopFormValues) fields(isFirst bool) itinerary.StopFields {
	f := itinerary.StopFields{
		Name:         itinerary.Str(v.Name),
		Category:     itinerary.Str(v.Category),
		Duration:     itinerary.Str(v.Duration),
		TicketInfo:   itinerary.Str(strings.TrimSpace(v.TicketInfo)),
		Remarks:      itinerary.Str(strings.TrimRight(v.Remarks, "\n ")),
		Expenses:     itinerary.Str(strings.TrimSpace(v.Expenses)),
		ExternalLink: itinerary.Str(strings.TrimSpace(v.ExternalLink)),
	}
	if isFirst {
		f.StartTime = itinerary.Str(v.Start)
	}
	return f
}

func categoryOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Categories)+1)
	for _, c := range domain.Categories {
		opts = append(opts, huh.NewOption(string(c), string(c)))
	}
	return append(opts, huh.NewOption(string(domain.CategoryOther), string(domain.CategoryOther)))
}

// stopForm builds the add/edit stop form. The start field is only shown
// for the first stop, whose start anchors the day.
func stopForm(v *stopFormValues, isFirst bool) *huh.Form {
	main := []huh.Field{
		huh.NewInput().Title("Name").Value(&v.Name).Validate(validateRequired("name")),
		huh.NewSelect[string]().Title("Category").Options(categoryOptions()...).Value(&v.Category),
	}
	if isFirst {
		main = append(main, huh.NewInput().Title("Start (HH:MM)").Value(&v.Start).Validate(validateClock))
	}
	main = append(main,
		huh.NewInput().Title("Duration").Description("minutes, 1h30m or PT1H30M").
			Value(&v.Duration).Validate(validateDuration),
	)

	return huh.NewForm(
		huh.NewGroup(main...),
		huh.NewGroup(
			huh.NewInput().Title("Ticket (optional)").Value(&v.TicketInfo),
			huh.NewInput().Title("Expenses (optional)").Value(&v.Expenses),
			huh.NewInput().Title("Link (optional)").Value(&v.ExternalLink).Validate(itinerary.ValidateLink),
			huh.NewText().Title("Remarks (optional)").Value(&v.Remarks),
		),
	).WithTheme(waypointHuhTheme()).WithShowHelp(false)
}

type dayFormValues struct {
	Label string
	Date  string
}

func newDayFormValues(day domain.Day) *dayFormValues {
	return &dayFormValues{Label: day.Label, Date: day.Date.Format(domain.DateLayout)}
}

func (v *dayFormValues) date() (time.Time, error) {
	return time.Parse(domain.DateLayout, strings.TrimSpace(v.Date))
}

func dayForm(v *dayFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Label").Value(&v.Label).Validate(validateRequired("label")),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&v.Date).Validate(validateDate),
		),
	).WithTheme(waypointHuhTheme()).WithShowHelp(false)
}

type planFormValues struct {
	Location string
	Theme    string
}

func planForm(v *planFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Where to?").Value(&v.Location).Validate(validateRequired("location")),
			huh.NewInput().Title("Theme").Placeholder("Food tour, museums, nightlife...").Value(&v.Theme),
			huh.NewNote().Description("Replaces the stops of the current day."),
		),
	).WithTheme(waypointHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func validateClock(s string) error {
	_, err := domain.ParseClock(s)
	if err != nil {
		return errors.New("use HH:MM, e.g. 09:30")
	}
	return nil
}

func validateDuration(s string) error {
	_, err := domain.ParseDurationMinutes(s)
	if err != nil {
		return errors.New("use minutes, 1h30m or PT1H30M")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}
