package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/importer"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/alexanderramin/waypoint/internal/llm"
	"github.com/alexanderramin/waypoint/internal/service"
	"github.com/alexanderramin/waypoint/internal/testutil"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// stubDrafts returns canned records and remembers its inputs.
type stubDrafts struct {
	records      []itinerary.StopFields
	err          error
	lastLocation string
	lastTheme    string
}

func (s *stubDrafts) DraftDay(_ context.Context, location, theme string) ([]itinerary.StopFields, error) {
	s.lastLocation, s.lastTheme = location, theme
	return s.records, s.err
}

// stubTips answers every stop with "Try <name>".
type stubTips struct {
	err   error
	calls atomic.Int32
}

func (s *stubTips) Tip(_ context.Context, name string) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return "Try " + name, nil
}

// stubLLM answers readiness probes only.
type stubLLM struct {
	available bool
}

func (s stubLLM) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	return nil, llm.ErrOllamaUnavailable
}

func (s stubLLM) Available(context.Context) bool { return s.available }

func draftedStops() []itinerary.StopFields {
	return []itinerary.StopFields{
		{Name: itinerary.Str("Kinkaku-ji"), Category: itinerary.Str("sight"), Duration: itinerary.Str("60")},
		{Name: itinerary.Str("Nishiki Market"), Category: itinerary.Str("food"), Duration: itinerary.Str("90")},
		{Name: itinerary.Str("Ippodo Tea"), Category: itinerary.Str("coffee"), Duration: itinerary.Str("45")},
		{Name: itinerary.Str("Gion Walk"), Category: itinerary.Str("Sightseeing"), Duration: itinerary.Str("1h")},
	}
}

// testApp wires an App whose assistant is backed by stubs. Pass nil
// collaborators for a disabled assistant.
func testApp(t *testing.T, drafts *stubDrafts, tips *stubTips) *App {
	t.Helper()
	var assist service.AssistService
	if drafts != nil && tips != nil {
		assist = service.NewAssistService(drafts, tips)
	} else {
		assist = service.NewAssistService(nil, nil)
	}
	return &App{
		Config: config.DefaultConfig(),
		Assist: assist,
		NewID:  testutil.SeqIDs("id"),
	}
}

// writeSampleTrip saves the sample trip to a temp file and returns its path.
func writeSampleTrip(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trip.json")
	require.NoError(t, importer.SaveTrip(path, itinerary.SampleTrip()))
	return path
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
