package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/importer"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/alexanderramin/waypoint/internal/llm"
	"github.com/alexanderramin/waypoint/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- root ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t, nil, nil)
	app.IsInteractive = func() bool { return false }

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "add-stop")
}

// --- show ---

func TestShowCmd_SampleTrip(t *testing.T) {
	out, err := executeCmd(t, testApp(t, nil, nil), "show")
	require.NoError(t, err)

	out = stripANSI(out)
	assert.Contains(t, out, "WEEKEND IN TOKYO")
	assert.Contains(t, out, "10:00–11:00")
	assert.Contains(t, out, "11:30–12:15")
	assert.Contains(t, out, "16:15–17:15")
	assert.Contains(t, out, "Day 2")
	assert.Contains(t, out, "08:00–09:30")
}

func TestShowCmd_SingleDay(t *testing.T) {
	out, err := executeCmd(t, testApp(t, nil, nil), "show", "--day", "day-2")
	require.NoError(t, err)

	out = stripANSI(out)
	assert.Contains(t, out, "TeamLab Planets")
	assert.NotContains(t, out, "Ramen Lunch")
}

func TestShowCmd_UnknownDay(t *testing.T) {
	_, err := executeCmd(t, testApp(t, nil, nil), "show", "--day", "day-9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day-9")
}

func TestShowCmd_InvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"","start_date":"2024-04-10","days":[]}`), 0o644))

	_, err := executeCmd(t, testApp(t, nil, nil), "show", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

// --- export ---

func TestExportCmd_JSONToStdout(t *testing.T) {
	out, err := executeCmd(t, testApp(t, nil, nil), "export")
	require.NoError(t, err)

	doc, err := importer.ParseTrip(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "Weekend in Tokyo", doc.Title)
	require.Len(t, doc.Days, 2)
	assert.Len(t, doc.Days[0].Stops, 5)
}

func TestExportCmd_ICSToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.ics")
	_, err := executeCmd(t, testApp(t, nil, nil), "export", "--format", "ics", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Equal(t, 7, strings.Count(string(data), "BEGIN:VEVENT"))
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t, nil, nil), "export", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

// --- add-stop ---

func TestAddStopCmd_AppendsToDay(t *testing.T) {
	path := writeSampleTrip(t)

	out, err := executeCmd(t, testApp(t, nil, nil), "add-stop", "-f", path,
		"--name", "Tsukiji Outer Market", "--category", "Food", "--duration", "PT1H30M", "--day", "day-2")
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "Added Tsukiji Outer Market to Day 2 (id-1)")

	trip, err := importer.LoadTrip(path)
	require.NoError(t, err)
	stops := trip.Days[1].Stops
	require.Len(t, stops, 3)
	last := stops[2]
	assert.Equal(t, "id-1", last.ID)
	assert.Equal(t, domain.CategoryFood, last.Category)
	assert.Equal(t, 90, last.DurationMin)
}

func TestAddStopCmd_EditsExistingStop(t *testing.T) {
	path := writeSampleTrip(t)
	out := filepath.Join(t.TempDir(), "edited.json")

	_, err := executeCmd(t, testApp(t, nil, nil), "add-stop", "-f", path, "-o", out,
		"--id", "s3", "--duration", "5", "--expenses", "¥900")
	require.NoError(t, err)

	trip, err := importer.LoadTrip(out)
	require.NoError(t, err)
	stop := trip.Days[0].Stops[2]
	assert.Equal(t, "Ramen Lunch", stop.Name)
	assert.Equal(t, domain.MinDurationMin, stop.DurationMin)
	assert.Equal(t, "¥900", stop.Expenses)

	original, err := importer.LoadTrip(path)
	require.NoError(t, err)
	assert.Equal(t, itinerary.SampleTrip().Days[0].Stops[2], original.Days[0].Stops[2])
}

func TestAddStopCmd_RejectsUnknownCategory(t *testing.T) {
	path := writeSampleTrip(t)
	_, err := executeCmd(t, testApp(t, nil, nil), "add-stop", "-f", path, "--name", "X", "--category", "museum")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestAddStopCmd_ValidationErrorLeavesFileAlone(t *testing.T) {
	path := writeSampleTrip(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = executeCmd(t, testApp(t, nil, nil), "add-stop", "-f", path, "--name", "X", "--link", "ftp://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAddStopCmd_UnknownIDIsNoOp(t *testing.T) {
	path := writeSampleTrip(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err = executeCmd(t, testApp(t, nil, nil), "add-stop", "-f", path, "--id", "nope", "--duration", "90")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `stop "nope" not found on Day 1`)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAddStopCmd_RequiresFileAndName(t *testing.T) {
	_, err := executeCmd(t, testApp(t, nil, nil), "add-stop", "--name", "X")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file")

	_, err = executeCmd(t, testApp(t, nil, nil), "add-stop", "-f", writeSampleTrip(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name")
}

// --- plan ---

func TestPlanCmd_Disabled(t *testing.T) {
	_, err := executeCmd(t, testApp(t, nil, nil), "plan", "--location", "Kyoto")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrAssistDisabled)
}

func TestPlanCmd_ReplacesDayAndEnriches(t *testing.T) {
	drafts := &stubDrafts{records: draftedStops()}
	tips := &stubTips{}
	app := testApp(t, drafts, tips)
	out := filepath.Join(t.TempDir(), "planned.json")

	stdout, err := executeCmd(t, app, "plan", "--location", "Kyoto", "--theme", "Temples",
		"--day", "day-2", "--enrich", "--out", out)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", drafts.lastLocation)
	assert.Equal(t, "Temples", drafts.lastTheme)
	assert.Equal(t, int32(4), tips.calls.Load())

	text := stripANSI(stdout)
	assert.Contains(t, text, "Kinkaku-ji")
	assert.Contains(t, text, "Saved "+out)

	trip, err := importer.LoadTrip(out)
	require.NoError(t, err)
	assert.Len(t, trip.Days[0].Stops, 5, "other days are untouched")
	stops := trip.Days[1].Stops
	require.Len(t, stops, 4)
	assert.Equal(t, domain.CategoryOther, stops[3].Category)
	assert.Equal(t, 60, stops[3].DurationMin)
	assert.Equal(t, domain.DefaultStartTime, stops[0].StartTime)
	assert.Equal(t, itinerary.TipMarker+"Try Nishiki Market", stops[1].Remarks)
}

func TestPlanCmd_UsesConfiguredDefaults(t *testing.T) {
	drafts := &stubDrafts{records: draftedStops()}
	app := testApp(t, drafts, &stubTips{})
	app.Config.Planner.Location = "Osaka"

	_, err := executeCmd(t, app, "plan")
	require.NoError(t, err)
	assert.Equal(t, "Osaka", drafts.lastLocation)
	assert.Equal(t, "Classic Sightseeing", drafts.lastTheme)
}

func TestPlanCmd_ChecksModelBeforeDrafting(t *testing.T) {
	drafts := &stubDrafts{records: draftedStops()}
	app := testApp(t, drafts, &stubTips{})
	app.LLM = stubLLM{available: false}

	_, err := executeCmd(t, app, "plan", "--location", "Kyoto")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrOllamaUnavailable)
	assert.Contains(t, err.Error(), "http://localhost:11434")
	assert.Empty(t, drafts.lastLocation, "no draft requested")

	app.LLM = stubLLM{available: true}
	_, err = executeCmd(t, app, "plan", "--location", "Kyoto")
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", drafts.lastLocation)
}

func TestPlanCmd_DraftFailureIsReported(t *testing.T) {
	drafts := &stubDrafts{err: assert.AnError}
	_, err := executeCmd(t, testApp(t, drafts, &stubTips{}), "plan")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
