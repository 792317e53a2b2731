package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/importer"
	"github.com/alexanderramin/waypoint/internal/itinerary"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// draftDoneMsg carries a drafted day back to the Update loop.
type draftDoneMsg struct {
	dayID   string
	records []itinerary.StopFields
	err     error
}

// tipDoneMsg carries a tip for one stop back to the Update loop.
type tipDoneMsg struct {
	dayID  string
	stopID string
	name   string
	tip    string
	err    error
}

// activeForm is a huh form on top of the schedule. submit runs once the
// form completes and may return a follow-up command.
type activeForm struct {
	title  string
	form   *huh.Form
	submit func(m *editorModel) tea.Cmd
}

// editorModel is the interactive itinerary editor. All store mutations
// happen inside Update, including those triggered by async results.
type editorModel struct {
	ctx     context.Context
	app     *App
	store   *itinerary.Store
	outPath string

	keys     editorKeys
	spinner  spinner.Model
	form     *activeForm
	cursor   int
	inFlight int
	dirty    bool

	status    string
	statusErr bool
	width     int
	height    int
}

func newEditorModel(ctx context.Context, app *App, store *itinerary.Store, outPath string) editorModel {
	if ctx == nil {
		ctx = context.Background()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return editorModel{
		ctx:     ctx,
		app:     app,
		store:   store,
		outPath: outPath,
		keys:    defaultEditorKeys(),
		spinner: sp,
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case draftDoneMsg:
		m.inFlight--
		m.applyDraft(msg)
		return m, nil

	case tipDoneMsg:
		m.inFlight--
		m.applyTip(msg)
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m editorModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.setStatus(formatter.Dim("Cancelled."))
		return m, nil
	}

	updated, cmd := m.form.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form.form = f
	}

	switch m.form.form.State {
	case huh.StateCompleted:
		active := m.form
		m.form = nil
		next := active.submit(&m)
		return m, tea.Batch(cmd, next)
	case huh.StateAborted:
		m.form = nil
		m.setStatus(formatter.Dim("Cancelled."))
		return m, nil
	}
	return m, cmd
}

func (m editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stops := m.store.ActiveDay().Stops

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(stops)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.MoveUp):
		m.moveSelected(-1)
	case key.Matches(msg, m.keys.MoveDown):
		m.moveSelected(1)

	case key.Matches(msg, m.keys.Longer):
		m.adjustSelected(15)
	case key.Matches(msg, m.keys.Shorter):
		m.adjustSelected(-15)

	case key.Matches(msg, m.keys.Delete):
		if stop, ok := m.selectedStop(); ok {
			m.store.DeleteStop(stop.ID)
			m.markDirty()
			m.clampCursor()
			m.setStatus(fmt.Sprintf("Deleted %s.", stop.Name))
		}

	case key.Matches(msg, m.keys.Add):
		return m.openStopForm(false)
	case key.Matches(msg, m.keys.Edit):
		if _, ok := m.selectedStop(); ok {
			return m.openStopForm(true)
		}

	case key.Matches(msg, m.keys.AddDay):
		m.store.AddDay()
		m.cursor = 0
		m.markDirty()
		m.setStatus(fmt.Sprintf("Added %s.", m.store.ActiveDay().Label))

	case key.Matches(msg, m.keys.NextDay):
		m.store.CycleDay(1)
		m.cursor = 0
	case key.Matches(msg, m.keys.PrevDay):
		m.store.CycleDay(-1)
		m.cursor = 0

	case key.Matches(msg, m.keys.EditDay):
		return m.openDayForm()

	case key.Matches(msg, m.keys.Generate):
		if !m.assistEnabled() {
			m.setError(assistDisabledError())
			return m, nil
		}
		return m.openPlanForm()

	case key.Matches(msg, m.keys.Tip):
		return m.requestTip()

	case key.Matches(msg, m.keys.Write):
		m.write()
	}
	return m, nil
}

func (m *editorModel) selectedStop() (stop domain.Stop, ok bool) {
	stops := m.store.ActiveDay().Stops
	if m.cursor < 0 || m.cursor >= len(stops) {
		return domain.Stop{}, false
	}
	return stops[m.cursor], true
}

func (m *editorModel) clampCursor() {
	n := len(m.store.ActiveDay().Stops)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *editorModel) moveSelected(direction int) {
	if _, ok := m.selectedStop(); !ok {
		return
	}
	before := m.store.ActiveDay().Stops
	m.store.MoveStop(m.cursor, direction)
	if len(before) > 0 && m.store.ActiveDay().Stops[m.cursor].ID != before[m.cursor].ID {
		m.cursor += direction
		m.markDirty()
	}
}

func (m *editorModel) adjustSelected(delta int) {
	if stop, ok := m.selectedStop(); ok {
		m.store.AdjustDuration(stop.ID, delta)
		m.markDirty()
	}
}

func (m *editorModel) openStopForm(edit bool) (tea.Model, tea.Cmd) {
	var stopID string
	var source domain.Stop
	isFirst := len(m.store.ActiveDay().Stops) == 0
	if edit {
		source, _ = m.selectedStop()
		stopID = source.ID
		isFirst = m.cursor == 0
	}

	values, err := newStopFormValues(source)
	if err != nil {
		m.setError(err)
		return *m, nil
	}

	title := "Add stop"
	if edit {
		title = "Edit " + source.Name
	}
	m.form = &activeForm{
		title: title,
		form:  stopForm(values, isFirst),
		submit: func(m *editorModel) tea.Cmd {
			id, err := m.store.UpsertStop(stopID, values.fields(isFirst))
			if err != nil {
				m.setError(err)
				return nil
			}
			m.markDirty()
			if idx := m.store.ActiveDay().StopIndex(id); idx >= 0 {
				m.cursor = idx
			}
			if edit {
				m.setStatus(fmt.Sprintf("Updated %s.", values.Name))
			} else {
				m.setStatus(fmt.Sprintf("Added %s.", values.Name))
			}
			return nil
		},
	}
	return *m, m.form.form.Init()
}

func (m *editorModel) openDayForm() (tea.Model, tea.Cmd) {
	values := newDayFormValues(m.store.ActiveDay())
	m.form = &activeForm{
		title: "Edit day",
		form:  dayForm(values),
		submit: func(m *editorModel) tea.Cmd {
			date, err := values.date()
			if err != nil {
				m.setError(err)
				return nil
			}
			m.store.UpdateDayMeta(values.Label, date)
			m.markDirty()
			m.setStatus(fmt.Sprintf("Updated %s.", values.Label))
			return nil
		},
	}
	return *m, m.form.form.Init()
}

func (m *editorModel) openPlanForm() (tea.Model, tea.Cmd) {
	cfg := m.app.config()
	values := &planFormValues{Location: cfg.Planner.Location, Theme: cfg.Planner.Theme}
	m.form = &activeForm{
		title: "Plan day",
		form:  planForm(values),
		submit: func(m *editorModel) tea.Cmd {
			return m.startDraft(values.Location, values.Theme)
		},
	}
	return *m, m.form.form.Init()
}

// startDraft launches a generation call for the active day.
func (m *editorModel) startDraft(location, theme string) tea.Cmd {
	dayID := m.store.ActiveDayID()
	assist := m.app.Assist
	ctx := m.ctx
	m.setStatus(fmt.Sprintf("Planning %s in %s...", theme, location))
	return tea.Batch(m.beginWork(), func() tea.Msg {
		records, err := assist.DraftDay(ctx, location, theme)
		return draftDoneMsg{dayID: dayID, records: records, err: err}
	})
}

func (m *editorModel) applyDraft(msg draftDoneMsg) {
	if msg.err != nil {
		m.setError(fmt.Errorf("planning failed: %w", msg.err))
		return
	}
	if err := m.store.ReplaceDayStops(msg.dayID, msg.records); err != nil {
		m.setError(err)
		return
	}
	m.markDirty()
	if msg.dayID == m.store.ActiveDayID() {
		m.cursor = 0
	}
	m.setStatus(formatter.StyleGreen.Render(fmt.Sprintf("Planned %d stops.", len(msg.records))))
}

func (m *editorModel) requestTip() (tea.Model, tea.Cmd) {
	stop, ok := m.selectedStop()
	if !ok {
		return *m, nil
	}
	if !m.assistEnabled() {
		m.setError(assistDisabledError())
		return *m, nil
	}

	dayID := m.store.ActiveDayID()
	assist := m.app.Assist
	ctx := m.ctx
	m.setStatus(fmt.Sprintf("Asking for a tip about %s...", stop.Name))
	cmd := tea.Batch(m.beginWork(), func() tea.Msg {
		tip, err := assist.SuggestTip(ctx, stop.Name)
		return tipDoneMsg{dayID: dayID, stopID: stop.ID, name: stop.Name, tip: tip, err: err}
	})
	return *m, cmd
}

func (m *editorModel) applyTip(msg tipDoneMsg) {
	if msg.err != nil {
		m.setError(fmt.Errorf("no tip for %s: %w", msg.name, msg.err))
		return
	}
	m.store.AppendRemark(msg.dayID, msg.stopID, itinerary.TipMarker, msg.tip)
	m.markDirty()
	m.setStatus(itinerary.TipMarker + msg.tip)
}

func (m *editorModel) write() {
	if m.outPath == "" {
		m.setError(fmt.Errorf("nowhere to write: start the editor with --file or --out"))
		return
	}
	if err := importer.SaveTrip(m.outPath, m.store.Trip()); err != nil {
		m.setError(err)
		return
	}
	m.dirty = false
	m.setStatus(formatter.StyleGreen.Render("Saved " + m.outPath))
}

// beginWork counts a call in flight and starts the spinner if it is idle.
func (m *editorModel) beginWork() tea.Cmd {
	m.inFlight++
	if m.inFlight > 1 {
		return nil
	}
	return m.spinner.Tick
}

func (m *editorModel) assistEnabled() bool {
	return m.app.Assist != nil && m.app.Assist.Enabled()
}

func (m *editorModel) markDirty() { m.dirty = true }

func (m *editorModel) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *editorModel) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.app.logger().Debug("editor error", "error", err)
}
