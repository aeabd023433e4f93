package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/slidegym/internal/models"
	"github.com/balkashynov/slidegym/internal/session"
)

// WeekModel is the main screen: one tab per weekday and the exercise list of
// the selected day. It renders controller snapshots and turns keys into
// controller intents.
type WeekModel struct {
	ctx     context.Context
	ctrl    *session.Controller
	updates <-chan *session.Snapshot

	snap   *session.Snapshot
	editor EditorModel
	cursor int // index in the selected day's list

	keys  weekKeys
	help  help.Model
	frame int

	width  int
	height int

	status string
	err    error
}

// snapshotMsg signals that the controller published a new snapshot
type snapshotMsg struct{}

// mutationMsg carries the outcome of a toggle or delete run off the UI loop
type mutationMsg struct {
	op  string
	err error
}

// submitMsg carries the outcome of an editor submit
type submitMsg struct {
	saved bool
	err   error
}

// NewWeekModel creates the week model. updates may be nil, in which case the
// model only picks up snapshots after its own intents.
func NewWeekModel(ctx context.Context, ctrl *session.Controller, updates <-chan *session.Snapshot) WeekModel {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	return WeekModel{
		ctx:     ctx,
		ctrl:    ctrl,
		updates: updates,
		snap:    ctrl.Snapshot(),
		keys:    newWeekKeys(),
		help:    h,
	}
}

// waitForSnapshot blocks on the subscription until the next publish.
func waitForSnapshot(updates <-chan *session.Snapshot) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return snapshotMsg{}
	}
}

// Init starts listening for snapshots and the shimmer
func (m WeekModel) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.updates), shimmerTick())
}

// Snapshot returns the snapshot on screen.
func (m WeekModel) Snapshot() *session.Snapshot {
	return m.snap
}

// Cursor returns the index of the highlighted exercise.
func (m WeekModel) Cursor() int {
	return m.cursor
}

// Err returns the last store error, if any.
func (m WeekModel) Err() error {
	return m.err
}

// refresh takes the controller's latest snapshot. A channel message may be
// older than a snapshot already applied, so the message itself is ignored.
func (m WeekModel) refresh() WeekModel {
	next := m.ctrl.Snapshot()
	prev := m.snap

	if next.EditorOpen && (!prev.EditorOpen || prev.Mode != next.Mode || !sameTarget(prev.EditingExercise, next.EditingExercise)) {
		m.editor = NewEditorModel(next)
	}
	if next.SelectedDay != prev.SelectedDay {
		m.cursor = 0
	}

	m.snap = next
	m.cursor = clampCursor(m.cursor, len(next.Selected()))
	return m
}

func sameTarget(a, b *models.Exercise) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// selected returns the highlighted exercise.
func (m WeekModel) selected() (models.Exercise, bool) {
	list := m.snap.Selected()
	if m.cursor < 0 || m.cursor >= len(list) {
		return models.Exercise{}, false
	}
	return list[m.cursor], true
}

// Update handles messages
func (m WeekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		m.frame++
		return m, shimmerTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		return m.refresh(), waitForSnapshot(m.updates)

	case mutationMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("❌ %s failed: %v", msg.op, msg.err)
		} else {
			m.err = nil
			m.status = ""
		}
		return m.refresh(), nil

	case submitMsg:
		return m.handleSubmit(msg), nil

	case tea.KeyMsg:
		if m.snap.EditorOpen {
			return m.handleEditorKeys(msg)
		}
		return m.handleWeekKeys(msg)
	}

	return m, nil
}

func (m WeekModel) handleWeekKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevDay):
		m.ctrl.SelectDay(m.snap.SelectedDay.Prev())
		return m.refresh(), nil

	case key.Matches(msg, m.keys.NextDay):
		m.ctrl.SelectDay(m.snap.SelectedDay.Next())
		return m.refresh(), nil

	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.snap.Selected()))
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.snap.Selected()))
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.ctrl.RequestCreate()
		return m.refresh(), textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if ex, ok := m.selected(); ok {
			m.ctrl.RequestEdit(ex)
			return m.refresh(), textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if ex, ok := m.selected(); ok {
			return m, m.mutate("toggle", func(ctx context.Context) error {
				return m.ctrl.ToggleCompletion(ctx, ex)
			})
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if ex, ok := m.selected(); ok {
			return m, m.mutate("delete", func(ctx context.Context) error {
				return m.ctrl.Remove(ctx, ex)
			})
		}
		return m, nil
	}

	// 1..7 jump straight to a day
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
		if day, err := models.WeekDayFromIndex(int(s[0] - '1')); err == nil {
			m.ctrl.SelectDay(day)
			return m.refresh(), nil
		}
	}

	return m, nil
}

func (m WeekModel) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.editor.keys.Cancel):
		m.ctrl.Dismiss()
		return m.refresh(), nil

	case key.Matches(msg, m.editor.keys.Submit):
		name, weight, reps := m.editor.Values()
		ctx, ctrl := m.ctx, m.ctrl
		return m, func() tea.Msg {
			saved, err := ctrl.Submit(ctx, name, weight, reps)
			return submitMsg{saved: saved, err: err}
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.showErrors {
		m.editor = m.editor.WithErrors(m.ctrl.Validate(m.editor.Values()))
	}
	return m, cmd
}

func (m WeekModel) handleSubmit(msg submitMsg) WeekModel {
	switch {
	case msg.err != nil:
		// store failed; the editor stays open with the user's input
		m.err = msg.err
		m.status = fmt.Sprintf("❌ Save failed: %v", msg.err)
		return m.refresh()

	case !msg.saved:
		m.editor = m.editor.WithErrors(m.ctrl.Validate(m.editor.Values()))
		return m.refresh()
	}

	m.err = nil
	m.status = "✅ Saved"
	return m.refresh()
}

// mutate runs a store-touching intent off the UI loop.
func (m WeekModel) mutate(op string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return mutationMsg{op: op, err: fn(ctx)}
	}
}

// View renders the TUI
func (m WeekModel) View() string {
	var sections []string

	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentMain)).
		Render("slidegym")
	sections = append(sections, logo, m.renderTabs(), "")

	if m.snap.EditorOpen {
		sections = append(sections, m.editor.View())
	} else {
		sections = append(sections, m.renderList())
	}

	if m.status != "" {
		statusColor := ColorSuccess
		if m.err != nil {
			statusColor = ColorError
		}
		sections = append(sections, "", lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Render(m.status))
	}

	if !m.snap.EditorOpen {
		sections = append(sections, "", m.help.View(m.keys))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderTabs renders one tab per day with its completed/total count
func (m WeekModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Padding(0, 1)

	tabs := make([]string, 0, models.DaysInWeek)
	for _, day := range models.WeekDays() {
		done, total := m.snap.Progress(day)
		label := day.Short()
		if total > 0 {
			label = fmt.Sprintf("%s %d/%d", label, done, total)
		}
		if day == m.snap.SelectedDay {
			tabs = append(tabs, activeStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderList renders the selected day's exercises, newest first
func (m WeekModel) renderList() string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(header.Render(m.snap.SelectedDay.DisplayName()))
	b.WriteString("\n\n")

	list := m.snap.Selected()
	if len(list) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true)
		b.WriteString(empty.Render("No exercises yet. Press a to add one."))
		return m.frameList(b.String())
	}

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	selectedRow := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 1)

	for i, ex := range list {
		check := "○"
		name := nameStyle.Render(ex.Name)
		summary := summaryStyle.Render(ex.Summary())
		if ex.Completed {
			check = doneStyle.Render("✓")
			name = doneStyle.Render(ex.Name)
			summary = doneStyle.Render(ex.Summary())
		}

		if i == m.cursor {
			if !ex.Completed {
				name = renderShimmer(ex.Name, m.frame)
			}
			b.WriteString(selectedRow.Render(fmt.Sprintf("%s %s  %s", check, name, summary)))
		} else {
			b.WriteString(fmt.Sprintf("   %s %s  %s", check, name, summary))
		}
		b.WriteString("\n")
	}

	return m.frameList(strings.TrimRight(b.String(), "\n"))
}

func (m WeekModel) frameList(content string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1)
	if m.width > 8 {
		style = style.Width(m.width - 8)
	}
	return style.Render(content)
}
