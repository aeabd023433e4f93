package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/slidegym/internal/models"
	"github.com/balkashynov/slidegym/internal/parser"
	"github.com/balkashynov/slidegym/internal/session"
	"github.com/balkashynov/slidegym/internal/validator"
)

// Editor fields, in tab order
const (
	fieldName = iota
	fieldWeight
	fieldReps
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Weight (kg)", "Reps"}

// fieldKeys maps each input to its validation field name
var fieldKeys = [fieldCount]string{"name", "weight", "reps"}

// EditorModel is the create/edit dialog. It only collects text; saving goes
// through the controller.
type EditorModel struct {
	inputs []textinput.Model
	focus  int
	keys   editorKeys
	help   help.Model

	mode   session.EditorMode
	day    models.WeekDay
	target *models.Exercise

	// set after a rejected submit, refreshed while typing
	showErrors bool
	errs       validator.ValidationErrors
}

// NewEditorModel builds the dialog for the editor state in snap, prefilled
// with the edit target when there is one.
func NewEditorModel(snap *session.Snapshot) EditorModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[fieldName].Placeholder = "Squat"
	inputs[fieldName].CharLimit = 100
	inputs[fieldWeight].Placeholder = "40"
	inputs[fieldWeight].CharLimit = 10
	inputs[fieldReps].Placeholder = "10"
	inputs[fieldReps].CharLimit = 6

	e := EditorModel{
		inputs: inputs,
		keys:   newEditorKeys(),
		help:   help.New(),
		mode:   snap.Mode,
		day:    snap.SelectedDay,
	}

	if snap.EditingExercise != nil {
		ex := *snap.EditingExercise
		e.target = &ex
		e.day = ex.Day
		e.inputs[fieldName].SetValue(ex.Name)
		e.inputs[fieldWeight].SetValue(models.FormatWeight(ex.Weight))
		e.inputs[fieldReps].SetValue(strconv.Itoa(ex.Reps))
	}

	e.inputs[fieldName].Focus()
	return e
}

// Values returns the parsed fields. Unreadable numbers come back as 0.
func (e EditorModel) Values() (string, float64, int) {
	return parser.ParseFields(
		e.inputs[fieldName].Value(),
		e.inputs[fieldWeight].Value(),
		e.inputs[fieldReps].Value(),
	)
}

// Focused returns the index of the focused field.
func (e EditorModel) Focused() int {
	return e.focus
}

// WithErrors records the result of validating the current fields and turns
// on the inline hints.
func (e EditorModel) WithErrors(err error) EditorModel {
	e.showErrors = true
	e.errs = nil
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		e.errs = verrs
	}
	return e
}

// FieldError returns the hint for field, if hints are on and it has one.
func (e EditorModel) FieldError(field int) string {
	if !e.showErrors || field < 0 || field >= fieldCount {
		return ""
	}
	if fe, ok := e.errs.Field(fieldKeys[field]); ok {
		return fe.Message
	}
	return ""
}

func (e EditorModel) focusField(i int) (EditorModel, tea.Cmd) {
	e.inputs[e.focus].Blur()
	e.focus = (i + fieldCount) % fieldCount
	return e, e.inputs[e.focus].Focus()
}

// Update handles field navigation and typing. Submit and cancel belong to
// the week model.
func (e EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, e.keys.Next):
			return e.focusField(e.focus + 1)
		case key.Matches(msg, e.keys.Prev):
			return e.focusField(e.focus - 1)
		}
	}

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return e, cmd
}

// View renders the dialog.
func (e EditorModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))

	title := fmt.Sprintf("🏋 New exercise · %s", e.day.DisplayName())
	if e.mode == session.EditorEdit && e.target != nil {
		title = fmt.Sprintf("🏋 Edit exercise #%d · %s", e.target.ID, e.day.DisplayName())
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	activeLabelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Italic(true)

	for i := range e.inputs {
		label := labelStyle
		if i == e.focus {
			label = activeLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(e.inputs[i].View())
		b.WriteString("\n")
		if hint := e.FieldError(i); hint != "" {
			b.WriteString(errorStyle.Render("  " + hint))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(e.help.View(e.keys))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2).
		Render(b.String())
}
