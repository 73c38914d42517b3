package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/gigs/internal/form"
	"github.com/desertthunder/gigs/internal/models"
)

const (
	fieldBand = iota
	fieldDate
	fieldCity
	fieldEvent
	fieldCost
	fieldCount
)

var fieldLabels = [fieldCount]string{"Band", "Data", "Città", "Evento", "Costo (€)"}

var fieldNames = map[string]int{
	"band":  fieldBand,
	"date":  fieldDate,
	"city":  fieldCity,
	"event": fieldEvent,
	"cost":  fieldCost,
}

// editor is the add/edit form. id is empty when adding.
type editor struct {
	id     string
	inputs [fieldCount]textinput.Model
	focus  int
	err    error
}

func newEditor(c *models.Concert) *editor {
	e := &editor{}

	placeholders := [fieldCount]string{"Verdena, Afterhours", "25 febbraio 2025", "Milano", "", "0"}
	for i := range e.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		ti.Width = 40
		e.inputs[i] = ti
	}

	if c != nil {
		in := form.FromConcert(*c)
		e.id = c.ID
		e.inputs[fieldBand].SetValue(in.Band)
		e.inputs[fieldDate].SetValue(in.Date)
		e.inputs[fieldCity].SetValue(in.City)
		e.inputs[fieldEvent].SetValue(in.Event)
		e.inputs[fieldCost].SetValue(in.Cost)
	}

	e.inputs[fieldBand].Focus()
	return e
}

func (e *editor) editing() bool { return e.id != "" }

func (e *editor) input() form.Input {
	return form.Input{
		Band:  e.inputs[fieldBand].Value(),
		Date:  e.inputs[fieldDate].Value(),
		City:  e.inputs[fieldCity].Value(),
		Event: e.inputs[fieldEvent].Value(),
		Cost:  e.inputs[fieldCost].Value(),
	}
}

// submit validates the fields and returns the record to store.
// On failure the focus moves to the offending field.
func (e *editor) submit() (models.Concert, error) {
	c, err := form.ValidateAndBuild(e.input(), e.id)
	if err != nil {
		e.err = err
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			if i, ok := fieldNames[verr.Field]; ok {
				e.setFocus(i)
			}
		}
		return models.Concert{}, err
	}
	e.err = nil
	return c, nil
}

func (e *editor) move(delta int) tea.Cmd {
	return e.setFocus((e.focus + delta + fieldCount) % fieldCount)
}

func (e *editor) setFocus(i int) tea.Cmd {
	e.inputs[e.focus].Blur()
	e.focus = i
	return e.inputs[i].Focus()
}

func (e *editor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return cmd
}

func (e *editor) view(p *Palette) string {
	title := "Nuovo concerto"
	if e.editing() {
		title = "Modifica concerto"
	}

	out := p.title.Render(title) + "\n"
	for i, ti := range e.inputs {
		marker := "  "
		if i == e.focus {
			marker = p.ok.Render("> ")
		}
		out += fmt.Sprintf("%s%s\n  %s\n", marker, p.label.Render(fieldLabels[i]), ti.View())
	}

	if e.err != nil {
		out += "\n" + p.err.Render(describeError(e.err)) + "\n"
	}
	return out
}

// describeError turns a validation error into a message for the user.
func describeError(err error) string {
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}

	switch verr.Rule {
	case form.RuleRequired:
		return fmt.Sprintf("Il campo %s è obbligatorio", labelFor(verr.Field))
	case form.RuleFormat:
		return fmt.Sprintf("Data non valida: %v", verr.Err)
	case form.RuleNumeric:
		return "Il costo deve essere un numero"
	case form.RuleNonNegative:
		return "Il costo non può essere negativo"
	}
	return err.Error()
}

func labelFor(field string) string {
	if i, ok := fieldNames[field]; ok {
		return fieldLabels[i]
	}
	return field
}
