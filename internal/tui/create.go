package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/greyvault/internal/service"
	"github.com/MKhiriev/greyvault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldService = iota
	fieldUsername
	fieldPassword
	fieldSecret
)

var createLabels = [...]string{
	fieldService:  "Service      ",
	fieldUsername: "Username     ",
	fieldPassword: "Password     ",
	fieldSecret:   "Master secret",
}

// CreateModel is the add-entry form. Enter on the last field submits; the
// password and master secret inputs are cleared as soon as the request is
// built.
type CreateModel struct {
	ctx   context.Context
	vault service.VaultService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewCreateModel(ctx context.Context, vault service.VaultService) *CreateModel {
	password := newMaskedInput("password")
	password.CharLimit = 1024

	inputs := []textinput.Model{
		fieldService:  newTextInput("service", 256),
		fieldUsername: newTextInput("username", 256),
		fieldPassword: password,
		fieldSecret:   newMaskedInput("master secret"),
	}
	inputs[fieldService].Focus()

	return &CreateModel{
		ctx:    ctx,
		vault:  vault,
		inputs: inputs,
	}
}

func (m *CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if added, ok := msg.(entryAddedMsg); ok {
		m.submitting = false
		if added.err != nil {
			m.errMsg = describeError(added.err)
			return m, nil
		}
		m.reset()
		return m, navigate(pageList, added)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.reset()
			return m, navigate(pageList, nil)
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.focus < fieldSecret {
				m.focusNext()
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CreateModel) View() string {
	var b strings.Builder
	b.WriteString("Field         │ Value\n")
	b.WriteString("──────────────┼────────────────────────────────────────────\n")
	for i, in := range m.inputs {
		b.WriteString(createLabels[i])
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW ENTRY", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: next / save")
}

func (m *CreateModel) submit() tea.Cmd {
	serviceName := strings.TrimSpace(m.inputs[fieldService].Value())
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	password := m.inputs[fieldPassword].Value()

	if serviceName == "" || password == "" || m.inputs[fieldSecret].Value() == "" {
		m.errMsg = "Service, password and master secret are required"
		return nil
	}

	req := models.NewEntryRequest{
		Service:      serviceName,
		Username:     username,
		Password:     password,
		MasterSecret: takeSecret(&m.inputs[fieldSecret]),
	}
	m.inputs[fieldPassword].Reset()
	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	vault := m.vault
	return func() tea.Msg {
		id, err := vault.AddEntry(ctx, req)
		return entryAddedMsg{
			entry: models.ListedEntry{ID: id, Service: req.Service, Username: req.Username},
			err:   err,
		}
	}
}

func (m *CreateModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = fieldService
	m.inputs[m.focus].Focus()
	m.errMsg = ""
}

func (m *CreateModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *CreateModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
