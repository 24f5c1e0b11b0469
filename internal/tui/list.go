package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/internal/service"
	"github.com/MKhiriev/greyvault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	serviceColMax  = 24
	usernameColMax = 24
)

type listMode int

const (
	listBrowsing listMode = iota
	listAskSecret
	listConfirmDelete
)

// ListModel shows the entries opened on unlock. Revealing a password asks
// for the master secret again and copies the result to the clipboard; the
// password itself never reaches the model.
type ListModel struct {
	ctx             context.Context
	vault           service.VaultService
	copyToClipboard func(string) error

	entries []models.ListedEntry
	idx     int
	mode    listMode
	secret  textinput.Model
	busy    bool
	status  string
	overlay *errorOverlayModel
}

func NewListModel(ctx context.Context, vault service.VaultService, copyToClipboard func(string) error) *ListModel {
	return &ListModel{
		ctx:             ctx,
		vault:           vault,
		copyToClipboard: copyToClipboard,
		secret:          newMaskedInput("master secret"),
	}
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func (m *ListModel) current() (models.ListedEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.ListedEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.entries = msg.entries
		m.idx = 0
		m.mode = listBrowsing
		m.overlay = nil
		if len(m.entries) == 0 {
			m.status = "No entries open under this master secret"
		} else {
			m.status = fmt.Sprintf("%d entries", len(m.entries))
		}
		return m, nil

	case entryAddedMsg:
		m.entries = append(m.entries, msg.entry)
		m.idx = len(m.entries) - 1
		m.status = fmt.Sprintf("Entry #%d added", msg.entry.ID)
		return m, nil

	case passwordCopiedMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Password of #%d copied to clipboard", msg.id)
		return m, nil

	case entryDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.remove(msg.id)
		m.status = fmt.Sprintf("Entry #%d deleted", msg.id)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == listAskSecret {
		var cmd tea.Cmd
		m.secret, cmd = m.secret.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch m.mode {
	case listAskSecret:
		return m.handleSecretKey(msg)
	case listConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageCreate, nil)
	case key.Matches(msg, keys.reveal):
		if _, ok := m.current(); ok {
			m.mode = listAskSecret
			m.status = ""
			return m, m.secret.Focus()
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.mode = listConfirmDelete
			m.status = ""
		}
	case key.Matches(msg, keys.reload):
		m.entries = nil
		m.idx = 0
		m.status = ""
		return m, navigate(pageUnlock, nil)
	case key.Matches(msg, keys.version):
		return m, func() tea.Msg { return toggleBuildInfoMsg{} }
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *ListModel) handleSecretKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.secret.Reset()
		m.secret.Blur()
		m.mode = listBrowsing
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.secret.Value() == "" {
			return m, nil
		}
		entry, ok := m.current()
		if !ok {
			m.secret.Reset()
			m.mode = listBrowsing
			return m, nil
		}

		secret := takeSecret(&m.secret)
		m.secret.Blur()
		m.mode = listBrowsing
		m.busy = true
		return m, m.cmdReveal(entry.ID, secret)
	}

	var cmd tea.Cmd
	m.secret, cmd = m.secret.Update(msg)
	return m, cmd
}

func (m *ListModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = listBrowsing
		entry, ok := m.current()
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.cmdDelete(entry.ID)
	case key.Matches(msg, keys.no):
		m.mode = listBrowsing
	}
	return m, nil
}

func (m *ListModel) showError(err error) {
	m.overlay = &errorOverlayModel{message: describeError(err)}
}

func (m *ListModel) remove(id models.EntryID) {
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *ListModel) cmdReveal(id models.EntryID, secret *crypto.Secret) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	copyToClipboard := m.copyToClipboard

	return func() tea.Msg {
		password, err := vault.GetPassword(ctx, secret, id)
		if err != nil {
			return passwordCopiedMsg{id: id, err: err}
		}
		if err = copyToClipboard(password); err != nil {
			return passwordCopiedMsg{id: id, err: fmt.Errorf("%w: %w", ErrClipboard, err)}
		}
		return passwordCopiedMsg{id: id}
	}
}

func (m *ListModel) cmdDelete(id models.EntryID) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return entryDeletedMsg{id: id, err: vault.DeleteEntry(ctx, id)}
	}
}

func (m *ListModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.mode == listConfirmDelete {
		entry, _ := m.current()
		return confirmModel{message: fmt.Sprintf("#%d %s", entry.ID, entry.Service)}.View()
	}

	var b strings.Builder
	b.WriteString(m.renderTable())

	if m.mode == listAskSecret {
		entry, _ := m.current()
		b.WriteString(fmt.Sprintf("\n\nReveal #%d │ [", entry.ID))
		b.WriteString(m.secret.View())
		b.WriteString("]")
	}

	if m.busy {
		b.WriteString("\n\nWorking...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	hotKeys := "n: new │ enter/c: copy password │ d: delete │ r: reload │ v: version │ q: quit"
	if m.mode == listAskSecret {
		hotKeys = "enter: copy password │ esc: cancel"
	}
	return renderPage("VAULT", b.String(), hotKeys)
}

func (m *ListModel) renderTable() string {
	if len(m.entries) == 0 {
		return "No entries"
	}

	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", m.entries[len(m.entries)-1].ID)); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	serviceColWidth := lipgloss.Width("Service")
	for _, e := range m.entries {
		if w := lipgloss.Width(fitText(e.Service, serviceColMax)); w > serviceColWidth {
			serviceColWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(padRight("ID", idColWidth))
	b.WriteString(" │ ")
	b.WriteString(padRight("Service", serviceColWidth))
	b.WriteString(" │ Username\n")
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", serviceColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", usernameColMax))

	for i, e := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString("\n")
		b.WriteString(padRight(fmt.Sprintf("%s %d", cursor, e.ID), idColWidth))
		b.WriteString(" │ ")
		b.WriteString(padRight(fitText(e.Service, serviceColMax), serviceColWidth))
		b.WriteString(" │ ")
		b.WriteString(fitText(valueOrDash(e.Username), usernameColMax))
	}

	return b.String()
}

// padRight pads by display width, so wide runes keep columns aligned.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
