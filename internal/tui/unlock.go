// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel is the Bubble Tea model for the unlock screen. It renders one
// masked input for the master secret and lists the vault with it on enter.
// The loaded entries are handed to the list page through [NavigateTo].
type UnlockModel struct {
	ctx   context.Context
	vault service.VaultService

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewUnlockModel(ctx context.Context, vault service.VaultService) *UnlockModel {
	input := newMaskedInput("master secret")
	input.Focus()

	return &UnlockModel{
		ctx:   ctx,
		vault: vault,
		input: input,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - entriesLoadedMsg  clears submitting state and opens the list page.
//   - enter             moves the input into a Secret and lists the vault.
//   - esc               clears the input.
//
// All other key events are forwarded to the input widget.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(entriesLoadedMsg); ok {
		m.submitting = false
		m.errMsg = ""
		return m, navigate(pageList, loaded)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.input.Reset()
			m.errMsg = ""
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.input.Value() == "" {
				m.errMsg = "Master secret is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(takeSecret(&m.input))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Master secret │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nUnlocking...\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: clear")
}

func (m *UnlockModel) cmdUnlock(secret *crypto.Secret) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return entriesLoadedMsg{entries: vault.ListEntries(ctx, secret)}
	}
}
