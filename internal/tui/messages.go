package tui

import (
	"github.com/MKhiriev/greyvault/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageUnlock = "unlock"
	pageList   = "list"
	pageCreate = "create"
)

// NavigateTo asks RootModel to switch the active page. A non-nil Payload is
// delivered to the new page instead of running its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

type toggleBuildInfoMsg struct{}

type entriesLoadedMsg struct {
	entries []models.ListedEntry
}

type entryAddedMsg struct {
	entry models.ListedEntry
	err   error
}

type passwordCopiedMsg struct {
	id  models.EntryID
	err error
}

type entryDeletedMsg struct {
	id  models.EntryID
	err error
}
