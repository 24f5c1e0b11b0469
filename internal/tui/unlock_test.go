package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/internal/mock"
	"github.com/MKhiriev/greyvault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnlockModel_Enter_ListsAndNavigates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	m := NewUnlockModel(context.Background(), vault)
	m.input.SetValue("K")

	entries := []models.ListedEntry{{ID: 1, Service: "Mail", Username: "alice"}}
	vault.EXPECT().ListEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, secret *crypto.Secret) []models.ListedEntry {
			assert.Equal(t, "K", string(secret.Bytes()))
			return entries
		})

	_, cmd := m.Update(keyPress("enter"))
	require.NotNil(t, cmd)
	assert.Empty(t, m.input.Value(), "input must be cleared once the secret is taken")
	assert.True(t, m.submitting)

	loaded := cmd()
	assert.Equal(t, entriesLoadedMsg{entries: entries}, loaded)

	_, cmd = m.Update(loaded)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageList, Payload: loaded}, cmd())
	assert.False(t, m.submitting)
}

func TestUnlockModel_EmptySecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewUnlockModel(context.Background(), mock.NewMockVaultService(ctrl))

	_, cmd := m.Update(keyPress("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Master secret is required", m.errMsg)
	assert.Contains(t, m.View(), "Master secret is required")
}

func TestUnlockModel_EscClearsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewUnlockModel(context.Background(), mock.NewMockVaultService(ctrl))
	m.input.SetValue("half-typed")

	m.Update(keyPress("esc"))

	assert.Empty(t, m.input.Value())
}

func TestUnlockModel_ViewMasksSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewUnlockModel(context.Background(), mock.NewMockVaultService(ctrl))
	m.input.SetValue("topsecret")

	view := m.View()

	assert.NotContains(t, view, "topsecret")
	assert.Contains(t, view, "UNLOCK VAULT")
}
