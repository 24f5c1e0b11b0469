// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/internal/logger"
	"github.com/MKhiriev/greyvault/internal/mock"
	"github.com/MKhiriev/greyvault/internal/store"
	"github.com/MKhiriev/greyvault/internal/validators"
	"github.com/MKhiriev/greyvault/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (VaultService, *mock.MockVaultRepository, *mock.MockCodec) {
	t.Helper()
	repo := mock.NewMockVaultRepository(ctrl)
	codec := mock.NewMockCodec(ctrl)

	svc := NewVaultService(repo, codec, validators.NewVaultEntryValidator(), logger.Nop())
	return svc, repo, codec
}

func newEntryRequest(secret string) models.NewEntryRequest {
	return models.NewEntryRequest{
		Service:      "Mail",
		Username:     "alice",
		Password:     "p@ss",
		MasterSecret: crypto.NewSecretFromString(secret),
	}
}

// ── AddEntry ─────────────────────────────────────────────────────────────────

func TestVaultService_AddEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, codec := newTestVaultSvc(t, ctrl)
	req := newEntryRequest("k")

	gomock.InOrder(
		codec.EXPECT().Seal(req.MasterSecret, "Mail").Return("env-service", nil),
		codec.EXPECT().Seal(req.MasterSecret, "alice").Return("env-username", nil),
		codec.EXPECT().Seal(req.MasterSecret, "p@ss").Return("env-password", nil),
	)
	repo.EXPECT().SaveEntry(gomock.Any(), models.VaultEntry{
		EncryptedService:  "env-service",
		EncryptedUsername: "env-username",
		EncryptedPassword: "env-password",
	}).Return(models.EntryID(7), nil)

	id, err := svc.AddEntry(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.EntryID(7), id)
	assert.False(t, req.MasterSecret.Alive(), "secret must be destroyed after add")
}

func TestVaultService_AddEntry_EmptyUsernameAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, codec := newTestVaultSvc(t, ctrl)
	req := newEntryRequest("k")
	req.Username = ""

	codec.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("env", nil).Times(3)
	repo.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).Return(models.EntryID(1), nil)

	_, err := svc.AddEntry(context.Background(), req)
	require.NoError(t, err)
}

func TestVaultService_AddEntry_SealFailure_NothingSaved(t *testing.T) {
	tests := []struct {
		name      string
		failAfter int
	}{
		{name: "service", failAfter: 0},
		{name: "username", failAfter: 1},
		{name: "password", failAfter: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, codec := newTestVaultSvc(t, ctrl)
			req := newEntryRequest("k")

			calls := make([]any, 0, tt.failAfter+1)
			for i := 0; i < tt.failAfter; i++ {
				calls = append(calls, codec.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("env", nil))
			}
			calls = append(calls, codec.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("", crypto.ErrSealFailed))
			gomock.InOrder(calls...)
			// no SaveEntry expectation: any call fails the test

			id, err := svc.AddEntry(context.Background(), req)

			require.ErrorIs(t, err, crypto.ErrSealFailed)
			assert.Zero(t, id)
			assert.False(t, req.MasterSecret.Alive())
		})
	}
}

func TestVaultService_AddEntry_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.NewEntryRequest)
		wantErr error
	}{
		{
			name:    "empty service",
			mutate:  func(r *models.NewEntryRequest) { r.Service = "" },
			wantErr: validators.ErrEmptyService,
		},
		{
			name:    "empty password",
			mutate:  func(r *models.NewEntryRequest) { r.Password = "" },
			wantErr: validators.ErrEmptyPassword,
		},
		{
			name: "empty secret",
			mutate: func(r *models.NewEntryRequest) {
				r.MasterSecret.Destroy()
				r.MasterSecret = crypto.NewSecret(nil)
			},
			wantErr: validators.ErrEmptyMasterSecret,
		},
		{
			name:    "nil secret",
			mutate:  func(r *models.NewEntryRequest) { r.MasterSecret.Destroy(); r.MasterSecret = nil },
			wantErr: validators.ErrEmptyMasterSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _ := newTestVaultSvc(t, ctrl)
			req := newEntryRequest("k")
			tt.mutate(&req)

			_, err := svc.AddEntry(context.Background(), req)

			require.ErrorIs(t, err, ErrValidation)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.False(t, req.MasterSecret.Alive())
		})
	}
}

func TestVaultService_AddEntry_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, codec := newTestVaultSvc(t, ctrl)
	req := newEntryRequest("k")

	codec.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("env", nil).Times(3)
	repo.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).Return(models.EntryID(0), store.ErrExecutingStatement)

	_, err := svc.AddEntry(context.Background(), req)

	require.ErrorIs(t, err, ErrStorage)
	require.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.Equal(t, KindStorage, KindOf(err))
	assert.False(t, req.MasterSecret.Alive())
}

// ── ListEntries ──────────────────────────────────────────────────────────────

func TestVaultService_ListEntries_OpensHeadersInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, codec := newTestVaultSvc(t, ctrl)
	secret := crypto.NewSecretFromString("k")

	repo.EXPECT().GetEntryHeaders(gomock.Any()).Return([]models.VaultEntry{
		{ID: 1, EncryptedService: "s1", EncryptedUsername: "u1"},
		{ID: 2, EncryptedService: "s2", EncryptedUsername: "u2"},
	}, nil)
	codec.EXPECT().Open(secret, "s1").Return("Mail", nil)
	codec.EXPECT().Open(secret, "u1").Return("alice", nil)
	codec.EXPECT().Open(secret, "s2").Return("Bank", nil)
	codec.EXPECT().Open(secret, "u2").Return("bob", nil)

	got := svc.ListEntries(context.Background(), secret)

	assert.Equal(t, []models.ListedEntry{
		{ID: 1, Service: "Mail", Username: "alice"},
		{ID: 2, Service: "Bank", Username: "bob"},
	}, got)
	assert.False(t, secret.Alive())
}

func TestVaultService_ListEntries_SkipsRowsThatDoNotOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, codec := newTestVaultSvc(t, ctrl)
	secret := crypto.NewSecretFromString("k")

	repo.EXPECT().GetEntryHeaders(gomock.Any()).Return([]models.VaultEntry{
		{ID: 1, EncryptedService: "bad", EncryptedUsername: "u1"},
		{ID: 2, EncryptedService: "s2", EncryptedUsername: "bad"},
		{ID: 3, EncryptedService: "s3", EncryptedUsername: "u3"},
	}, nil)
	codec.EXPECT().Open(gomock.Any(), "bad").Return("", crypto.ErrAuthenticationFailed).Times(2)
	codec.EXPECT().Open(gomock.Any(), "s2").Return("Bank", nil)
	codec.EXPECT().Open(gomock.Any(), "s3").Return("Shop", nil)
	codec.EXPECT().Open(gomock.Any(), "u3").Return("carol", nil)

	got := svc.ListEntries(context.Background(), secret)

	assert.Equal(t, []models.ListedEntry{{ID: 3, Service: "Shop", Username: "carol"}}, got)
}

func TestVaultService_ListEntries_StorageError_ReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestVaultSvc(t, ctrl)
	secret := crypto.NewSecretFromString("k")

	repo.EXPECT().GetEntryHeaders(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	got := svc.ListEntries(context.Background(), secret)

	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.False(t, secret.Alive())
}

func TestVaultService_ListEntries_DeadSecret_NoStorageCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestVaultSvc(t, ctrl)
	secret := crypto.NewSecretFromString("k")
	secret.Destroy()

	got := svc.ListEntries(context.Background(), secret)

	assert.Empty(t, got)
}

// ── GetPassword ──────────────────────────────────────────────────────────────

func TestVaultService_GetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, codec := newTestVaultSvc(t, ctrl)
	secret := crypto.NewSecretFromString("k")

	repo.EXPECT().GetEncryptedPassword(gomock.Any(), models.EntryID(4)).Return("env-password", nil)
	codec.EXPECT().Open(secret, "env-password").Return("p@ss", nil)

	got, err := svc.GetPassword(context.Background(), secret, 4)

	require.NoError(t, err)
	assert.Equal(t, "p@ss", got)
	assert.False(t, secret.Alive())
}

func TestVaultService_GetPassword_InvalidID(t *testing.T) {
	for _, id := range []models.EntryID{0, -1, -42} {
		ctrl := gomock.NewController(t)

		svc, _, _ := newTestVaultSvc(t, ctrl)
		secret := crypto.NewSecretFromString("k")

		_, err := svc.GetPassword(context.Background(), secret, id)

		require.ErrorIs(t, err, ErrValidation)
		require.ErrorIs(t, err, validators.ErrInvalidEntryID)
		assert.False(t, secret.Alive())
		ctrl.Finish()
	}
}

func TestVaultService_GetPassword_DeadSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.GetPassword(context.Background(), nil, 1)

	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, validators.ErrEmptyMasterSecret)
}

func TestVaultService_GetPassword_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestVaultSvc(t, ctrl)
	secret := crypto.NewSecretFromString("k")

	repo.EXPECT().GetEncryptedPassword(gomock.Any(), models.EntryID(99)).Return("", store.ErrEntryNotFound)

	_, err := svc.GetPassword(context.Background(), secret, 99)

	require.ErrorIs(t, err, ErrEntryNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.False(t, secret.Alive())
}

func TestVaultService_GetPassword_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestVaultSvc(t, ctrl)

	repo.EXPECT().GetEncryptedPassword(gomock.Any(), gomock.Any()).Return("", store.ErrAcquiringConnection)

	_, err := svc.GetPassword(context.Background(), crypto.NewSecretFromString("k"), 1)

	require.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, KindStorage, KindOf(err))
}

func TestVaultService_GetPassword_OpenError_ReturnedAsIs(t *testing.T) {
	tests := []struct {
		name     string
		openErr  error
		wantKind ErrorKind
	}{
		{name: "wrong secret", openErr: crypto.ErrAuthenticationFailed, wantKind: KindAuthentication},
		{name: "damaged envelope", openErr: crypto.ErrMalformedEnvelope, wantKind: KindMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo, codec := newTestVaultSvc(t, ctrl)
			secret := crypto.NewSecretFromString("k")

			repo.EXPECT().GetEncryptedPassword(gomock.Any(), models.EntryID(1)).Return("env", nil)
			codec.EXPECT().Open(gomock.Any(), "env").Return("", tt.openErr)

			got, err := svc.GetPassword(context.Background(), secret, 1)

			require.ErrorIs(t, err, tt.openErr)
			assert.Empty(t, got)
			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.False(t, secret.Alive())
		})
	}
}

// ── DeleteEntry ──────────────────────────────────────────────────────────────

func TestVaultService_DeleteEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestVaultSvc(t, ctrl)
	repo.EXPECT().DeleteEntry(gomock.Any(), models.EntryID(3)).Return(nil)

	require.NoError(t, svc.DeleteEntry(context.Background(), 3))
}

func TestVaultService_DeleteEntry_MissingRowIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestVaultSvc(t, ctrl)
	repo.EXPECT().DeleteEntry(gomock.Any(), models.EntryID(99)).Return(store.ErrEntryNotFound)

	require.NoError(t, svc.DeleteEntry(context.Background(), 99))
}

func TestVaultService_DeleteEntry_InvalidID_NoStorageCall(t *testing.T) {
	for _, id := range []models.EntryID{0, -5} {
		ctrl := gomock.NewController(t)

		svc, _, _ := newTestVaultSvc(t, ctrl)

		err := svc.DeleteEntry(context.Background(), id)

		require.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, KindValidation, KindOf(err))
		ctrl.Finish()
	}
}

func TestVaultService_DeleteEntry_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestVaultSvc(t, ctrl)
	repo.EXPECT().DeleteEntry(gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	err := svc.DeleteEntry(context.Background(), 1)

	require.ErrorIs(t, err, ErrStorage)
	require.True(t, errors.Is(err, store.ErrExecutingStatement))
}

// ── Logging ──────────────────────────────────────────────────────────────────

func TestVaultService_LogsCarryNoPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	repo := mock.NewMockVaultRepository(ctrl)
	codec := mock.NewMockCodec(ctrl)
	svc := NewVaultService(repo, codec, validators.NewVaultEntryValidator(), log)

	req := models.NewEntryRequest{
		Service:      "svc-plain",
		Username:     "user-plain",
		Password:     "pass-plain",
		MasterSecret: crypto.NewSecretFromString("master-plain"),
	}
	codec.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("env", nil).Times(3)
	repo.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).Return(models.EntryID(1), errors.New("disk full"))

	_, err := svc.AddEntry(context.Background(), req)
	require.Error(t, err)

	out := buf.String()
	require.NotEmpty(t, out)
	for _, s := range []string{"svc-plain", "user-plain", "pass-plain", "master-plain"} {
		assert.NotContains(t, out, s)
	}
	assert.Contains(t, out, `"op":"vault.AddEntry"`)
	assert.Contains(t, out, `"op_id"`)
}
