package service

import (
	"context"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the whole contract between the interactive shell and the
// vault. Every operation that receives a master secret owns it and destroys
// it before returning, on success and on failure alike.
type VaultService interface {
	// AddEntry seals service, username and password independently and stores
	// them as one row. Either the row is written with all three envelopes or
	// nothing is written.
	AddEntry(ctx context.Context, req models.NewEntryRequest) (models.EntryID, error)

	// ListEntries opens service and username of every row in id order. Rows
	// that do not open under secret are left out. Storage failures are logged
	// and yield an empty result; this method never fails.
	ListEntries(ctx context.Context, secret *crypto.Secret) []models.ListedEntry

	// GetPassword opens the password of one row. A missing row yields
	// ErrEntryNotFound; a wrong secret or damaged envelope yields the codec's
	// error, never a wrong password.
	GetPassword(ctx context.Context, secret *crypto.Secret, id models.EntryID) (string, error)

	// DeleteEntry removes one row. Deleting a row that does not exist is
	// logged and is not an error.
	DeleteEntry(ctx context.Context, id models.EntryID) error
}

// AppInfoService exposes build metadata to the shell.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
