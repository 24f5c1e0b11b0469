package store

import (
	"context"

	"github.com/MKhiriev/greyvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository persists sealed vault rows. It never sees plaintext: every
// string it stores or returns is an envelope produced by the codec.
type VaultRepository interface {
	// SaveEntry inserts one row and returns the id assigned by the store.
	SaveEntry(ctx context.Context, entry models.VaultEntry) (models.EntryID, error)
	// GetEntryHeaders returns id, sealed service and sealed username of
	// every row in ascending id order. EncryptedPassword is left empty.
	GetEntryHeaders(ctx context.Context) ([]models.VaultEntry, error)
	// GetEncryptedPassword returns the sealed password of one row or
	// ErrEntryNotFound.
	GetEncryptedPassword(ctx context.Context, id models.EntryID) (string, error)
	// DeleteEntry removes one row. A missing row yields ErrEntryNotFound.
	DeleteEntry(ctx context.Context, id models.EntryID) error
}

// ErrorClassificator decides whether a failed database call may succeed on
// a later attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
