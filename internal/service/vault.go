package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/internal/logger"
	"github.com/MKhiriev/greyvault/internal/store"
	"github.com/MKhiriev/greyvault/internal/validators"
	"github.com/MKhiriev/greyvault/models"
)

type vaultService struct {
	repository store.VaultRepository
	codec      crypto.Codec
	validator  validators.Validator

	logger *logger.Logger
}

func NewVaultService(repository store.VaultRepository, codec crypto.Codec, validator validators.Validator, logger *logger.Logger) VaultService {
	return &vaultService{
		repository: repository,
		codec:      codec,
		validator:  validator,
		logger:     logger,
	}
}

func (v *vaultService) AddEntry(ctx context.Context, req models.NewEntryRequest) (models.EntryID, error) {
	defer req.MasterSecret.Destroy()
	ctx, log := v.logger.WithOperation(ctx, "vault.AddEntry")

	if err := v.validator.Validate(ctx, req); err != nil {
		log.Warn().
			Str("func", "vaultService.AddEntry").
			Str("kind", KindValidation.String()).
			AnErr("reason", err).
			Msg("add request rejected")
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var entry models.VaultEntry
	fields := []struct {
		name      string
		plaintext string
		dst       *string
	}{
		{name: "service", plaintext: req.Service, dst: &entry.EncryptedService},
		{name: "username", plaintext: req.Username, dst: &entry.EncryptedUsername},
		{name: "password", plaintext: req.Password, dst: &entry.EncryptedPassword},
	}

	for _, f := range fields {
		sealed, err := v.codec.Seal(req.MasterSecret, f.plaintext)
		if err != nil {
			log.Err(err).
				Str("func", "vaultService.AddEntry").
				Str("field", f.name).
				Str("kind", KindOf(err).String()).
				Msg("failed to seal field")
			return 0, err
		}
		*f.dst = sealed
	}

	id, err := v.repository.SaveEntry(ctx, entry)
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.AddEntry").
			Str("kind", KindStorage.String()).
			Msg("failed to save entry")
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	log.Info().
		Str("func", "vaultService.AddEntry").
		Int64("entry_id", int64(id)).
		Msg("entry added")

	return id, nil
}

func (v *vaultService) ListEntries(ctx context.Context, secret *crypto.Secret) []models.ListedEntry {
	defer secret.Destroy()
	ctx, log := v.logger.WithOperation(ctx, "vault.ListEntries")

	listed := make([]models.ListedEntry, 0)

	if !secret.Alive() {
		log.Warn().
			Str("func", "vaultService.ListEntries").
			Str("kind", KindValidation.String()).
			Msg("no master secret given, nothing can be opened")
		return listed
	}

	rows, err := v.repository.GetEntryHeaders(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.ListEntries").
			Str("kind", KindStorage.String()).
			Msg("failed to read entries, treating vault as empty")
		return listed
	}

	for _, row := range rows {
		service, err := v.codec.Open(secret, row.EncryptedService)
		if err != nil {
			v.logSkippedRow(log, row.ID, "service", err)
			continue
		}

		username, err := v.codec.Open(secret, row.EncryptedUsername)
		if err != nil {
			v.logSkippedRow(log, row.ID, "username", err)
			continue
		}

		listed = append(listed, models.ListedEntry{
			ID:       row.ID,
			Service:  service,
			Username: username,
		})
	}

	log.Debug().
		Str("func", "vaultService.ListEntries").
		Int("rows", len(rows)).
		Int("listed", len(listed)).
		Msg("entries listed")

	return listed
}

func (v *vaultService) logSkippedRow(log *logger.Logger, id models.EntryID, field string, err error) {
	log.Warn().
		Str("func", "vaultService.ListEntries").
		Int64("entry_id", int64(id)).
		Str("field", field).
		Str("kind", KindOf(err).String()).
		Msg("skipping entry that does not open")
}

func (v *vaultService) GetPassword(ctx context.Context, secret *crypto.Secret, id models.EntryID) (string, error) {
	defer secret.Destroy()
	ctx, log := v.logger.WithOperation(ctx, "vault.GetPassword")

	for _, obj := range []any{id, secret} {
		if err := v.validator.Validate(ctx, obj); err != nil {
			log.Warn().
				Str("func", "vaultService.GetPassword").
				Int64("entry_id", int64(id)).
				Str("kind", KindValidation.String()).
				AnErr("reason", err).
				Msg("password request rejected")
			return "", fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	encrypted, err := v.repository.GetEncryptedPassword(ctx, id)
	if errors.Is(err, store.ErrEntryNotFound) {
		log.Info().
			Str("func", "vaultService.GetPassword").
			Int64("entry_id", int64(id)).
			Str("kind", KindNotFound.String()).
			Msg("entry does not exist")
		return "", fmt.Errorf("%w: %w", ErrEntryNotFound, err)
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.GetPassword").
			Int64("entry_id", int64(id)).
			Str("kind", KindStorage.String()).
			Msg("failed to read password")
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}

	password, err := v.codec.Open(secret, encrypted)
	if err != nil {
		log.Warn().
			Str("func", "vaultService.GetPassword").
			Int64("entry_id", int64(id)).
			Str("kind", KindOf(err).String()).
			Msg("password does not open")
		return "", err
	}

	log.Info().
		Str("func", "vaultService.GetPassword").
		Int64("entry_id", int64(id)).
		Msg("password revealed")

	return password, nil
}

func (v *vaultService) DeleteEntry(ctx context.Context, id models.EntryID) error {
	ctx, log := v.logger.WithOperation(ctx, "vault.DeleteEntry")

	if err := v.validator.Validate(ctx, id); err != nil {
		log.Warn().
			Str("func", "vaultService.DeleteEntry").
			Int64("entry_id", int64(id)).
			Str("kind", KindValidation.String()).
			Msg("delete request rejected")
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	err := v.repository.DeleteEntry(ctx, id)
	if errors.Is(err, store.ErrEntryNotFound) {
		log.Warn().
			Str("func", "vaultService.DeleteEntry").
			Int64("entry_id", int64(id)).
			Msg("no rows affected during delete: entry did not exist")
		return nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.DeleteEntry").
			Int64("entry_id", int64(id)).
			Str("kind", KindStorage.String()).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	log.Info().
		Str("func", "vaultService.DeleteEntry").
		Int64("entry_id", int64(id)).
		Msg("entry deleted")

	return nil
}
