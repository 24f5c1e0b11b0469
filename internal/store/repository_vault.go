package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/greyvault/internal/logger"
	"github.com/MKhiriev/greyvault/models"
)

// vaultRepository is the SQLite-backed implementation of [VaultRepository].
//
// Each method takes its own connection from the pool and returns it before
// exiting; nothing is held between calls.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] over db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveEntry inserts the sealed triple inside a transaction and returns the
// AUTOINCREMENT id.
func (v *vaultRepository) SaveEntry(ctx context.Context, entry models.VaultEntry) (models.EntryID, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.SaveEntry").Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := v.DB.Conn(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.SaveEntry").
			Stringer("class", v.classify(err)).
			Msg("failed to acquire connection")
		return 0, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.SaveEntry").
			Stringer("class", v.classify(err)).
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.SaveEntry").
			Stringer("class", v.classify(err)).
			Msg("failed to insert vault entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.SaveEntry").
			Msg("failed to read inserted id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.SaveEntry").
			Stringer("class", v.classify(err)).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "vaultRepository.SaveEntry").
		Int64("entry_id", id).
		Msg("vault entry saved")

	return models.EntryID(id), nil
}

// GetEntryHeaders returns sealed service and username of every row, ordered
// by id. An empty vault yields an empty slice.
func (v *vaultRepository) GetEntryHeaders(ctx context.Context) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryHeadersQuery()
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.GetEntryHeaders").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := v.DB.Conn(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.GetEntryHeaders").
			Stringer("class", v.classify(err)).
			Msg("failed to acquire connection")
		return nil, fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.GetEntryHeaders").
			Stringer("class", v.classify(err)).
			Msg("failed to execute query for getting entry headers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.VaultEntry, 0, 16)

	for rows.Next() {
		var item models.VaultEntry

		if scanErr := rows.Scan(&item.ID, &item.EncryptedService, &item.EncryptedUsername); scanErr != nil {
			log.Err(scanErr).
				Str("func", "vaultRepository.GetEntryHeaders").
				Msg("failed to scan vault row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vaultRepository.GetEntryHeaders").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetEncryptedPassword returns the sealed password of the row with the
// given id.
func (v *vaultRepository) GetEncryptedPassword(ctx context.Context, id models.EntryID) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEncryptedPasswordQuery(id)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.GetEncryptedPassword").Msg("failed to build select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := v.DB.Conn(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.GetEncryptedPassword").
			Stringer("class", v.classify(err)).
			Msg("failed to acquire connection")
		return "", fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	var encrypted string
	err = conn.QueryRowContext(ctx, query, args...).Scan(&encrypted)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().
			Str("func", "vaultRepository.GetEncryptedPassword").
			Int64("entry_id", int64(id)).
			Msg("vault entry not found")
		return "", ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.GetEncryptedPassword").
			Int64("entry_id", int64(id)).
			Stringer("class", v.classify(err)).
			Msg("failed to query encrypted password")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return encrypted, nil
}

// DeleteEntry removes the row with the given id.
func (v *vaultRepository) DeleteEntry(ctx context.Context, id models.EntryID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(id)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.DeleteEntry").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conn, err := v.DB.Conn(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.DeleteEntry").
			Stringer("class", v.classify(err)).
			Msg("failed to acquire connection")
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.DeleteEntry").
			Int64("entry_id", int64(id)).
			Stringer("class", v.classify(err)).
			Msg("failed to execute delete for vault entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.DeleteEntry").
			Int64("entry_id", int64(id)).
			Msg("failed to get rows affected after delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}
