package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/greyvault/internal/config"
	"github.com/MKhiriev/greyvault/internal/logger"
)

// ClientStorages groups the storage repositories into a single value that
// can be passed to the service layer, together with the connection pool they
// share.
type ClientStorages struct {
	// VaultRepository is the SQLite-backed repository of sealed vault rows.
	VaultRepository VaultRepository

	db *DB
}

// NewClientStorages initialises the storage layer:
//  1. Opens an SQLite connection to the file at cfg.DB.DSN, creating the
//     file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [VaultRepository] to the connection.
//
// Returns an error if the database cannot be opened or migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		VaultRepository: NewVaultRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the connection pool.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
