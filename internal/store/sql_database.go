package store

import (
	"database/sql"

	"github.com/MKhiriev/greyvault/internal/logger"
	"github.com/MKhiriev/greyvault/migrations"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// classify labels err for log lines. A DB without a classifier labels
// everything non-retryable.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
