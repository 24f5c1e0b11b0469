package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/greyvault/models"
)

const vaultTable = "vault"

// psql builds statements with SQLite's "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveEntryQuery(entry models.VaultEntry) (string, []any, error) {
	return psql.Insert(vaultTable).
		Columns("encrypted_service", "encrypted_username", "encrypted_password").
		Values(entry.EncryptedService, entry.EncryptedUsername, entry.EncryptedPassword).
		ToSql()
}

func buildGetEntryHeadersQuery() (string, []any, error) {
	return psql.Select("id", "encrypted_service", "encrypted_username").
		From(vaultTable).
		OrderBy("id").
		ToSql()
}

func buildGetEncryptedPasswordQuery(id models.EntryID) (string, []any, error) {
	return psql.Select("encrypted_password").
		From(vaultTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
}

func buildDeleteEntryQuery(id models.EntryID) (string, []any, error) {
	return psql.Delete(vaultTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
}
