// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntryID is the store-assigned identifier of a vault row.
// It is positive, assigned once on insert and never changes afterwards.
type EntryID int64

// Valid reports whether id can address a stored row.
func (id EntryID) Valid() bool {
	return id > 0
}

// VaultEntry is a single persisted vault row.
// Every field except ID holds a self-contained envelope string
// (base64 of salt ‖ nonce ‖ ciphertext ‖ tag) sealed independently
// under the master secret. The database treats these values as opaque text.
type VaultEntry struct {
	// ID is assigned by the store on insert.
	ID EntryID `json:"id"`

	// EncryptedService is the sealed service name (e.g. "Mail").
	EncryptedService string `json:"encrypted_service"`

	// EncryptedUsername is the sealed account name.
	EncryptedUsername string `json:"encrypted_username"`

	// EncryptedPassword is the sealed password. It is never read by the
	// listing query and is only fetched by ID.
	EncryptedPassword string `json:"encrypted_password"`
}
