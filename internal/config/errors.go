package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates crypto parameters that cannot drive
	// Argon2id or AES-GCM (for example, a 20-byte key or an 8-byte nonce).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates invalid log settings
	// (for example, an unknown level name or an empty file path).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
