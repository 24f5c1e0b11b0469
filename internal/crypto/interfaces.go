package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// KeyDeriver turns a master secret and a salt into a fixed-length symmetric
// key using a memory-hard password hashing function.
type KeyDeriver interface {
	// Derive returns Params.KeyLen bytes derived from secret and salt.
	// It is deterministic: identical inputs always produce identical keys.
	// Returns ErrInvalidConfiguration if len(salt) differs from
	// Params.SaltLen and ErrEmptySecret if the secret is unusable; both
	// checks happen before any hashing work.
	// The caller owns the returned key and must wipe it after use.
	Derive(secret *Secret, salt []byte) ([]byte, error)
}

// Codec seals plaintext strings into self-contained envelopes and opens them
// back. Every envelope carries its own salt and nonce:
//
//	base64( salt ‖ nonce ‖ ciphertext ‖ tag )
//
// so the only thing needed to reverse it is the master secret.
type Codec interface {
	// Seal encrypts plaintext under a key derived from secret and a fresh
	// random salt, using a fresh random nonce. Two calls with identical
	// inputs never produce the same envelope.
	// Returns an error wrapping ErrSealFailed on any failure.
	Seal(secret *Secret, plaintext string) (string, error)

	// Open decrypts an envelope produced by Seal.
	// Returns ErrMalformedEnvelope for undecodable or truncated input and
	// ErrAuthenticationFailed when the tag does not verify. On failure no
	// partial plaintext is ever returned.
	Open(secret *Secret, envelope string) (string, error)
}
