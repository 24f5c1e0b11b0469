package crypto

import "errors"

// Sentinel errors returned by the key derivation and envelope codec.
// They carry only a classification: no key, salt or plaintext bytes are ever
// embedded into an error value. Callers should match with [errors.Is].
var (
	// ErrInvalidConfiguration is returned when a parameter does not match the
	// configured constants (e.g. a salt of the wrong length) or when the
	// parameter set itself is unusable. It is detected before any hashing.
	ErrInvalidConfiguration = errors.New("invalid crypto configuration")

	// ErrEmptySecret is returned when the master secret is nil, empty or has
	// already been destroyed by its owner.
	ErrEmptySecret = errors.New("master secret is empty or destroyed")

	// ErrSealFailed is returned when an envelope could not be produced.
	ErrSealFailed = errors.New("seal failed")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify.
	// A wrong master secret and tampered data both end up here.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrMalformedEnvelope is returned when an envelope is not valid base64
	// or is too short to hold a salt and a nonce.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)
