// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

const (
	gcmStandardNonceSize = 12
	gcmStandardTagSize   = 16
	gcmMinTagSize        = 12
	minSaltLen           = 8
)

// Params is the immutable parameter set shared by the key derivation and the
// codec. It is built once at startup from configuration and passed by value.
//
// Changing any field invalidates every envelope already stored: the envelope
// format does not record which parameters produced it.
type Params struct {
	// Argon2id tuning.
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32

	// Envelope layout, in bytes.
	SaltLen  int
	NonceLen int
	TagLen   int
}

// DefaultParams returns the vault defaults:
//   - Argon2id: 3 iterations, 64 MiB, 4 threads, 32-byte key (AES-256)
//   - salt: 32 bytes
//   - nonce: 12 bytes (standard GCM nonce)
//   - tag: 16 bytes (128 bits)
func DefaultParams() Params {
	return Params{
		Time:      3,
		MemoryKiB: 64 * 1024, // 64 MiB
		Threads:   4,
		KeyLen:    32,
		SaltLen:   32,
		NonceLen:  gcmStandardNonceSize,
		TagLen:    gcmStandardTagSize,
	}
}

// Validate checks that p can drive both Argon2id and AES-GCM.
// AES-GCM accepts a non-standard nonce size only with the full 16-byte tag,
// and a shortened tag only with the standard 12-byte nonce.
func (p Params) Validate() error {
	switch {
	case p.Time == 0:
		return fmt.Errorf("%w: argon2 time must be positive", ErrInvalidConfiguration)
	case p.MemoryKiB == 0:
		return fmt.Errorf("%w: argon2 memory must be positive", ErrInvalidConfiguration)
	case p.Threads == 0:
		return fmt.Errorf("%w: argon2 threads must be positive", ErrInvalidConfiguration)
	case p.KeyLen != 16 && p.KeyLen != 24 && p.KeyLen != 32:
		return fmt.Errorf("%w: key length %d is not an AES key size", ErrInvalidConfiguration, p.KeyLen)
	case p.SaltLen < minSaltLen:
		return fmt.Errorf("%w: salt length %d is below %d", ErrInvalidConfiguration, p.SaltLen, minSaltLen)
	case p.NonceLen < gcmStandardNonceSize:
		return fmt.Errorf("%w: nonce length %d is below %d", ErrInvalidConfiguration, p.NonceLen, gcmStandardNonceSize)
	case p.TagLen < gcmMinTagSize || p.TagLen > gcmStandardTagSize:
		return fmt.Errorf("%w: tag length %d is outside [%d, %d]", ErrInvalidConfiguration, p.TagLen, gcmMinTagSize, gcmStandardTagSize)
	case p.NonceLen != gcmStandardNonceSize && p.TagLen != gcmStandardTagSize:
		return fmt.Errorf("%w: non-standard nonce requires a %d-byte tag", ErrInvalidConfiguration, gcmStandardTagSize)
	}

	return nil
}

// headerLen is the length of the salt ‖ nonce prefix of every envelope.
func (p Params) headerLen() int {
	return p.SaltLen + p.NonceLen
}
