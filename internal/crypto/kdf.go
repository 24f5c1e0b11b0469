// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2Deriver is the Argon2id implementation of [KeyDeriver].
type argon2Deriver struct {
	params Params
}

// NewArgon2Deriver constructs a [KeyDeriver] bound to params. The parameters
// are fixed for the lifetime of the deriver.
func NewArgon2Deriver(params Params) KeyDeriver {
	return &argon2Deriver{params: params}
}

// Derive implements [KeyDeriver]. The secret is read in place from its
// locked buffer, so no copy of it is left on the heap.
func (d *argon2Deriver) Derive(secret *Secret, salt []byte) ([]byte, error) {
	if len(salt) != d.params.SaltLen {
		return nil, fmt.Errorf("%w: salt length %d, want %d", ErrInvalidConfiguration, len(salt), d.params.SaltLen)
	}
	if !secret.Alive() {
		return nil, ErrEmptySecret
	}

	return argon2.IDKey(
		secret.Bytes(),
		salt,
		d.params.Time,
		d.params.MemoryKiB,
		d.params.Threads,
		d.params.KeyLen,
	), nil
}
