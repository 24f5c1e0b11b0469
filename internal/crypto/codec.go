// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
)

// envelopeCodec is the AES-GCM implementation of [Codec].
type envelopeCodec struct {
	params  Params
	deriver KeyDeriver
	random  io.Reader
}

// NewCodec validates params and constructs a [Codec] that derives a fresh
// key per call with Argon2id and seals with AES-GCM.
// Returns an error wrapping ErrInvalidConfiguration if params are unusable.
func NewCodec(params Params) (Codec, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &envelopeCodec{
		params:  params,
		deriver: NewArgon2Deriver(params),
		random:  rand.Reader,
	}, nil
}

// Seal implements [Codec].
func (c *envelopeCodec) Seal(secret *Secret, plaintext string) (string, error) {
	header := make([]byte, c.params.headerLen())
	if _, err := io.ReadFull(c.random, header); err != nil {
		return "", fmt.Errorf("%w: generate salt and nonce: %w", ErrSealFailed, err)
	}
	salt, nonce := header[:c.params.SaltLen], header[c.params.SaltLen:]

	key, err := c.deriver.Derive(secret, salt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealFailed, err)
	}
	defer memguard.WipeBytes(key)

	aead, err := c.newAEAD(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealFailed, err)
	}

	plain := []byte(plaintext)
	defer memguard.WipeBytes(plain)

	// salt ‖ nonce ‖ ciphertext ‖ tag
	blob := make([]byte, 0, len(header)+len(plain)+aead.Overhead())
	blob = append(blob, header...)
	blob = aead.Seal(blob, nonce, plain, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Codec].
func (c *envelopeCodec) Open(secret *Secret, envelope string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: not valid base64", ErrMalformedEnvelope)
	}
	if len(blob) < c.params.headerLen() {
		return "", fmt.Errorf("%w: %d bytes, want at least %d", ErrMalformedEnvelope, len(blob), c.params.headerLen())
	}

	salt := blob[:c.params.SaltLen]
	nonce := blob[c.params.SaltLen:c.params.headerLen()]
	sealed := blob[c.params.headerLen():]

	key, err := c.deriver.Derive(secret, salt)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(key)

	aead, err := c.newAEAD(key)
	if err != nil {
		return "", err
	}

	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		// Wrong secret and tampered data look the same here.
		return "", ErrAuthenticationFailed
	}
	defer memguard.WipeBytes(plain)

	return string(plain), nil
}

func (c *envelopeCodec) newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrInvalidConfiguration, err)
	}

	var aead cipher.AEAD
	switch {
	case c.params.NonceLen == gcmStandardNonceSize && c.params.TagLen == gcmStandardTagSize:
		aead, err = cipher.NewGCM(block)
	case c.params.NonceLen == gcmStandardNonceSize:
		aead, err = cipher.NewGCMWithTagSize(block, c.params.TagLen)
	default:
		aead, err = cipher.NewGCMWithNonceSize(block, c.params.NonceLen)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrInvalidConfiguration, err)
	}

	return aead, nil
}
