// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/greyvault/internal/config"
	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/internal/store"
	"github.com/MKhiriev/greyvault/internal/validators"
)

// ErrorKind is the coarse classification of a vault failure. It is what the
// shell shows and what log lines carry instead of raw error payloads.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindConfiguration
	KindAuthentication
	KindMalformedInput
	KindValidation
	KindStorage
	KindNotFound
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConfiguration:
		return "configuration"
	case KindAuthentication:
		return "authentication"
	case KindMalformedInput:
		return "malformed_input"
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// KindOf classifies err. The order of checks matters: a seal failure caused
// by a destroyed secret is a validation problem, one caused by bad parameters
// is a configuration problem.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone

	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return KindAuthentication
	case errors.Is(err, crypto.ErrMalformedEnvelope):
		return KindMalformedInput

	case errors.Is(err, crypto.ErrInvalidConfiguration),
		errors.Is(err, config.ErrInvalidCryptoConfigs),
		errors.Is(err, config.ErrInvalidStorageConfigs),
		errors.Is(err, config.ErrInvalidLogConfigs):
		return KindConfiguration

	case errors.Is(err, ErrEntryNotFound),
		errors.Is(err, store.ErrEntryNotFound):
		return KindNotFound

	case errors.Is(err, ErrValidation),
		errors.Is(err, crypto.ErrEmptySecret),
		errors.Is(err, validators.ErrInvalidEntryID),
		errors.Is(err, validators.ErrEmptyService),
		errors.Is(err, validators.ErrEmptyPassword),
		errors.Is(err, validators.ErrEmptyMasterSecret):
		return KindValidation

	case errors.Is(err, ErrStorage):
		return KindStorage
	}

	return KindUnknown
}
