// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/greyvault/internal/service"
	"github.com/MKhiriev/greyvault/internal/validators"
)

// ErrClipboard wraps a failure to hand the revealed password to the system
// clipboard.
var ErrClipboard = errors.New("clipboard unavailable")

// describeError turns a vault error into a line for the user. Only the error
// kind and validation field names reach the screen.
func describeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrClipboard) {
		return "Password could not be copied to the clipboard"
	}

	switch service.KindOf(err) {
	case service.KindAuthentication:
		return "Wrong master secret, or the entry was tampered with"
	case service.KindMalformedInput:
		return "Stored entry is damaged and cannot be read"
	case service.KindValidation:
		for _, verr := range []error{
			validators.ErrInvalidEntryID,
			validators.ErrEmptyService,
			validators.ErrEmptyPassword,
			validators.ErrEmptyMasterSecret,
		} {
			if errors.Is(err, verr) {
				return "Invalid input: " + verr.Error()
			}
		}
		return "Invalid input"
	case service.KindNotFound:
		return "Entry no longer exists"
	case service.KindStorage:
		return "Vault file could not be read or written, see log"
	case service.KindConfiguration:
		return "Invalid configuration, see log"
	default:
		return "Unexpected error, see log"
	}
}
