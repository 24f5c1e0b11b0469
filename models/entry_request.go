package models

import "github.com/MKhiriev/greyvault/internal/crypto"

// NewEntryRequest is the transient input of an add operation.
//
// MasterSecret is owned by the operation that receives the request: the
// vault service destroys it before returning, whatever the outcome, so
// callers must not reuse it afterwards.
type NewEntryRequest struct {
	Service  string
	Username string
	Password string

	MasterSecret *crypto.Secret
}
