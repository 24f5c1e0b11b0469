package validators

import (
	"context"

	"github.com/MKhiriev/greyvault/internal/crypto"
	"github.com/MKhiriev/greyvault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the store-assigned identifier of a vault row.
	FieldID = "id"

	// FieldService targets the service name of a new entry.
	FieldService = "service"

	// FieldPassword targets the password of a new entry.
	FieldPassword = "password"

	// FieldMasterSecret targets the master secret that seals or opens an entry.
	FieldMasterSecret = "master_secret"
)

// VaultEntryValidator implements the Validator interface for vault inputs:
// NewEntryRequest, EntryID and the master secret itself.
type VaultEntryValidator struct{}

// NewVaultEntryValidator constructs a new VaultEntryValidator
// and returns it as the Validator interface.
func NewVaultEntryValidator() Validator {
	return &VaultEntryValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.NewEntryRequest / *models.NewEntryRequest
//   - models.EntryID
//   - *crypto.Secret
//
// Returns ErrUnsupportedType if obj does not match any known type.
func (v *VaultEntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewEntryRequest:
		return v.validateNewEntryRequest(value, fields...)
	case *models.NewEntryRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNewEntryRequest(*value, fields...)

	case models.EntryID:
		if !value.Valid() {
			return ErrInvalidEntryID
		}
		return nil

	case *crypto.Secret:
		return validateMasterSecret(value)

	default:
		return ErrUnsupportedType
	}
}

// validateNewEntryRequest validates an add request.
//
// Default validated fields (when none specified): service, password,
// master secret. The username may be empty.
func (v *VaultEntryValidator) validateNewEntryRequest(request models.NewEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldPassword, FieldMasterSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldService:
			if request.Service == "" {
				return ErrEmptyService
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldMasterSecret:
			if err := validateMasterSecret(request.MasterSecret); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateMasterSecret(secret *crypto.Secret) error {
	if !secret.Alive() {
		return ErrEmptyMasterSecret
	}
	return nil
}
