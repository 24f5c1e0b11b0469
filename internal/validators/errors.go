package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEntryID    = errors.New("entry id must be positive")
	ErrEmptyService      = errors.New("service is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyMasterSecret = errors.New("master secret is required")
)
