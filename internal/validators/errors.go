package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTenantID      = errors.New("invalid tenant ID")
	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrInvalidOperationType = errors.New("invalid operation type")
	ErrInvalidAction        = errors.New("invalid queue action")
	ErrInvalidPayload       = errors.New("payload must be a JSON object")
	ErrInvalidEntityID      = errors.New("invalid entity ID")
	ErrMissingLogin         = errors.New("login is required")
	ErrMissingName          = errors.New("name is required")
)
