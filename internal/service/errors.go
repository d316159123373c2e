package service

import "errors"

// Sentinel errors shared by the services. Handlers map these onto the
// HTTP taxonomy: ErrValidation 400, ErrInvalidCredentials 401, ErrNotFound 404,
// ErrDuplicate 409, anything else 500.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("duplicate value for unique field")
	ErrInsufficientStock  = errors.New("insufficient stock")
)
