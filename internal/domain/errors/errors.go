package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrValidation         = errors.New("validation failed")
)
