package service

import "errors"

var (
	// ErrValidation reports a missing or malformed required field.
	ErrValidation = errors.New("service: missing required field")

	// ErrForbidden reports an operation on a protected resource.
	ErrForbidden = errors.New("service: operation not allowed")

	// ErrAuthFailed reports a bad username/password pair. Deliberately the
	// same error for unknown user and wrong password.
	ErrAuthFailed = errors.New("service: invalid credentials")
)
