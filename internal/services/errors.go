package services

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTooFewIDs          = errors.New("at least two benchmark IDs are required")
	ErrMixedTypes         = errors.New("can only compare components of the same type")
	ErrInvalidSort        = errors.New("invalid sort field")
)
