package errors

import "errors"

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrIllegalTransition    = errors.New("illegal status transition")
	ErrPersistence          = errors.New("persistence failure")
)
