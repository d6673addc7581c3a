package common

import "errors"

var (
	ErrorNotFound     = errors.New("not found")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorValidation marks a request the caller has to fix before retrying.
	ErrorValidation = errors.New("validation error")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
