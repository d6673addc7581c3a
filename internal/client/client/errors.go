package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork means the request never produced an HTTP response
	// (connection refused, DNS failure, timeout).
	ErrNetwork = errors.New("directory unreachable")

	// ErrRemote means the directory answered with a non-success status.
	ErrRemote = errors.New("directory error")

	// ErrNotFound means the requested user does not exist in the directory.
	ErrNotFound = errors.New("user not found")

	// ErrUnauthorized means the directory rejected the credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidArgument is returned before any request is sent.
	ErrInvalidArgument = errors.New("invalid argument")
)

// StatusError describes a non-success HTTP answer. It matches ErrRemote and,
// for 404 and credential failures, ErrNotFound or ErrUnauthorized as well.
type StatusError struct {
	Op     string
	Code   int
	Detail string
	kind   error
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Code)
}

func (e *StatusError) Unwrap() []error {
	if e.kind == nil || e.kind == ErrRemote {
		return []error{ErrRemote}
	}
	return []error{ErrRemote, e.kind}
}
