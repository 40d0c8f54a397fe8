package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates malformed local input, caught before any
	// network call.
	ErrValidation = errors.New("validation failed")
	// ErrAuthRequired indicates the action needs a logged-in identity; the
	// UI should respond with a login prompt, not a generic failure.
	ErrAuthRequired = errors.New("login required")
	// ErrSessionExpired is derived from a 401 on any remote call and forces
	// local session teardown.
	ErrSessionExpired = errors.New("session expired")
)

// RemoteError is any backend failure other than a 401: a non-2xx status or
// a success=false envelope. The message is user-visible.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("remote call failed with status %d", e.Status)
}

// IsRemote reports whether err is a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
