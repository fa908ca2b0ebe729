package domain

import (
	"errors"
	"fmt"
)

// Interaction outcomes other than success, mirroring the backend's status
// codes. Callers are expected to match these with errors.Is.
var (
	// ErrUnauthenticated means no valid credential was available, either
	// before the call or reported by the backend.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the caller is authenticated but not permitted,
	// such as deleting another user's comment.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the target resource is already gone.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports client-detected bad input. It never reaches the
// network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransientError wraps a network or server failure that may succeed if the
// user re-triggers the operation. It never leads to an automatic retry.
type TransientError struct {
	Op  string
	Err error
}

func (e TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is, or wraps, a TransientError.
func IsTransient(err error) bool {
	var te TransientError
	return errors.As(err, &te)
}
