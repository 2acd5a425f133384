package auth

import (
	"context"
	"errors"
)

var (
	// ErrNotAuthenticated means no valid session exists on the request.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAdmin means a session exists but its user lacks the admin role.
	ErrNotAdmin = errors.New("not an admin")
)

// RequireAdmin resolves the caller's session from the request context and
// fails closed: ErrNotAuthenticated when no session exists, ErrNotAdmin when
// the session's user is not an admin. It is a read-only check; callers are
// expected to short-circuit on failure before any mutation happens.
func RequireAdmin(ctx context.Context) (*Session, error) {
	s, ok := SessionFrom(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if !s.IsAdmin() {
		return nil, ErrNotAdmin
	}
	return s, nil
}
