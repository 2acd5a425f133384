package auth

import (
	"context"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
)

// Session is the request-scoped identity resolved by the authentication
// middleware. It travels on the request context; nothing in this package
// keeps ambient global session state.
type Session struct {
	UserID      string
	FirebaseUID string
	Email       string
	Role        string
}

// IsAdmin reports whether the session's user may mutate projects.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == domain.RoleAdmin
}

type sessionKey struct{}

// WithSession returns a context carrying the given session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom extracts the session from the context, if any.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
