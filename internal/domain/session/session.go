package session

import "context"

// Session is the authenticated technician behind a request. Token is the raw bearer token,
// forwarded as-is to the backend.
type Session struct {
	Email string
	Name  string
	Token string
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// CurrentUser returns the actor e-mail, or "" for anonymous requests.
func CurrentUser(ctx context.Context) string {
	s, _ := FromContext(ctx)
	return s.Email
}

func CurrentToken(ctx context.Context) string {
	s, _ := FromContext(ctx)
	return s.Token
}
