package services

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDContextKey  struct{}
	traceIDContextKey struct{}
)

// WithUserID returns a context carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext returns the user id placed by WithUserID, if any.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	if ctx == nil {
		return uuid.Nil, false
	}
	userID, ok := ctx.Value(userIDContextKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// WithTraceID returns a context carrying the request trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDContextKey{}, traceID)
}

// TraceIDFromContext returns the request trace id, or "" outside a request.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDContextKey{}).(string)
	return traceID
}

// contextIdentityProvider resolves the acting user from the request context.
type contextIdentityProvider struct{}

// NewContextIdentityProvider returns the identity provider used in production:
// the identity middleware validates the bearer token and stores the user id
// on the request context.
func NewContextIdentityProvider() IdentityProviderInterface {
	return contextIdentityProvider{}
}

func (contextIdentityProvider) CurrentUser(ctx context.Context) (uuid.UUID, bool, error) {
	userID, ok := UserIDFromContext(ctx)
	return userID, ok, nil
}
