package auth

import "context"

type ctxKey string

const userIDKey ctxKey = "userID"

// WithUserID returns a copy of ctx carrying the authenticated teacher id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the teacher id set by WithUserID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
