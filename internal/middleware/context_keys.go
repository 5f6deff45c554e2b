package middleware

import "context"

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// loggerCtxKey stores the request-scoped *slog.Logger.
	loggerCtxKey = contextKey("logger")
	// actorIDKey stores the authenticated account ID.
	actorIDKey = contextKey("actorID")
)

// GetActorIDFromCtx retrieves the authenticated account ID from the context.
// It returns the ID and a boolean indicating whether it was found.
func GetActorIDFromCtx(ctx context.Context) (string, bool) {
	val := ctx.Value(actorIDKey)
	if val == nil {
		return "", false
	}
	actorID, ok := val.(string)
	if !ok || actorID == "" {
		return "", false
	}
	return actorID, true
}
