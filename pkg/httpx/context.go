package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's id (int64) through the
// request context.
const CtxKeyUserID ctxKey = "user_id"

// ContextWithUserID returns ctx with the authenticated user id attached.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

// UserIDFromContext extracts the authenticated user id, if present.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(int64)
	return id, ok
}
