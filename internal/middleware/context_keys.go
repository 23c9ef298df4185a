package middleware

import "context"

// userIDKey is the key used to store the authenticated user's id in the
// request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id from the request
// context. The second return reports whether one was set.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
