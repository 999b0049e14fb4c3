package middlewares

import (
	"context"
	"net/http"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
)

// Tokener defines the token extraction the middleware needs.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver resolves a bearer token to the user record it names.
type UserResolver interface {
	Resolve(ctx context.Context, tokenString string) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// injects the resolved user into the request context. Requests with a
// missing, malformed or expired token get 401.
func AuthMiddleware(tokener Tokener, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolver.Resolve(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = SetUserToContext(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
