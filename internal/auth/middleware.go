package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quizhub/internal/config"
)

type contextKey string

const claimsContextKey contextKey = "userClaims"

var ErrNoClaims = errors.New("no user claims in context")

// AuthMiddleware verifies the bearer token and stores the verified claims
// in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			config.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ValidateJWT(token)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Invalid bearer token")
			config.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// RequireRole rejects callers below the given role threshold. Must run
// after AuthMiddleware.
func RequireRole(min Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := GetUserClaimsFromContext(r.Context())
			if err != nil {
				config.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !claims.Role.AtLeast(min) {
				config.Error(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}
