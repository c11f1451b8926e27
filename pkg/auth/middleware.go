package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/stagepass/stagepass/pkg/utils"
)

type ContextKey string

const IdentityKey ContextKey = "identity"

func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, claims.Identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the authenticated identity set by Middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	return identity, ok
}
