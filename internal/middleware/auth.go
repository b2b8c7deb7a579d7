package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/auth/token"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/logger"
)

// unexported, collision-proof context key
type claimsContextKeyType struct{}

var claimsKey = claimsContextKeyType{}

// ClaimsFromContext extracts the verified access claims from context.
func ClaimsFromContext(ctx context.Context) (token.AccessClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(token.AccessClaims)
	return claims, ok
}

// AuthMiddleware verifies the bearer access token on each request. It
// authenticates only; role checks stay with the routes behind it.
type AuthMiddleware struct {
	Signer *token.Signer
}

func NewAuthMiddleware(signer *token.Signer) *AuthMiddleware {
	return &AuthMiddleware{Signer: signer}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read bearer token
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")

		// 2. Verify signature and expiry; the response never says
		// which check failed
		claims, err := a.Signer.VerifyAccess(raw)
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				logger.Info("access token expired", map[string]any{
					"path": r.URL.Path,
				})
			}
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Attach claims to context
		ctx := context.WithValue(r.Context(), claimsKey, claims)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
