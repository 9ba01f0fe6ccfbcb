package auth

import (
	"context"
	"net/http"
	"strings"

	"todoapi/internal/http/respond"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// TokenVerifier is what RequireAuth needs from the token layer.
type TokenVerifier interface {
	Verify(token string) (*Claims, error)
}

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok && c != nil
}

func UserIDFromContext(ctx context.Context) (uint64, bool) {
	c, ok := ClaimsFromContext(ctx)
	if !ok {
		return 0, false
	}
	return c.UserID, true
}

// RequireAuth rejects requests without a valid bearer token. Claims are
// trusted for the token's lifetime; the user row is not re-read.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				respond.Fail(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				respond.Fail(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(h string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(h), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
