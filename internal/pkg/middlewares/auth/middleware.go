package auth

import (
	"context"
	"net/http"
	"strings"

	"delivery/internal/entities"
)

type ctxKey struct{}

type Verifier interface {
	Verify(token string) (*entities.Identity, error)
}

// Middleware authenticates the request by its bearer token and puts the
// resulting identity into the request context. Requests without a valid
// token are rejected before the handler runs.
func Middleware(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the authenticated caller stored by Middleware.
func IdentityFrom(ctx context.Context) (*entities.Identity, bool) {
	identity, ok := ctx.Value(ctxKey{}).(*entities.Identity)
	return identity, ok
}

// WithIdentity is a test helper to seed a request context.
func WithIdentity(ctx context.Context, identity *entities.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, identity)
}
