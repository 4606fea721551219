package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/trixtech/trixtech/pkg/auth"
	"github.com/trixtech/trixtech/pkg/response"
)

// identityKey is the unexported context key for the authenticated identity.
type identityKey struct{}

// Auth verifies the Authorization: Bearer token and stores the decoded
// identity in the request context. Missing, malformed, and badly-signed
// tokens are all rejected with 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			response.Unauthorized(w)
			return
		}

		ident, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := WithIdentity(r.Context(), ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithIdentity stores ident in ctx.
func WithIdentity(ctx context.Context, ident auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// IdentityFromCtx extracts the authenticated identity from a request context.
func IdentityFromCtx(ctx context.Context) (auth.Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(auth.Identity)
	return ident, ok
}

// UserIDFromCtx returns the authenticated user's ID.
func UserIDFromCtx(r *http.Request) (uint, bool) {
	ident, ok := IdentityFromCtx(r.Context())
	return ident.ID, ok
}

// RoleFromCtx returns the authenticated user's role.
func RoleFromCtx(r *http.Request) (string, bool) {
	ident, ok := IdentityFromCtx(r.Context())
	return ident.Role, ok
}
