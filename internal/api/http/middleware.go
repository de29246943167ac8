package http

import (
	"context"
	"net/http"
	"strings"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/security"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFrom returns the authenticated caller stored by the auth middleware.
func IdentityFrom(ctx context.Context) (*security.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*security.Identity)
	return identity, ok
}

// AuthMiddleware verifies the bearer token on every request and stores the
// resulting identity in the request context. Handlers pass identity.Subject
// into the ledger as the explicit actor.
type AuthMiddleware struct {
	verifier security.Verifier
}

func NewAuthMiddleware(verifier security.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}

		identity, err := m.verifier.Verify(r.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin wraps a handler that only admins may call.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok || identity.Role != domain.RoleAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin role required"})
			return
		}
		next(w, r)
	}
}

// checkUnitScope rejects operators acting outside their assigned unit. Admins
// and unscoped operators pass.
func checkUnitScope(r *http.Request, unitNumber string) bool {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		return false
	}
	if identity.Role == domain.RoleAdmin || identity.UnitNumber == "" {
		return true
	}
	return identity.UnitNumber == unitNumber
}
