package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/security"
)

func TestAuthMiddleware(t *testing.T) {
	manager := security.NewTokenManager("test-secret", 15)
	middleware := NewAuthMiddleware(manager)

	var seen *security.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("ValidToken", func(t *testing.T) {
		seen = nil
		token, err := manager.Generate(&domain.User{ID: 9, Email: "op@banksampah.local", Role: domain.RoleOperator, UnitNumber: "005"})
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/units", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		middleware.Handler(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "9", seen.Subject)
		assert.Equal(t, "005", seen.UnitNumber)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		seen = nil
		r := httptest.NewRequest(http.MethodGet, "/api/v1/units", nil)
		w := httptest.NewRecorder()

		middleware.Handler(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, seen)
	})

	t.Run("BadToken", func(t *testing.T) {
		seen = nil
		r := httptest.NewRequest(http.MethodGet, "/api/v1/units", nil)
		r.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		middleware.Handler(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, seen)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	t.Run("AdminPasses", func(t *testing.T) {
		r := requestWithIdentity(http.MethodDelete, "/api/v1/units/001", nil, adminIdentity())
		w := httptest.NewRecorder()

		RequireAdmin(next)(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("OperatorRejected", func(t *testing.T) {
		operator := &security.Identity{Subject: "2", Role: domain.RoleOperator}
		r := requestWithIdentity(http.MethodDelete, "/api/v1/units/001", nil, operator)
		w := httptest.NewRecorder()

		RequireAdmin(next)(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("NoIdentity", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/units/001", nil)
		w := httptest.NewRecorder()

		RequireAdmin(next)(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCheckUnitScope(t *testing.T) {
	base := httptest.NewRequest(http.MethodPost, "/api/v1/deposits", nil)

	withIdentity := func(identity *security.Identity) *http.Request {
		return base.WithContext(context.WithValue(base.Context(), identityKey, identity))
	}

	assert.True(t, checkUnitScope(withIdentity(adminIdentity()), "001"))
	assert.True(t, checkUnitScope(withIdentity(&security.Identity{Role: domain.RoleOperator}), "001"))
	assert.True(t, checkUnitScope(withIdentity(&security.Identity{Role: domain.RoleOperator, UnitNumber: "001"}), "001"))
	assert.False(t, checkUnitScope(withIdentity(&security.Identity{Role: domain.RoleOperator, UnitNumber: "007"}), "001"))
	assert.False(t, checkUnitScope(base, "001"))
}
