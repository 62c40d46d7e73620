package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venuebook/VB-BookingService/internal/domain"
	"github.com/venuebook/VB-BookingService/pkg/tokens"
)

func newManager() *tokens.Manager {
	return tokens.NewManager("test-secret", time.Hour)
}

func okHandler(captured *Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal, ok := GetPrincipal(r.Context()); ok && captured != nil {
			*captured = principal
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	manager := newManager()

	t.Run("valid token puts principal into context", func(t *testing.T) {
		token, err := manager.Issue("user-1", "customer")
		require.NoError(t, err)

		var principal Principal
		handler := Auth(manager)(okHandler(&principal))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", principal.ID)
		assert.Equal(t, domain.RoleCustomer, principal.Role)
	})

	t.Run("missing header", func(t *testing.T) {
		handler := Auth(manager)(okHandler(nil))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		handler := Auth(manager)(okHandler(nil))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		foreign := tokens.NewManager("other-secret", time.Hour)
		token, err := foreign.Issue("user-1", "customer")
		require.NoError(t, err)

		handler := Auth(manager)(okHandler(nil))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token with unknown role", func(t *testing.T) {
		token, err := manager.Issue("user-1", "admin")
		require.NoError(t, err)

		handler := Auth(manager)(okHandler(nil))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRoleGuards(t *testing.T) {
	manager := newManager()

	serve := func(t *testing.T, guard func(http.Handler) http.Handler, role string) *httptest.ResponseRecorder {
		t.Helper()
		token, err := manager.Issue("user-1", role)
		require.NoError(t, err)

		handler := Auth(manager)(guard(okHandler(nil)))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/owner", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("owner passes OwnerOnly", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(t, OwnerOnly, "owner").Code)
	})

	t.Run("customer is rejected by OwnerOnly", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve(t, OwnerOnly, "customer").Code)
	})

	t.Run("customer passes CustomerOnly", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serve(t, CustomerOnly, "customer").Code)
	})

	t.Run("owner is rejected by CustomerOnly", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve(t, CustomerOnly, "owner").Code)
	})

	t.Run("guard without auth middleware is unauthorized", func(t *testing.T) {
		handler := OwnerOnly(okHandler(nil))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/owner", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
