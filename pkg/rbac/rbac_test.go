package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/kashvi-admin/pkg/auth"
	"github.com/shashiranjanraj/kashvi-admin/pkg/middleware"
)

func adminGate(t *testing.T) http.Handler {
	t.Helper()
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return middleware.Auth(HasRole("admin")(handler))
}

func doWithToken(t *testing.T, h http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAdminAllowed(t *testing.T) {
	token, err := auth.GenerateToken("user-1", "admin")
	require.NoError(t, err)

	rec := doWithToken(t, adminGate(t), token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNonAdminForbidden(t *testing.T) {
	token, err := auth.GenerateToken("user-2", "user")
	require.NoError(t, err)

	rec := doWithToken(t, adminGate(t), token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMissingToken(t *testing.T) {
	rec := doWithToken(t, adminGate(t), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGarbageToken(t *testing.T) {
	rec := doWithToken(t, adminGate(t), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
