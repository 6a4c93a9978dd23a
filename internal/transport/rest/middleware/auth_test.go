package middleware

import (
	"greenmind/internal/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAdminPutsUsernameInContext(t *testing.T) {
	auth := service.NewAuthService("operator", "pw", "secret")
	login, err := auth.Login("operator", "pw")
	require.NoError(t, err)

	var got string
	h := NewAuthMiddleware(auth).RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUsername(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/scenarios/x/simulate", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "operator", got)

	got = ""
	req = httptest.NewRequest(http.MethodPost, "/v1/scenarios/x/simulate", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, got)
}

func TestGetUsernameWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetUsername(req.Context()))
}
