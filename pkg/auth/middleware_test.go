package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuthentication_NoToken(t *testing.T) {
	called := false
	handler := RequireAuthentication(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthentication_MalformedToken(t *testing.T) {
	called := false
	handler := RequireAuthentication(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: "garbage"})
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// The broken token must not survive the redirect
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookie, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestRequireAuthentication_ValidToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "admin", "scope": "ADMIN"})

	var got *Session
	handler := RequireAuthentication(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)
	assert.True(t, got.Authenticated)
}

func TestRequireAdmin_DeniesWithoutRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
	}{
		{name: "no roles", roles: nil},
		{name: "user only", roles: []string{"USER"}},
		{name: "unrelated roles", roles: []string{"AUDITOR", "VIEWER"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			session := &Session{Authenticated: true, Username: "user1", Roles: tt.roles}
			req := httptest.NewRequest(http.MethodGet, "/admin/new-customer", nil)
			req = req.WithContext(ContextWithSession(req.Context(), session))
			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/admin/notAuthorized", rec.Header().Get("Location"))
		})
	}
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	called := false
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	session := &Session{Authenticated: true, Username: "admin", Roles: []string{"ADMIN", "USER"}}
	req := httptest.NewRequest(http.MethodGet, "/admin/new-customer", nil)
	req = req.WithContext(ContextWithSession(req.Context(), session))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.True(t, called)
}

func TestTokenCookieRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetTokenCookie(rec, "some-token")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	assert.Equal(t, "some-token", TokenFromRequest(req))

	rec = httptest.NewRecorder()
	ClearTokenCookie(rec)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookie, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
