package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestNormalizeScope(t *testing.T) {
	tests := []struct {
		name  string
		scope interface{}
		want  []string
	}{
		{
			name:  "space delimited string",
			scope: "ADMIN USER",
			want:  []string{"ADMIN", "USER"},
		},
		{
			name:  "string with extra spaces",
			scope: " ADMIN  USER ",
			want:  []string{"ADMIN", "USER"},
		},
		{
			name:  "array stays unchanged",
			scope: []interface{}{"ADMIN"},
			want:  []string{"ADMIN"},
		},
		{
			name:  "string slice stays unchanged",
			scope: []string{"ADMIN", "USER"},
			want:  []string{"ADMIN", "USER"},
		},
		{
			name:  "missing scope",
			scope: nil,
			want:  []string{},
		},
		{
			name:  "non-string non-array scope",
			scope: 42,
			want:  []string{},
		},
		{
			name:  "array with non-string entries",
			scope: []interface{}{"ADMIN", 7},
			want:  []string{"ADMIN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeScope(tt.scope))
		})
	}
}

func TestFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":   "admin",
		"scope": "ADMIN USER",
	})

	session, err := FromToken(token)
	require.NoError(t, err)

	assert.True(t, session.Authenticated)
	assert.Equal(t, "admin", session.Username)
	assert.Equal(t, []string{"ADMIN", "USER"}, session.Roles)
	assert.Equal(t, token, session.AccessToken)
	assert.True(t, session.IsAdmin())
}

func TestFromToken_ScopeArray(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":   "user1",
		"scope": []string{"USER"},
	})

	session, err := FromToken(token)
	require.NoError(t, err)

	assert.Equal(t, []string{"USER"}, session.Roles)
	assert.False(t, session.IsAdmin())
}

func TestFromToken_Malformed(t *testing.T) {
	_, err := FromToken("not-a-token")
	assert.Error(t, err)

	_, err = FromToken("")
	assert.Error(t, err)
}

func TestSession_NilSafety(t *testing.T) {
	var session *Session
	assert.False(t, session.HasRole(AdminRole))
	assert.False(t, session.IsAdmin())
	assert.Equal(t, "", session.Token())
}
