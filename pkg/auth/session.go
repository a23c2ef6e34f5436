package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const AdminRole = "ADMIN"

// Session is the authentication state rebuilt from the access token on
// every request. The token is decoded for display purposes only and is
// never verified here; the backend re-checks authorization on each call.
type Session struct {
	Authenticated bool
	Username      string
	Roles         []string
	AccessToken   string
}

// FromToken decodes the token's claims without verifying the signature
// or expiry and builds an authenticated session from them.
func FromToken(token string) (*Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode access token: %w", err)
	}

	username, _ := claims["sub"].(string)

	return &Session{
		Authenticated: true,
		Username:      username,
		Roles:         NormalizeScope(claims["scope"]),
		AccessToken:   token,
	}, nil
}

// NormalizeScope turns the scope claim into a role list. The backend
// emits either a space-delimited string or an array of strings; any
// other shape yields no roles.
func NormalizeScope(scope interface{}) []string {
	switch v := scope.(type) {
	case string:
		roles := []string{}
		for _, role := range strings.Split(v, " ") {
			if role != "" {
				roles = append(roles, role)
			}
		}
		return roles
	case []string:
		return v
	case []interface{}:
		roles := []string{}
		for _, item := range v {
			if role, ok := item.(string); ok {
				roles = append(roles, role)
			}
		}
		return roles
	}
	return []string{}
}

func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s *Session) IsAdmin() bool {
	return s.HasRole(AdminRole)
}

// Token lets the session act as the bank client's token source.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.AccessToken
}
