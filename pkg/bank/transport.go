package bank

import (
	"net/http"
	"strings"
)

const loginPath = "/auth/login"

// authTransport attaches the bearer token to every outgoing request
// except the login call itself. The token is read fresh from the
// session at request time.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if strings.Contains(req.URL.Path, loginPath) {
		return t.base.RoundTrip(req)
	}

	token := ""
	if t.tokens != nil {
		token = t.tokens.Token()
	}

	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(cloned)
}
