package auth

import (
	"log"
	"net/http"
)

// RequireAuthentication rebuilds the session from the token cookie and
// stores it in the request context. Requests without a working token are
// sent to the login page. This is a UX gate, not a security boundary:
// the backend enforces authorization on every call it receives.
func RequireAuthentication(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			log.Printf("⚠️ Unauthenticated request to %s, redirecting to login", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		session, err := FromToken(token)
		if err != nil {
			// Malformed token left over in the cookie: drop it and start over
			log.Printf("❌ Could not decode stored token: %v", err)
			ClearTokenCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next(w, r.WithContext(ContextWithSession(r.Context(), session)))
	}
}

// RequireAdmin only allows sessions carrying the ADMIN role. Must run
// after RequireAuthentication.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		if session == nil || !session.IsAdmin() {
			log.Printf("⚠️ Request to %s lacks the ADMIN role, redirecting", r.URL.Path)
			http.Redirect(w, r, "/admin/notAuthorized", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
