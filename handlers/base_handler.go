package handlers

import (
	"errors"
	"net/http"

	"banking-console/config"
	"banking-console/pkg/auth"
	"banking-console/pkg/bank"
	"banking-console/pkg/template"
	"banking-console/pkg/views"
)

type Handler struct {
	cfg      *config.Config
	renderer *template.Renderer
}

func New(cfg *config.Config, renderer *template.Renderer) *Handler {
	return &Handler{
		cfg:      cfg,
		renderer: renderer,
	}
}

// bankClient builds a backend client bound to the request's session.
// A 401 from any call scrubs the in-memory session before the error
// reaches the page handler.
func (h *Handler) bankClient(r *http.Request) *bank.Client {
	session := auth.SessionFromContext(r.Context())
	client := bank.NewClient(h.cfg.Backend.Host, session)
	client.OnUnauthorized(func() {
		if session != nil {
			*session = auth.Session{}
		}
	})
	return client
}

// logoutOn401 handles the global 401 policy: clear the stored token and
// send the user back to the login page, regardless of which page made
// the call. Returns true when the error was consumed.
func (h *Handler) logoutOn401(w http.ResponseWriter, r *http.Request, err error) bool {
	if !errors.Is(err, bank.ErrUnauthorized) {
		return false
	}
	auth.ClearTokenCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

func (h *Handler) page(r *http.Request, title string) views.Page {
	return views.Page{
		Title:   title,
		Session: views.ToSessionView(auth.SessionFromContext(r.Context())),
		Error:   r.URL.Query().Get("error"),
		Success: r.URL.Query().Get("success"),
	}
}

// errorMessage extracts a displayable message from a failed backend
// call, falling back to a generic string.
func errorMessage(err error) string {
	var apiErr *bank.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}
