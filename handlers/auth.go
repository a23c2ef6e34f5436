package handlers

import (
	"log"
	"net/http"

	"banking-console/pkg/auth"
	"banking-console/pkg/bank"
	"banking-console/pkg/views"
)

// Home mirrors the restore-on-startup behavior: a stored token lands on
// the dashboard, anything else lands on the login page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if token := auth.TokenFromRequest(r); token != "" {
		if _, err := auth.FromToken(token); err == nil {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
		// Malformed leftover token: drop it rather than looping forever
		auth.ClearTokenCookie(w)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if token := auth.TokenFromRequest(r); token != "" {
		if _, err := auth.FromToken(token); err == nil {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
		auth.ClearTokenCookie(w)
	}
	h.renderer.Render(w, "login", views.LoginPage{})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		h.renderer.Render(w, "login", views.LoginPage{
			Error: "Please enter a username and password.",
		})
		return
	}

	// The login call carries no bearer token, so no session is attached
	client := bank.NewClient(h.cfg.Backend.Host, nil)
	tokenResponse, err := client.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		log.Printf("❌ Login failed for user %q: %v", form.Username, err)
		h.renderer.Render(w, "login", views.LoginPage{
			Error: "Login failed. Please check your credentials and try again.",
		})
		return
	}

	session, err := auth.FromToken(tokenResponse.AccessToken)
	if err != nil {
		log.Printf("❌ Backend issued an undecodable token: %v", err)
		h.renderer.Render(w, "login", views.LoginPage{
			Error: "Login failed. Please try again.",
		})
		return
	}

	auth.SetTokenCookie(w, session.AccessToken)
	log.Printf("✅ User %q logged in with roles %v", session.Username, session.Roles)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) ChangePasswordForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "change-password", views.ChangePasswordPage{
		Page: h.page(r, "Change Password"),
	})
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	form := changePasswordForm{
		OldPassword:        r.FormValue("oldPassword"),
		NewPassword:        r.FormValue("newPassword"),
		ConfirmNewPassword: r.FormValue("confirmNewPassword"),
	}
	if err := validate.Struct(form); err != nil {
		// Local validation failure: no backend call is made
		h.renderer.Render(w, "change-password", views.ChangePasswordPage{
			Page:        h.page(r, "Change Password"),
			FieldErrors: fieldErrors(err),
		})
		return
	}

	confirmation, err := h.bankClient(r).ChangePassword(r.Context(), form.OldPassword, form.NewPassword)
	if err != nil {
		if h.logoutOn401(w, r, err) {
			return
		}
		page := h.page(r, "Change Password")
		page.Error = errorMessage(err)
		h.renderer.Render(w, "change-password", views.ChangePasswordPage{Page: page})
		return
	}

	page := h.page(r, "Change Password")
	page.Success = confirmation
	if page.Success == "" {
		page.Success = "Password changed successfully."
	}
	h.renderer.Render(w, "change-password", views.ChangePasswordPage{Page: page})
}

// Profile shows the identity decoded from the token. Display only; the
// backend remains the enforcement point.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "profile", h.page(r, "User Profile"))
}

func (h *Handler) NotAuthorized(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, "not-authorized", h.page(r, "Not Authorized"))
}
