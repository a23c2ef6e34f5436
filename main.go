package main

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"banking-console/config"
	"banking-console/handlers"
	"banking-console/pkg/auth"
	"banking-console/pkg/template"
)

// requestLogger tags every request with a short id so one page load can
// be followed through the log.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("📥 [%s] %s %s (%s)", id, r.Method, r.URL.Path, time.Since(start))
	})
}

func main() {
	log.Printf("🚀 Starting console initialization...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	// Initialize templates first
	template.InitTemplates()

	log.Printf("⚙️ Setting up rate limiters...")
	limiter := handlers.NewRateLimiter(cfg.Limits)

	h := handlers.New(cfg, template.NewRenderer())

	log.Printf("🛣️ Setting up routes...")
	mux := http.NewServeMux()

	// Middleware chains: every /admin page needs a session; customer and
	// account mutations additionally need the ADMIN role.
	authed := func(fn http.HandlerFunc) http.HandlerFunc {
		return auth.RequireAuthentication(limiter.ViewLimit.RateLimit(fn))
	}
	admin := func(fn http.HandlerFunc) http.HandlerFunc {
		return authed(auth.RequireAdmin(fn))
	}

	// Auth routes
	log.Printf("🔐 Setting up auth routes...")
	mux.HandleFunc("GET /login", limiter.ViewLimit.RateLimit(h.LoginForm))
	mux.HandleFunc("POST /login", limiter.LoginLimit.RateLimit(h.Login))
	mux.HandleFunc("GET /logout", h.Logout)
	mux.HandleFunc("GET /", h.Home)

	// Protected routes
	log.Printf("🔒 Setting up protected routes...")
	mux.HandleFunc("GET /admin/dashboard", authed(h.Dashboard))
	mux.HandleFunc("GET /admin/customers", authed(h.Customers))
	mux.HandleFunc("POST /admin/customers/{id}/delete", admin(h.DeleteCustomer))
	mux.HandleFunc("GET /admin/new-customer", admin(h.NewCustomerForm))
	mux.HandleFunc("POST /admin/new-customer", admin(h.SaveCustomer))
	mux.HandleFunc("GET /admin/edit-customer/{id}", admin(h.EditCustomerForm))
	mux.HandleFunc("POST /admin/edit-customer/{id}", admin(h.UpdateCustomer))
	mux.HandleFunc("GET /admin/customer-accounts/{id}", authed(h.CustomerAccounts))
	mux.HandleFunc("POST /admin/customer-accounts/{id}/current", admin(h.CreateCurrentAccount))
	mux.HandleFunc("POST /admin/customer-accounts/{id}/saving", admin(h.CreateSavingAccount))
	mux.HandleFunc("POST /admin/customer-accounts/{id}/debit", admin(h.Debit))
	mux.HandleFunc("POST /admin/customer-accounts/{id}/credit", admin(h.Credit))
	mux.HandleFunc("POST /admin/customer-accounts/{id}/transfer", admin(h.Transfer))
	mux.HandleFunc("GET /admin/accounts/{id}/operations", authed(h.AccountOperations))
	mux.HandleFunc("GET /admin/change-password", authed(h.ChangePasswordForm))
	mux.HandleFunc("POST /admin/change-password", authed(h.ChangePassword))
	mux.HandleFunc("GET /admin/profile", authed(h.Profile))
	mux.HandleFunc("GET /admin/notAuthorized", authed(h.NotAuthorized))

	log.Printf("✅ Console initialization complete")
	log.Printf("🌐 Console starting on port %s (backend %s)", cfg.Server.Port, cfg.Backend.Host)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, requestLogger(mux)))
}
