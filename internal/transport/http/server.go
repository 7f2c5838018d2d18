// Package http exposes the storefront as a JSON API.
package http

import (
	"net/http"
	"time"
)

// NewRouter wires all handlers into a ServeMux with method-aware patterns.
// The authenticator wraps every route so handlers always see a resolved
// (possibly anonymous) principal.
func NewRouter(
	authn *Authenticator,
	catalog *CatalogHandler,
	orders *OrderHandler,
	accounts *AccountHandler,
	authh *AuthHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /api/products", catalog.List)
	mux.HandleFunc("GET /api/products/{id}", catalog.Get)
	mux.HandleFunc("POST /api/products", catalog.Create)
	mux.HandleFunc("PUT /api/products/{id}", catalog.Update)
	mux.HandleFunc("DELETE /api/products/{id}", catalog.Delete)

	// Orders
	mux.HandleFunc("POST /api/orders", orders.Place)
	mux.HandleFunc("GET /api/orders", orders.List)
	mux.HandleFunc("GET /api/orders/{id}", orders.Get)

	// Accounts
	mux.HandleFunc("GET /api/users/me", accounts.Me)
	mux.HandleFunc("PUT /api/users/me", accounts.UpdateMe)
	mux.HandleFunc("GET /api/admin/users", accounts.ListUsers)

	// Auth
	mux.HandleFunc("POST /api/auth/register", authh.Register)
	mux.HandleFunc("POST /api/auth/login", authh.Login)
	mux.HandleFunc("POST /api/auth/logout", authh.Logout)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return withLogging(authn.Middleware(mux))
}

// NewServer creates an http.Server with sane timeouts.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
