package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/light-bringer/grocery-service/internal/app/account/usecases/login"
	"github.com/light-bringer/grocery-service/internal/app/account/usecases/logout"
	"github.com/light-bringer/grocery-service/internal/app/account/usecases/register_user"
)

// AuthHandler handles registration and session endpoints.
type AuthHandler struct {
	register *register_user.Interactor
	login    *login.Interactor
	logout   *logout.Interactor

	// secureCookies marks session cookies Secure; off for local dev
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	register *register_user.Interactor,
	loginUC *login.Interactor,
	logoutUC *logout.Interactor,
	secureCookies bool,
) *AuthHandler {
	return &AuthHandler{
		register:      register,
		login:         loginUC,
		logout:        logoutUC,
		secureCookies: secureCookies,
	}
}

// registerRequest is the JSON shape for registration.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	userID, err := h.register.Execute(r.Context(), &register_user.Request{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"user_id": userID})
}

// loginRequest is the JSON shape for login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. The session token rides in an
// HttpOnly cookie and is also returned in the body for API clients.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	resp, err := h.login.Execute(r.Context(), &login.Request{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": resp.Token,
		"user": map[string]string{
			"user_id": resp.UserID,
			"name":    resp.Name,
			"email":   resp.Email,
			"role":    resp.Role,
		},
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.logout.Execute(r.Context(), &logout.Request{
		Token: sessionToken(r),
	}); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
