package http

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	accountcontracts "github.com/light-bringer/grocery-service/internal/app/account/contracts"
	accountdomain "github.com/light-bringer/grocery-service/internal/app/account/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
	"github.com/light-bringer/grocery-service/internal/pkg/clock"
)

// sessionCookie is the cookie carrying the session token. Tokens are also
// accepted as a bearer Authorization header for non-browser clients.
const sessionCookie = "session_token"

type principalKey struct{}

// principalFrom returns the authenticated principal, or the zero Principal
// for anonymous requests. Handlers pass it to use cases, which decide what
// the caller may do.
func principalFrom(ctx context.Context) auth.Principal {
	p, _ := ctx.Value(principalKey{}).(auth.Principal)
	return p
}

// Authenticator resolves session tokens to principals.
type Authenticator struct {
	sessions accountcontracts.SessionRepository
	users    accountcontracts.UserRepository
	clock    clock.Clock
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(
	sessions accountcontracts.SessionRepository,
	users accountcontracts.UserRepository,
	clk clock.Clock,
) *Authenticator {
	return &Authenticator{
		sessions: sessions,
		users:    users,
		clock:    clk,
	}
}

// Middleware resolves the request's session token, if any, and attaches
// the principal to the context. Requests without a valid session continue
// anonymously; authorization is the use cases' job.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := a.resolve(r.Context(), token)
		if err != nil {
			// Bad or expired tokens behave like no token at all
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey{}, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolve looks up the session and its user.
func (a *Authenticator) resolve(ctx context.Context, token string) (auth.Principal, error) {
	session, err := a.sessions.Get(ctx, token)
	if err != nil {
		return auth.Principal{}, err
	}
	if a.clock.Now().After(session.ExpiresAt) {
		return auth.Principal{}, accountdomain.ErrSessionNotFound
	}

	user, err := a.users.GetByID(ctx, session.UserID)
	if err != nil {
		return auth.Principal{}, err
	}

	return auth.Principal{
		UserID: user.ID(),
		Role:   user.Role(),
	}, nil
}

// sessionToken extracts the token from the cookie or Authorization header.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// withLogging logs each request with method, path, status and duration.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Printf("http: %s %s -> %d (%s)", r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
