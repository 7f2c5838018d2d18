package http

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"cloud.google.com/go/spanner"

	accountdomain "github.com/light-bringer/grocery-service/internal/app/account/domain"
	catalogdomain "github.com/light-bringer/grocery-service/internal/app/catalog/domain"
	orderdomain "github.com/light-bringer/grocery-service/internal/app/order/domain"
	"github.com/light-bringer/grocery-service/internal/pkg/auth"
)

// errBadRequest wraps transport-level validation failures (malformed JSON,
// unparseable prices) so they map to 400 instead of 500.
var errBadRequest = errors.New("bad request")

// mapError converts domain and infrastructure errors to HTTP status codes.
// Error messages surface to clients; anything unrecognized collapses to a
// generic 500 so internals don't leak.
func mapError(err error) (int, string) {
	switch {
	// 401
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, accountdomain.ErrWrongPassword):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, accountdomain.ErrSessionNotFound):
		return http.StatusUnauthorized, "invalid or expired session"

	// 403
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden, "admin access required"

	// 404
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound),
		errors.Is(err, accountdomain.ErrUserNotFound):
		return http.StatusNotFound, err.Error()

	// 409
	case errors.Is(err, orderdomain.ErrInsufficientStock):
		return http.StatusConflict, err.Error()
	case errors.Is(err, accountdomain.ErrEmailTaken):
		return http.StatusConflict, err.Error()

	// 400
	case errors.Is(err, errBadRequest),
		errors.Is(err, catalogdomain.ErrEmptyName),
		errors.Is(err, catalogdomain.ErrInvalidPrice),
		errors.Is(err, catalogdomain.ErrInvalidStock),
		errors.Is(err, orderdomain.ErrEmptyOrder),
		errors.Is(err, orderdomain.ErrInvalidQuantity),
		errors.Is(err, accountdomain.ErrEmptyName),
		errors.Is(err, accountdomain.ErrInvalidEmail),
		errors.Is(err, accountdomain.ErrEmptyPassword),
		errors.Is(err, accountdomain.ErrCurrentPasswordInvalid):
		return http.StatusBadRequest, err.Error()

	// 504
	case errors.Is(err, context.DeadlineExceeded),
		spanner.ErrCode(err) == codes.DeadlineExceeded:
		return http.StatusGatewayTimeout, "request timed out"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
