package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/domain"
	mwauth "github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError is the single place where service errors become HTTP responses.
func writeError(c echo.Context, l *slog.Logger, event string, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		l.Error(event, "status", status, "error", err)
		return c.JSON(status, transport.MessageResponse{Message: "Server error"})
	}

	msg := domain.Message(err)
	if msg == "" {
		msg = http.StatusText(status)
	}
	l.Warn(event, "status", status, "error", err)
	return c.JSON(status, transport.MessageResponse{Message: msg})
}

func invalidBody(c echo.Context, l *slog.Logger, event string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "error", err)
	return c.JSON(http.StatusBadRequest, transport.MessageResponse{Message: "Invalid request body"})
}

func identity(c echo.Context) (domain.Identity, error) {
	id, ok := mwauth.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.E(domain.ErrUnauthorized, "Access token required")
	}
	return id, nil
}
