package auth

import (
	"net/http"
	"slices"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

// ContextKey is where the authenticated domain.Identity is stored on the echo context.
const ContextKey = "identity"

type Verifier interface {
	VerifyAccess(raw string) (domain.Identity, error)
}

type Middleware struct {
	Verifier Verifier
}

func New(v Verifier) *Middleware {
	return &Middleware{Verifier: v}
}

func (m *Middleware) config() echojwt.Config {
	return echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return m.Verifier.VerifyAccess(raw)
		},
	}
}

// RequireAuth rejects requests without a valid bearer access token with 401.
func (m *Middleware) RequireAuth() echo.MiddlewareFunc {
	cfg := m.config()
	cfg.ErrorHandler = func(c echo.Context, err error) error {
		msg := "Invalid or expired token"
		if !hasBearer(c) {
			msg = "Access token required"
		}
		logging.FromContext(c.Request().Context()).With("mw", "auth").
			Warn("auth_rejected", "status", http.StatusUnauthorized, "reason", msg)
		return echo.NewHTTPError(http.StatusUnauthorized, msg)
	}
	return echojwt.WithConfig(cfg)
}

// OptionalAuth sets the identity when a valid token is present and lets every request through.
func (m *Middleware) OptionalAuth() echo.MiddlewareFunc {
	cfg := m.config()
	cfg.ContinueOnIgnoredError = true
	cfg.ErrorHandler = func(c echo.Context, err error) error { return nil }
	return echojwt.WithConfig(cfg)
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
			}
			if !slices.Contains(roles, id.Role) {
				logging.FromContext(c.Request().Context()).With("mw", "auth").
					Warn("role_rejected", "status", http.StatusForbidden, "user_id", id.UserID, "role", id.Role)
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(domain.RoleAdmin)
}

func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(ContextKey).(domain.Identity)
	return id, ok
}

func hasBearer(c echo.Context) bool {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "bearer "
	return len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) && strings.TrimSpace(h[len(prefix):]) != ""
}
