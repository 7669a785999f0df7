package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, l, "register_error", err)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, l, "register_error", err)
	}

	res, err := h.Svc.Register(ctx, req)
	if err != nil {
		return writeError(c, l, "register_error", err)
	}

	return c.JSON(http.StatusCreated, transport.AuthResponse{
		User:         res.User,
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, l, "login_error", err)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, l, "login_error", err)
	}

	res, err := h.Svc.Login(ctx, req)
	if err != nil {
		return writeError(c, l, "login_error", err)
	}

	l.Info("login_success", "status", http.StatusOK, "user_id", res.User.ID)
	return c.JSON(http.StatusOK, transport.AuthResponse{
		User:         res.User,
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	})
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.refresh")

	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, l, "refresh_error", err)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, l, "refresh_error", err)
	}

	access, err := h.Svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return writeError(c, l, "refresh_error", err)
	}
	return c.JSON(http.StatusOK, transport.RefreshResponse{AccessToken: access})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	var req transport.LogoutRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, l, "logout_error", err)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, l, "logout_error", err)
	}

	if err := h.Svc.Logout(ctx, req.RefreshToken); err != nil {
		return writeError(c, l, "logout_error", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.me")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "me_error", err)
	}

	user, err := h.Svc.Me(ctx, id)
	if err != nil {
		return writeError(c, l, "me_error", err)
	}
	return c.JSON(http.StatusOK, user)
}
