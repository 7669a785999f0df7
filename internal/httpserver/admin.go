package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

// AdminHTTP handlers sit behind RequireAdmin.
type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) Reviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.reviews")

	reviews, err := h.Svc.Reviews(ctx)
	if err != nil {
		return writeError(c, l, "admin_reviews_error", err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *AdminHTTP) Users(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.users")

	users, err := h.Svc.Users(ctx)
	if err != nil {
		return writeError(c, l, "admin_users_error", err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHTTP) DeleteReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_review")

	reviewID, err := util.ParseID(c.Param("id"), "review")
	if err != nil {
		return writeError(c, l, "admin_delete_review_error", err)
	}
	if err := h.Svc.DeleteReview(ctx, reviewID); err != nil {
		return writeError(c, l, "admin_delete_review_error", err)
	}

	l.Info("review_deleted", "status", http.StatusOK, "review_id", reviewID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Review deleted successfully"})
}

func (h *AdminHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_user")

	actor, err := identity(c)
	if err != nil {
		return writeError(c, l, "admin_delete_user_error", err)
	}
	userID, err := util.ParseID(c.Param("id"), "user")
	if err != nil {
		return writeError(c, l, "admin_delete_user_error", err)
	}

	if err := h.Svc.DeleteUser(ctx, actor, userID); err != nil {
		return writeError(c, l, "admin_delete_user_error", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "User deleted successfully"})
}
