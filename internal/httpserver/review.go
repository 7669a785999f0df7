package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) ListForProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.list")

	productID, err := util.ParseID(c.Param("productId"), "product")
	if err != nil {
		return writeError(c, l, "list_reviews_error", err)
	}

	reviews, err := h.Svc.ListForProduct(ctx, productID)
	if err != nil {
		return writeError(c, l, "list_reviews_error", err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "create_review_error", err)
	}

	var req transport.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, l, "create_review_error", err)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, l, "create_review_error", err)
	}

	review, err := h.Svc.Create(ctx, id, req)
	if err != nil {
		return writeError(c, l, "create_review_error", err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.update")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "update_review_error", err)
	}
	reviewID, err := util.ParseID(c.Param("id"), "review")
	if err != nil {
		return writeError(c, l, "update_review_error", err)
	}

	var req transport.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, l, "update_review_error", err)
	}

	// Svc.Update checks ownership before it validates the body.
	review, err := h.Svc.Update(ctx, id, reviewID, req)
	if err != nil {
		return writeError(c, l, "update_review_error", err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *ReviewHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.delete")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "delete_review_error", err)
	}
	reviewID, err := util.ParseID(c.Param("id"), "review")
	if err != nil {
		return writeError(c, l, "delete_review_error", err)
	}

	if err := h.Svc.Delete(ctx, id, reviewID); err != nil {
		return writeError(c, l, "delete_review_error", err)
	}
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Review deleted successfully"})
}
