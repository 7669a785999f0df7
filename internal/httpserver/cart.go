package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "get_cart_error", err)
	}

	lines, err := h.Svc.Get(ctx, id.UserID)
	if err != nil {
		return writeError(c, l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, lines)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "add_to_cart_error", err)
	}

	var req transport.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, l, "add_to_cart_error", err)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, l, "add_to_cart_error", err)
	}

	lines, err := h.Svc.AddItem(ctx, id.UserID, req.ProductID, req.Qty())
	if err != nil {
		return writeError(c, l, "add_to_cart_error", err)
	}

	l.Info("item_added", "status", http.StatusOK, "product_id", req.ProductID, "quantity", req.Qty())
	return c.JSON(http.StatusOK, lines)
}

func (h *CartHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "update_cart_error", err)
	}
	itemID, err := util.ParseID(c.Param("itemId"), "cart item")
	if err != nil {
		return writeError(c, l, "update_cart_error", err)
	}

	var req transport.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c, l, "update_cart_error", err)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, l, "update_cart_error", err)
	}

	lines, err := h.Svc.SetQuantity(ctx, id.UserID, itemID, *req.Quantity)
	if err != nil {
		return writeError(c, l, "update_cart_error", err)
	}
	return c.JSON(http.StatusOK, lines)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "remove_cart_item_error", err)
	}
	itemID, err := util.ParseID(c.Param("itemId"), "cart item")
	if err != nil {
		return writeError(c, l, "remove_cart_item_error", err)
	}

	lines, err := h.Svc.RemoveItem(ctx, id.UserID, itemID)
	if err != nil {
		return writeError(c, l, "remove_cart_item_error", err)
	}
	return c.JSON(http.StatusOK, lines)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "clear_cart_error", err)
	}

	lines, err := h.Svc.Clear(ctx, id.UserID)
	if err != nil {
		return writeError(c, l, "clear_cart_error", err)
	}
	return c.JSON(http.StatusOK, lines)
}
