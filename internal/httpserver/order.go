package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/util"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "place_order_error", err)
	}

	order, err := h.Svc.PlaceOrder(ctx, id.UserID)
	if err != nil {
		return writeError(c, l, "place_order_error", err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "list_orders_error", err)
	}

	orders, err := h.Svc.List(ctx, id.UserID)
	if err != nil {
		return writeError(c, l, "list_orders_error", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := identity(c)
	if err != nil {
		return writeError(c, l, "get_order_error", err)
	}
	orderID, err := util.ParseID(c.Param("id"), "order")
	if err != nil {
		return writeError(c, l, "get_order_error", err)
	}

	order, err := h.Svc.Get(ctx, id.UserID, orderID)
	if err != nil {
		return writeError(c, l, "get_order_error", err)
	}
	return c.JSON(http.StatusOK, order)
}
