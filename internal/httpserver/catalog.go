package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/util"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

const maxProductPage = 100

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list")

	var q transport.ProductListQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return invalidBody(c, l, "list_products_error", err)
	}

	offset, limit := util.Window(util.ParseIntDefault(q.Page, 1), util.ParseIntDefault(q.Limit, 0), maxProductPage)
	products, err := h.Svc.List(ctx, repo.ProductFilter{
		Category: q.Category,
		Search:   q.Search,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return writeError(c, l, "list_products_error", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHTTP) Categories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.categories")

	categories, err := h.Svc.Categories(ctx)
	if err != nil {
		return writeError(c, l, "categories_error", err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get")

	id, err := util.ParseID(c.Param("id"), "product")
	if err != nil {
		return writeError(c, l, "get_product_error", err)
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		return writeError(c, l, "get_product_error", err)
	}
	return c.JSON(http.StatusOK, product)
}
