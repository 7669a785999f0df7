package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	mwauth "github.com/Skotchmaster/storefront/internal/middleware/auth"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/pkg/db"
	"github.com/Skotchmaster/storefront/pkg/logging"
)

type Deps struct {
	DB *gorm.DB

	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	ReviewHandler  *ReviewHTTP
	AdminHandler   *AdminHTTP

	AuthMW *mwauth.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context(), d.DB); err != nil {
			logging.FromContext(c.Request().Context()).With("handler", "health.ready").
				Error("not_ready", "status", http.StatusServiceUnavailable, "error", err)
			return c.JSON(http.StatusServiceUnavailable, transport.MessageResponse{Message: "database unavailable"})
		}
		return c.NoContent(http.StatusOK)
	})

	requireAuth := d.AuthMW.RequireAuth()
	optionalAuth := d.AuthMW.OptionalAuth()

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/refresh", d.AuthHandler.Refresh)
	auth.POST("/logout", d.AuthHandler.Logout, requireAuth)
	auth.GET("/me", d.AuthHandler.Me, requireAuth)

	products := api.Group("/products")
	products.GET("", d.CatalogHandler.ListProducts)
	products.GET("/categories", d.CatalogHandler.Categories)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	reviews := api.Group("/reviews")
	reviews.GET("/product/:productId", d.ReviewHandler.ListForProduct, optionalAuth)
	reviews.POST("", d.ReviewHandler.Create, requireAuth)
	reviews.PUT("/:id", d.ReviewHandler.Update, requireAuth)
	reviews.DELETE("/:id", d.ReviewHandler.Delete, requireAuth)

	cart := api.Group("/cart", requireAuth)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PUT("/:itemId", d.CartHandler.UpdateItem)
	cart.DELETE("/:itemId", d.CartHandler.RemoveItem)
	cart.DELETE("", d.CartHandler.ClearCart)

	orders := api.Group("/orders", requireAuth)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.PlaceOrder)

	admin := api.Group("/admin", requireAuth, mwauth.RequireAdmin())
	admin.GET("/reviews", d.AdminHandler.Reviews)
	admin.GET("/users", d.AdminHandler.Users)
	admin.DELETE("/reviews/:id", d.AdminHandler.DeleteReview)
	admin.DELETE("/users/:id", d.AdminHandler.DeleteUser)
}
