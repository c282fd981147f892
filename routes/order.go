package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/verdano-shop/storefront-api/controllers/order"
	"github.com/verdano-shop/storefront-api/middleware"
)

// SetupOrderRoutes registers the customer-facing order endpoints.
func SetupOrderRoutes(r *gin.Engine, deps Deps) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateSession)
	{
		orderGroup.POST("", orderControllers.PlaceOrder(deps.DB, deps.Carts, deps.Hub))
		orderGroup.GET("", orderControllers.GetUserOrders(deps.DB))
	}
}
