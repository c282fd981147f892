package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/verdano-shop/storefront-api/controllers/order"
	productControllers "github.com/verdano-shop/storefront-api/controllers/product"
	uploadController "github.com/verdano-shop/storefront-api/controllers/upload"
	userControllers "github.com/verdano-shop/storefront-api/controllers/user"
	"github.com/verdano-shop/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an
// authenticated session with the ADMIN role.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateSession, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.DB))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.DB, deps.Bucket))
			productAdmin.POST("/reorder", productControllers.ReorderProducts(deps.DB))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(deps.DB))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(deps.DB))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(deps.DB))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetOrders(deps.DB))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(deps.DB, deps.Hub))
			orderAdmin.GET("/export", orderControllers.ExportOrdersToExcel(deps.DB))
			orderAdmin.GET("/ws", deps.Hub.OrderFeed())
		}

		// ─────────── Reporting ───────────
		adminGroup.GET("/stats/monthly-orders", orderControllers.GetMonthlyOrderStats(deps.DB))

		// ─────────── Uploads ───────────
		adminGroup.POST("/upload", uploadController.UploadImage(deps.Bucket))
		adminGroup.DELETE("/upload", uploadController.DeleteImage(deps.Bucket))

		// ─────────── Users ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB))
	}
}
