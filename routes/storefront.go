package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/verdano-shop/storefront-api/controllers/cart"
	productControllers "github.com/verdano-shop/storefront-api/controllers/product"
	userControllers "github.com/verdano-shop/storefront-api/controllers/user"
	"github.com/verdano-shop/storefront-api/middleware"
)

// SetupStorefrontRoutes registers catalog browsing and the cookie-scoped
// cart. Browsing and cart mutations need no login; the profile does.
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productControllers.GetProducts(deps.DB))
	r.GET("/products/:id", productControllers.GetProductByID(deps.DB))
	r.GET("/categories", productControllers.GetAllCategories(deps.DB))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))
		cartGroup.POST("/items", cartControllers.AddItem(deps.DB, deps.Carts))
		cartGroup.PUT("/items/:id/quantity", cartControllers.UpdateQuantity(deps.Carts))
		cartGroup.PUT("/items/:id/package", cartControllers.UpdatePackage(deps.Carts))
		cartGroup.DELETE("/items/:id", cartControllers.RemoveItem(deps.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
	}

	// ──────────────── User Profile ────────────────
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateSession)
	{
		userGroup.GET("", userControllers.GetUser(deps.DB))
		userGroup.PUT("", userControllers.UpdateUser(deps.DB))
	}
}
