package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/cart"
	orderControllers "github.com/verdano-shop/storefront-api/controllers/order"
	"github.com/verdano-shop/storefront-api/storage"
)

// Deps carries the shared collaborators handlers close over.
type Deps struct {
	DB     *gorm.DB
	Carts  cart.Store
	Bucket storage.Bucket
	Hub    *orderControllers.Hub
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Storefront routes (cart cookie, no login required to browse)
	SetupStorefrontRoutes(r, deps)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, deps)

	// Admin routes (JWT + ADMIN role)
	SetupAdminRoutes(r, deps)
}
