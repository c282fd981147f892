package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/verdano-shop/storefront-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(deps.DB))
		authGroup.POST("/login", auth.Login(deps.DB))
		authGroup.POST("/google", auth.GoogleLogin(deps.DB))
		authGroup.POST("/logout", auth.Logout())
	}
}
