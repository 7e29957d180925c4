package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/daraghmehsaleh9-dot/Saleh/auth"
	"github.com/daraghmehsaleh9-dot/Saleh/middleware"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/anonymous", auth.AnonymousHandler(d.DB, d.Auth)) // POST /auth/anonymous
		authGroup.POST("/signup", auth.SignupHandler(d.DB, d.Auth))       // POST /auth/signup
		authGroup.POST("/login", auth.LoginHandler(d.DB, d.Auth))         // POST /auth/login

		authGroup.POST("/logout", middleware.ValidateToken, auth.LogoutHandler(d.Auth)) // POST /auth/logout
	}
}
