package routes

import (
	"time"

	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up account and profile routes.
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, jwtSecret string, uploadTimeout time.Duration) {
	users := r.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
	}

	profile := r.Group("/users")
	profile.Use(middleware.AuthRequired(jwtSecret))
	{
		profile.GET("/profile", authHandler.GetProfile)
		profile.POST("/documents", middleware.UploadTimeout(uploadTimeout), authHandler.UploadDocuments)
	}
}
