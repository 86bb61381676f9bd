package routes

import (
	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupHomeRoutes sets up the landing feed. Auth is optional; the
// payload adapts to the caller's role.
func SetupHomeRoutes(r *gin.RouterGroup, homeHandler *handlers.HomeHandler, jwtSecret string) {
	r.GET("/home", middleware.AuthOptional(jwtSecret), homeHandler.HomeFeed)
}
