package routes

import (
	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up the verification and payout routes.
func SetupAdminRoutes(r *gin.RouterGroup, adminHandler *handlers.AdminHandler, jwtSecret string) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)

		admin.PUT("/users/:id/approve", adminHandler.ApproveUser)
		admin.PUT("/users/:id/deny", adminHandler.DenyUser)

		admin.PUT("/vehicles/:id/approve", adminHandler.ApproveVehicle)
		admin.PUT("/vehicles/:id/deny", adminHandler.DenyVehicle)

		admin.PUT("/bookings/:id/paid", adminHandler.MarkPaid)
	}
}
