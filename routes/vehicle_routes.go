package routes

import (
	"time"

	"gorent/internal/handlers"
	"gorent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up the public catalog and the owner's
// listing management routes.
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, jwtSecret string, uploadTimeout time.Duration) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
	}

	owner := r.Group("/owner/vehicles")
	owner.Use(middleware.AuthRequired(jwtSecret), middleware.OwnerRequired())
	{
		owner.GET("", vehicleHandler.OwnerDashboard)
		owner.POST("", middleware.UploadTimeout(uploadTimeout), vehicleHandler.CreateVehicle)
		owner.PUT("/:id", middleware.UploadTimeout(uploadTimeout), vehicleHandler.UpdateVehicle)
		owner.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
