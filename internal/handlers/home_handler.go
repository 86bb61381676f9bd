package handlers

import (
	"gorent/internal/models"
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	vehicleService services.VehicleService
	bookingService services.BookingService
	logger         *logger.Logger
}

func NewHomeHandler(vehicleService services.VehicleService, bookingService services.BookingService, log *logger.Logger) *HomeHandler {
	return &HomeHandler{
		vehicleService: vehicleService,
		bookingService: bookingService,
		logger:         log,
	}
}

// HomeFeed is the landing payload. Owners see their own fleet with its
// booking requests; everyone else, guests included, sees the newest
// verified vehicles.
func (h *HomeHandler) HomeFeed(c *gin.Context) {
	role, _ := c.Get("user_role")
	roleStr, _ := role.(string)

	if models.NormalizeRole(roleStr) == models.UserRoleOwner {
		ownerID, ok := currentUserID(c)
		if !ok {
			utils.UnauthorizedResponse(c, "")
			return
		}

		vehicles, err := h.vehicleService.ListForOwner(c.Request.Context(), ownerID)
		if err != nil {
			handleServiceError(c, h.logger, err, utils.RedirectHome)
			return
		}
		bookings, err := h.bookingService.ListForOwner(c.Request.Context(), ownerID)
		if err != nil {
			handleServiceError(c, h.logger, err, utils.RedirectHome)
			return
		}

		utils.SuccessResponse(c, "home feed retrieved", gin.H{
			"vehicles": vehicles,
			"bookings": bookings,
		})
		return
	}

	vehicles, err := h.vehicleService.ListPublic(c.Request.Context(), "")
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectHome)
		return
	}
	if len(vehicles) > utils.HomeFeedLimit {
		vehicles = vehicles[:utils.HomeFeedLimit]
	}

	utils.SuccessResponse(c, "home feed retrieved", gin.H{
		"vehicles": vehicles,
	})
}
