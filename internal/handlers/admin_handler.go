package handlers

import (
	"errors"
	"io"

	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService services.AdminService
	logger       *logger.Logger
}

func NewAdminHandler(adminService services.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       log,
	}
}

// Dashboard returns both verification queues and the recent bookings.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectLogin)
		return
	}

	utils.SuccessResponse(c, "dashboard retrieved", dashboard)
}

func (h *AdminHandler) ApproveUser(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.ApproveUser(c.Request.Context(), userID); err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectAdminDashboard)
		return
	}

	utils.SuccessResponse(c, "user verified", nil)
}

func (h *AdminHandler) DenyUser(c *gin.Context) {
	userID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DenyUser(c.Request.Context(), userID); err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectAdminDashboard)
		return
	}

	utils.SuccessResponse(c, "user verification denied", nil)
}

func (h *AdminHandler) ApproveVehicle(c *gin.Context) {
	vehicleID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.ApproveVehicle(c.Request.Context(), vehicleID); err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectAdminDashboard)
		return
	}

	utils.SuccessResponse(c, "vehicle verified", nil)
}

func (h *AdminHandler) DenyVehicle(c *gin.Context) {
	vehicleID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.adminService.DenyVehicle(c.Request.Context(), vehicleID); err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectAdminDashboard)
		return
	}

	utils.SuccessResponse(c, "vehicle verification denied", nil)
}

// MarkPaid records the payout to the owner. The body may carry the
// bank transfer reference.
func (h *AdminHandler) MarkPaid(c *gin.Context) {
	bookingID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	// An empty body is fine, the transfer reference is optional.
	var request validators.MarkPaidRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	booking, err := h.adminService.MarkPaid(c.Request.Context(), bookingID, &request)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectAdminDashboard)
		return
	}

	utils.SuccessResponse(c, "payout recorded", booking)
}
