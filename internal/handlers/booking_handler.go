package handlers

import (
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService services.BookingService
	logger         *logger.Logger
}

func NewBookingHandler(bookingService services.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         log,
	}
}

// CreateBooking places a booking request against the vehicle in the
// path. It starts pending and unpaid.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	renterID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	vehicleID, ok := objectIDParam(c, "vehicleId")
	if !ok {
		return
	}

	var request validators.BookingCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), renterID, vehicleID, &request)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectVehicles)
		return
	}

	utils.CreatedResponse(c, "booking requested", booking)
}

// MyBookings lists the renter's bookings with vehicles and owners
// resolved.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	renterID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	bookings, err := h.bookingService.ListForRenter(c.Request.Context(), renterID)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectHome)
		return
	}

	utils.SuccessResponse(c, "bookings retrieved", bookings)
}

// OwnerBookings lists every booking against the owner's vehicles.
func (h *BookingHandler) OwnerBookings(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	bookings, err := h.bookingService.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectHome)
		return
	}

	utils.SuccessResponse(c, "bookings retrieved", bookings)
}

func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	bookingID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Accept(c.Request.Context(), bookingID, ownerID)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectOwnerDashboard)
		return
	}

	utils.SuccessResponse(c, "booking accepted", booking)
}

func (h *BookingHandler) RejectBooking(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	bookingID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Reject(c.Request.Context(), bookingID, ownerID)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectOwnerDashboard)
		return
	}

	utils.SuccessResponse(c, "booking rejected", booking)
}

// CompleteBooking closes an accepted booking and records the renter's
// review and rating.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	renterID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	bookingID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var request validators.BookingCompleteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	booking, err := h.bookingService.Complete(c.Request.Context(), bookingID, renterID, &request)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectMyBookings)
		return
	}

	utils.SuccessResponse(c, "booking completed", booking)
}
