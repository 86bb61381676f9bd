package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	Create(ctx context.Context, renterID, vehicleID primitive.ObjectID, request *validators.BookingCreateRequest) (*models.Booking, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)

	// Owner decisions
	Accept(ctx context.Context, bookingID, ownerID primitive.ObjectID) (*models.Booking, error)
	Reject(ctx context.Context, bookingID, ownerID primitive.ObjectID) (*models.Booking, error)

	// Renter wrap-up
	Complete(ctx context.Context, bookingID, renterID primitive.ObjectID, request *validators.BookingCompleteRequest) (*models.Booking, error)

	// Listings with related records resolved
	ListForRenter(ctx context.Context, renterID primitive.ObjectID) ([]*BookingDetail, error)
	ListForOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*BookingDetail, error)
}

// BookingDetail is a booking with its related records resolved for
// display. Vehicle is nil when the listing has since been deleted.
type BookingDetail struct {
	Booking *models.Booking     `json:"booking"`
	Vehicle *models.Vehicle     `json:"vehicle,omitempty"`
	Owner   *models.UserSummary `json:"owner,omitempty"`
	Renter  *models.UserSummary `json:"renter,omitempty"`
}

type bookingService struct {
	bookingRepo interfaces.BookingRepository
	vehicleRepo interfaces.VehicleRepository
	userRepo    interfaces.UserRepository
	logger      *logger.Logger
}

func NewBookingService(bookingRepo interfaces.BookingRepository, vehicleRepo interfaces.VehicleRepository, userRepo interfaces.UserRepository, log *logger.Logger) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

// Create places a booking request for the vehicle. Pricing counts both
// endpoint days, so a same-day rental is one day.
func (s *bookingService) Create(ctx context.Context, renterID, vehicleID primitive.ObjectID, request *validators.BookingCreateRequest) (*models.Booking, error) {
	if errs := validators.ValidateBookingCreate(request); len(errs) > 0 {
		return nil, NewValidationError(errs.Error(), errs.ToMap())
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	totalDays := int(request.EndDate.Sub(request.StartDate).Hours()/24) + 1
	totalAmount := float64(totalDays) * vehicle.PricePerDay

	booking := &models.Booking{
		VehicleID:     vehicleID,
		RenterID:      renterID,
		StartDate:     request.StartDate,
		EndDate:       request.EndDate,
		TotalAmount:   totalAmount,
		Status:        models.BookingStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.WithBookingID(booking.ID).WithVehicleID(vehicleID).WithFields(map[string]interface{}{
		"total_days":   totalDays,
		"total_amount": totalAmount,
	}).Info("booking requested")

	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (s *bookingService) Accept(ctx context.Context, bookingID, ownerID primitive.ObjectID) (*models.Booking, error) {
	return s.respond(ctx, bookingID, ownerID, models.BookingStatusAccepted)
}

func (s *bookingService) Reject(ctx context.Context, bookingID, ownerID primitive.ObjectID) (*models.Booking, error) {
	return s.respond(ctx, bookingID, ownerID, models.BookingStatusRejected)
}

// respond applies an owner decision. The status write carries the
// pending precondition, so two racing decisions cannot both win.
func (s *bookingService) respond(ctx context.Context, bookingID, ownerID primitive.ObjectID, target models.BookingStatus) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.OwnerID != ownerID {
		return nil, ErrNotAuthorized
	}

	now := time.Now()
	ok, err := s.bookingRepo.UpdateStatusFrom(ctx, bookingID, models.AllowedSourceStatuses(target), map[string]interface{}{
		"status":            target,
		"owner_response_at": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	booking.Status = target
	booking.OwnerResponseAt = &now

	s.logger.WithBookingID(bookingID).WithField("status", string(target)).Info("owner responded to booking")

	return booking, nil
}

// Complete closes an accepted booking and records the renter's review.
func (s *bookingService) Complete(ctx context.Context, bookingID, renterID primitive.ObjectID, request *validators.BookingCompleteRequest) (*models.Booking, error) {
	if errs := validators.ValidateBookingComplete(request); len(errs) > 0 {
		return nil, NewValidationError(errs.Error(), errs.ToMap())
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.RenterID != renterID {
		return nil, ErrNotAuthorized
	}

	now := time.Now()
	ok, err := s.bookingRepo.UpdateStatusFrom(ctx, bookingID, models.AllowedSourceStatuses(models.BookingStatusCompleted), map[string]interface{}{
		"status":       models.BookingStatusCompleted,
		"completed_at": now,
		"review":       request.Review,
		"rating":       request.Rating,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete booking: %w", err)
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	booking.Status = models.BookingStatusCompleted
	booking.CompletedAt = &now
	booking.Review = request.Review
	booking.Rating = request.Rating

	s.logger.WithBookingID(bookingID).WithField("rating", request.Rating).Info("booking completed")

	return booking, nil
}

// ListForRenter returns the renter's bookings, newest first, with the
// vehicle and its owner resolved. Bookings whose vehicle was deleted
// are kept with a nil Vehicle.
func (s *bookingService) ListForRenter(ctx context.Context, renterID primitive.ObjectID) ([]*BookingDetail, error) {
	bookings, err := s.bookingRepo.GetByRenterID(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	vehicles := make(map[primitive.ObjectID]*models.Vehicle)
	ownerIDs := make([]primitive.ObjectID, 0, len(bookings))
	for _, booking := range bookings {
		if _, seen := vehicles[booking.VehicleID]; seen {
			continue
		}
		vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get vehicle: %w", err)
		}
		vehicles[booking.VehicleID] = vehicle
		ownerIDs = append(ownerIDs, vehicle.OwnerID)
	}

	owners, err := s.userRepo.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owners: %w", err)
	}

	details := make([]*BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		detail := &BookingDetail{Booking: booking}
		if vehicle, ok := vehicles[booking.VehicleID]; ok {
			detail.Vehicle = vehicle
			if owner, ok := owners[vehicle.OwnerID]; ok {
				detail.Owner = owner.Summary()
			}
		}
		details = append(details, detail)
	}

	return details, nil
}

// ListForOwner returns every booking against the owner's vehicles,
// newest first, with the renter resolved.
func (s *bookingService) ListForOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*BookingDetail, error) {
	vehicles, err := s.vehicleRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner vehicles: %w", err)
	}

	if len(vehicles) == 0 {
		return []*BookingDetail{}, nil
	}

	vehiclesByID := make(map[primitive.ObjectID]*models.Vehicle, len(vehicles))
	vehicleIDs := make([]primitive.ObjectID, 0, len(vehicles))
	for _, vehicle := range vehicles {
		vehiclesByID[vehicle.ID] = vehicle
		vehicleIDs = append(vehicleIDs, vehicle.ID)
	}

	bookings, err := s.bookingRepo.GetByVehicleIDs(ctx, vehicleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	renterIDs := make([]primitive.ObjectID, 0, len(bookings))
	seen := make(map[primitive.ObjectID]bool)
	for _, booking := range bookings {
		if !seen[booking.RenterID] {
			seen[booking.RenterID] = true
			renterIDs = append(renterIDs, booking.RenterID)
		}
	}

	renters, err := s.userRepo.GetByIDs(ctx, renterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve renters: %w", err)
	}

	details := make([]*BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		detail := &BookingDetail{
			Booking: booking,
			Vehicle: vehiclesByID[booking.VehicleID],
		}
		if renter, ok := renters[booking.RenterID]; ok {
			detail.Renter = renter.Summary()
		}
		details = append(details, detail)
	}

	return details, nil
}
