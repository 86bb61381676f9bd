package services

import (
	"context"
	"errors"
	"fmt"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*AdminDashboard, error)

	ApproveUser(ctx context.Context, userID primitive.ObjectID) error
	DenyUser(ctx context.Context, userID primitive.ObjectID) error

	ApproveVehicle(ctx context.Context, vehicleID primitive.ObjectID) error
	DenyVehicle(ctx context.Context, vehicleID primitive.ObjectID) error

	MarkPaid(ctx context.Context, bookingID primitive.ObjectID, request *validators.MarkPaidRequest) (*models.Booking, error)
}

// VehicleDetail pairs a pending vehicle with its owner for the review
// queue.
type VehicleDetail struct {
	Vehicle *models.Vehicle     `json:"vehicle"`
	Owner   *models.UserSummary `json:"owner,omitempty"`
}

type AdminDashboard struct {
	UnverifiedUsers    []*models.User   `json:"unverified_users"`
	UnverifiedVehicles []*VehicleDetail `json:"unverified_vehicles"`
	RecentBookings     []*BookingDetail `json:"recent_bookings"`
}

type adminService struct {
	userRepo    interfaces.UserRepository
	vehicleRepo interfaces.VehicleRepository
	bookingRepo interfaces.BookingRepository
	logger      *logger.Logger
}

func NewAdminService(userRepo interfaces.UserRepository, vehicleRepo interfaces.VehicleRepository, bookingRepo interfaces.BookingRepository, log *logger.Logger) AdminService {
	return &adminService{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		logger:      log,
	}
}

// Dashboard gathers both verification queues and the most recent
// bookings. Admins never appear in the user queue.
func (s *adminService) Dashboard(ctx context.Context) (*AdminDashboard, error) {
	users, err := s.userRepo.GetUnverified(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unverified users: %w", err)
	}

	vehicles, err := s.vehicleRepo.GetUnverified(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unverified vehicles: %w", err)
	}

	ownerIDs := make([]primitive.ObjectID, 0, len(vehicles))
	for _, vehicle := range vehicles {
		ownerIDs = append(ownerIDs, vehicle.OwnerID)
	}
	owners, err := s.userRepo.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owners: %w", err)
	}

	vehicleQueue := make([]*VehicleDetail, 0, len(vehicles))
	for _, vehicle := range vehicles {
		detail := &VehicleDetail{Vehicle: vehicle}
		if owner, ok := owners[vehicle.OwnerID]; ok {
			detail.Owner = owner.Summary()
		}
		vehicleQueue = append(vehicleQueue, detail)
	}

	bookings, err := s.recentBookings(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		UnverifiedUsers:    users,
		UnverifiedVehicles: vehicleQueue,
		RecentBookings:     bookings,
	}, nil
}

func (s *adminService) recentBookings(ctx context.Context) ([]*BookingDetail, error) {
	bookings, err := s.bookingRepo.GetRecent(ctx, utils.RecentBookingsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent bookings: %w", err)
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
		detail := &BookingDetail{Booking: booking}
		vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
		if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
			return nil, fmt.Errorf("failed to get vehicle: %w", err)
		}
		detail.Vehicle = vehicle
		if renter, ok := renters[booking.RenterID]; ok {
			detail.Renter = renter.Summary()
		}
		details = append(details, detail)
	}

	return details, nil
}

func (s *adminService) ApproveUser(ctx context.Context, userID primitive.ObjectID) error {
	err := s.userRepo.Update(ctx, userID, map[string]interface{}{
		"is_verified": true,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to approve user: %w", err)
	}

	s.logger.WithUserID(userID).Info("user verified")

	return nil
}

// DenyUser rejects the verification request and clears the submitted
// documents so the user has to resubmit.
func (s *adminService) DenyUser(ctx context.Context, userID primitive.ObjectID) error {
	err := s.userRepo.Update(ctx, userID, map[string]interface{}{
		"is_verified":          false,
		"gov_id_file":          "",
		"driving_license_file": "",
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to deny user: %w", err)
	}

	s.logger.WithUserID(userID).Info("user verification denied")

	return nil
}

func (s *adminService) ApproveVehicle(ctx context.Context, vehicleID primitive.ObjectID) error {
	err := s.vehicleRepo.Update(ctx, vehicleID, map[string]interface{}{
		"is_verified": true,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to approve vehicle: %w", err)
	}

	s.logger.WithVehicleID(vehicleID).Info("vehicle verified")

	return nil
}

// DenyVehicle rejects the listing and clears its compliance documents
// so the owner has to resubmit.
func (s *adminService) DenyVehicle(ctx context.Context, vehicleID primitive.ObjectID) error {
	err := s.vehicleRepo.Update(ctx, vehicleID, map[string]interface{}{
		"is_verified":    false,
		"rc_file":        "",
		"insurance_file": "",
		"pollution_file": "",
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to deny vehicle: %w", err)
	}

	s.logger.WithVehicleID(vehicleID).Info("vehicle verification denied")

	return nil
}

// MarkPaid records that the renter's payment reached the owner. The
// UTR number is the bank transfer reference, kept for reconciliation.
func (s *adminService) MarkPaid(ctx context.Context, bookingID primitive.ObjectID, request *validators.MarkPaidRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	updates := map[string]interface{}{
		"payment_status": models.PaymentStatusPaid,
	}
	if request != nil && request.UTRNumber != "" {
		updates["utr_number"] = request.UTRNumber
		booking.UTRNumber = request.UTRNumber
	}

	if err := s.bookingRepo.Update(ctx, bookingID, updates); err != nil {
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	booking.PaymentStatus = models.PaymentStatusPaid

	s.logger.WithBookingID(bookingID).Info("booking payout recorded")

	return booking, nil
}
