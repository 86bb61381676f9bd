package interfaces

import (
	"context"

	"gorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// UpdateStatusFrom applies updates only when the booking's current
	// status is one of from. Returns false when no document matched,
	// i.e. the transition was illegal or lost a race.
	UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, from []models.BookingStatus, updates map[string]interface{}) (bool, error)

	// Listings, newest first
	GetByRenterID(ctx context.Context, renterID primitive.ObjectID) ([]*models.Booking, error)
	GetByVehicleIDs(ctx context.Context, vehicleIDs []primitive.ObjectID) ([]*models.Booking, error)
	GetRecent(ctx context.Context, limit int) ([]*models.Booking, error)
}
