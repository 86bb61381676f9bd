package interfaces

import (
	"context"

	"gorent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Owner association
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)

	// Public catalog: verified vehicles, optionally filtered by a
	// case-insensitive substring match on location
	GetVerified(ctx context.Context, location string) ([]*models.Vehicle, error)

	// Verification queue
	GetUnverified(ctx context.Context) ([]*models.Vehicle, error)
}
