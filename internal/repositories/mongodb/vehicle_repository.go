package mongodb

import (
	"context"
	"fmt"
	"time"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type vehicleRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewVehicleRepository(db *mongo.Database, cache CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cache,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	// New vehicles are unverified, so the public catalog is unchanged.
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("vehicle %s: %w", id.Hex(), interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s: %w", id.Hex(), interfaces.ErrNotFound)
	}

	r.invalidateCatalogCache(ctx)

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	r.invalidateCatalogCache(ctx)

	return nil
}

func (r *vehicleRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	filter := bson.M{"owner_id": ownerID}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by owner ID: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeVehicles(ctx, cursor)
}

func (r *vehicleRepository) GetVerified(ctx context.Context, location string) ([]*models.Vehicle, error) {
	// The unfiltered verified list is the hot path (public catalog);
	// location searches go straight to the database.
	if location == "" {
		if r.cache != nil {
			var cached []*models.Vehicle
			if err := r.cache.Get(ctx, utils.VerifiedVehiclesCacheKey, &cached); err == nil {
				return cached, nil
			}
		}
	}

	filter := bson.M{"is_verified": true}
	if location != "" {
		filter["location"] = bson.M{"$regex": location, "$options": "i"}
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find verified vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles, err := decodeVehicles(ctx, cursor)
	if err != nil {
		return nil, err
	}

	if location == "" && r.cache != nil {
		r.cache.Set(ctx, utils.VerifiedVehiclesCacheKey, vehicles, utils.VehicleCacheTTL)
	}

	return vehicles, nil
}

func (r *vehicleRepository) GetUnverified(ctx context.Context) ([]*models.Vehicle, error) {
	filter := bson.M{"is_verified": false}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find unverified vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeVehicles(ctx, cursor)
}

func (r *vehicleRepository) invalidateCatalogCache(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, utils.VerifiedVehiclesCacheKey)
	}
}

func decodeVehicles(ctx context.Context, cursor *mongo.Cursor) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}
