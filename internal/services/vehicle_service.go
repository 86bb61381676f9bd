package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"
	"gorent/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleService interface {
	// Public catalog
	ListPublic(ctx context.Context, location string) ([]*models.Vehicle, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)

	// Owner operations
	ListForOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)
	Create(ctx context.Context, ownerID primitive.ObjectID, request *validators.VehicleCreateRequest, documents *VehicleDocumentSet) (*models.Vehicle, error)
	Update(ctx context.Context, vehicleID, callerID primitive.ObjectID, request *validators.VehicleUpdateRequest, documents *VehicleDocumentSet) (*models.Vehicle, error)
	Delete(ctx context.Context, vehicleID, callerID primitive.ObjectID) error
}

type vehicleService struct {
	vehicleRepo interfaces.VehicleRepository
	storage     storage.Provider
	logger      *logger.Logger
}

func NewVehicleService(vehicleRepo interfaces.VehicleRepository, storageProvider storage.Provider, log *logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		storage:     storageProvider,
		logger:      log,
	}
}

// ListPublic returns verified vehicles only. location, when set, is a
// case-insensitive substring filter.
func (s *vehicleService) ListPublic(ctx context.Context, location string) ([]*models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.GetVerified(ctx, strings.TrimSpace(location))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

func (s *vehicleService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return vehicle, nil
}

// ListForOwner returns every vehicle the owner has listed, verified or
// not.
func (s *vehicleService) ListForOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner vehicles: %w", err)
	}

	return vehicles, nil
}

// Create validates the listing, uploads every image and document, and
// persists the vehicle unverified. All four document categories are
// mandatory, and all uploads must succeed before anything is written.
func (s *vehicleService) Create(ctx context.Context, ownerID primitive.ObjectID, request *validators.VehicleCreateRequest, documents *VehicleDocumentSet) (*models.Vehicle, error) {
	if errs := validators.ValidateVehicleCreate(request); len(errs) > 0 {
		return nil, NewValidationError(errs.Error(), errs.ToMap())
	}

	if documents == nil {
		documents = &VehicleDocumentSet{}
	}

	var missing []string
	if len(documents.Images) == 0 {
		missing = append(missing, "vehicle images")
	}
	if documents.RC == nil {
		missing = append(missing, "RC document")
	}
	if documents.Insurance == nil {
		missing = append(missing, "insurance document")
	}
	if documents.Pollution == nil {
		missing = append(missing, "pollution document")
	}
	if len(missing) > 0 {
		return nil, NewValidationError("missing: "+strings.Join(missing, ", "), nil)
	}

	imageURLs := make([]string, 0, len(documents.Images))
	for _, image := range documents.Images {
		url, err := uploadFile(ctx, s.storage, utils.VehicleImageFolder, image)
		if err != nil {
			return nil, err
		}
		imageURLs = append(imageURLs, url)
	}

	rcURL, err := uploadFile(ctx, s.storage, utils.VehicleDocFolder, documents.RC)
	if err != nil {
		return nil, err
	}
	insuranceURL, err := uploadFile(ctx, s.storage, utils.VehicleDocFolder, documents.Insurance)
	if err != nil {
		return nil, err
	}
	pollutionURL, err := uploadFile(ctx, s.storage, utils.VehicleDocFolder, documents.Pollution)
	if err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		OwnerID:       ownerID,
		Title:         request.Title,
		Type:          models.VehicleType(request.Type),
		Description:   request.Description,
		ModelYear:     request.ModelYear,
		Mileage:       request.Mileage,
		Location:      request.Location,
		PricePerDay:   request.PricePerDay,
		PricePerWeek:  request.PricePerWeek,
		PricePerMonth: request.PricePerMonth,
		Images:        imageURLs,
		RCFile:        rcURL,
		InsuranceFile: insuranceURL,
		PollutionFile: pollutionURL,
		IsVerified:    false,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.WithVehicleID(vehicle.ID).WithUserID(ownerID).Info("vehicle listed, awaiting verification")

	return vehicle, nil
}

// Update edits a listing. Document categories that come with a new
// file are re-uploaded and replaced; the rest keep their URLs. Editing
// does not reset the verification flag.
func (s *vehicleService) Update(ctx context.Context, vehicleID, callerID primitive.ObjectID, request *validators.VehicleUpdateRequest, documents *VehicleDocumentSet) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.OwnerID != callerID {
		return nil, ErrNotAuthorized
	}

	if errs := validators.ValidateVehicleUpdate(request); len(errs) > 0 {
		return nil, NewValidationError(errs.Error(), errs.ToMap())
	}

	updates := map[string]interface{}{
		"title":           request.Title,
		"type":            models.VehicleType(request.Type),
		"description":     request.Description,
		"model_year":      request.ModelYear,
		"mileage":         request.Mileage,
		"location":        request.Location,
		"price_per_day":   request.PricePerDay,
		"price_per_week":  request.PricePerWeek,
		"price_per_month": request.PricePerMonth,
	}

	if documents != nil {
		if len(documents.Images) > 0 {
			imageURLs := make([]string, 0, len(documents.Images))
			for _, image := range documents.Images {
				url, err := uploadFile(ctx, s.storage, utils.VehicleImageFolder, image)
				if err != nil {
					return nil, err
				}
				imageURLs = append(imageURLs, url)
			}
			updates["images"] = imageURLs
			vehicle.Images = imageURLs
		}

		if documents.RC != nil {
			url, err := uploadFile(ctx, s.storage, utils.VehicleDocFolder, documents.RC)
			if err != nil {
				return nil, err
			}
			updates["rc_file"] = url
			vehicle.RCFile = url
		}

		if documents.Insurance != nil {
			url, err := uploadFile(ctx, s.storage, utils.VehicleDocFolder, documents.Insurance)
			if err != nil {
				return nil, err
			}
			updates["insurance_file"] = url
			vehicle.InsuranceFile = url
		}

		if documents.Pollution != nil {
			url, err := uploadFile(ctx, s.storage, utils.VehicleDocFolder, documents.Pollution)
			if err != nil {
				return nil, err
			}
			updates["pollution_file"] = url
			vehicle.PollutionFile = url
		}
	}

	if err := s.vehicleRepo.Update(ctx, vehicleID, updates); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	vehicle.Title = request.Title
	vehicle.Type = models.VehicleType(request.Type)
	vehicle.Description = request.Description
	vehicle.ModelYear = request.ModelYear
	vehicle.Mileage = request.Mileage
	vehicle.Location = request.Location
	vehicle.PricePerDay = request.PricePerDay
	vehicle.PricePerWeek = request.PricePerWeek
	vehicle.PricePerMonth = request.PricePerMonth

	s.logger.WithVehicleID(vehicleID).Info("vehicle updated")

	return vehicle, nil
}

// Delete removes the listing. Bookings referencing it are left in
// place; listings tolerate the dangling reference.
func (s *vehicleService) Delete(ctx context.Context, vehicleID, callerID primitive.ObjectID) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.OwnerID != callerID {
		return ErrNotAuthorized
	}

	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	s.logger.WithVehicleID(vehicleID).Info("vehicle deleted")

	return nil
}
