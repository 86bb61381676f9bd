package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorent/internal/models"
	"gorent/internal/services"
	"gorent/internal/validators"
	"gorent/pkg/logger"
	"gorent/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newVehicleFixture() (*MockVehicleRepo, *MockStorage, services.VehicleService) {
	vehicleRepo := new(MockVehicleRepo)
	blobStore := new(MockStorage)
	svc := services.NewVehicleService(vehicleRepo, blobStore, logger.NewNop())
	return vehicleRepo, blobStore, svc
}

func validCreateRequest() *validators.VehicleCreateRequest {
	return &validators.VehicleCreateRequest{
		Title:       "Honda Activa",
		Type:        "scooter",
		Location:    "Bengaluru",
		PricePerDay: 300,
	}
}

func fullDocumentSet() *services.VehicleDocumentSet {
	return &services.VehicleDocumentSet{
		Images:    []*services.FileUpload{{Name: "front.jpg", ContentType: "image/jpeg", Data: []byte("img")}},
		RC:        &services.FileUpload{Name: "rc.pdf", ContentType: "application/pdf", Data: []byte("rc")},
		Insurance: &services.FileUpload{Name: "ins.pdf", ContentType: "application/pdf", Data: []byte("ins")},
		Pollution: &services.FileUpload{Name: "puc.pdf", ContentType: "application/pdf", Data: []byte("puc")},
	}
}

func TestVehicleCreate_AllDocumentCategoriesRequired(t *testing.T) {
	vehicleRepo, blobStore, svc := newVehicleFixture()

	documents := fullDocumentSet()
	documents.Insurance = nil
	documents.Pollution = nil

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest(), documents)

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.True(t, strings.Contains(validationErr.Message, "insurance"))
	assert.True(t, strings.Contains(validationErr.Message, "pollution"))
	blobStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVehicleCreate_UploadFailureAbortsBeforePersist(t *testing.T) {
	vehicleRepo, blobStore, svc := newVehicleFixture()

	blobStore.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket unavailable"))

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), validCreateRequest(), fullDocumentSet())

	var uploadErr *services.UploadError
	require.ErrorAs(t, err, &uploadErr)
	vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVehicleCreate_StartsUnverified(t *testing.T) {
	vehicleRepo, blobStore, svc := newVehicleFixture()

	ownerID := primitive.NewObjectID()

	blobStore.On("Upload", mock.Anything, mock.Anything).Return(&storage.UploadResponse{URL: "https://cdn.example.com/doc"}, nil)
	vehicleRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Vehicle")).Return(nil)

	vehicle, err := svc.Create(context.Background(), ownerID, validCreateRequest(), fullDocumentSet())

	require.NoError(t, err)
	assert.False(t, vehicle.IsVerified)
	assert.Equal(t, ownerID, vehicle.OwnerID)
	assert.Len(t, vehicle.Images, 1)
	assert.Equal(t, "https://cdn.example.com/doc", vehicle.RCFile)
	assert.Equal(t, "https://cdn.example.com/doc", vehicle.InsuranceFile)
	assert.Equal(t, "https://cdn.example.com/doc", vehicle.PollutionFile)
	blobStore.AssertNumberOfCalls(t, "Upload", 4)
}

func TestVehicleCreate_RejectsInvalidType(t *testing.T) {
	vehicleRepo, _, svc := newVehicleFixture()

	request := validCreateRequest()
	request.Type = "truck"

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), request, fullDocumentSet())

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVehicleUpdate_OnlyTheOwner(t *testing.T) {
	vehicleRepo, _, svc := newVehicleFixture()

	vehicleID := primitive.NewObjectID()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: primitive.NewObjectID()}

	vehicleRepo.On("GetByID", mock.Anything, vehicleID).Return(vehicle, nil)

	_, err := svc.Update(context.Background(), vehicleID, primitive.NewObjectID(), &validators.VehicleUpdateRequest{
		Title:    "Updated",
		Type:     "bike",
		Location: "Pune",
	}, nil)

	assert.ErrorIs(t, err, services.ErrNotAuthorized)
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestVehicleUpdate_ReplacesOnlySuppliedDocuments(t *testing.T) {
	vehicleRepo, blobStore, svc := newVehicleFixture()

	vehicleID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	vehicle := &models.Vehicle{
		ID:            vehicleID,
		OwnerID:       ownerID,
		RCFile:        "https://cdn.example.com/old-rc",
		InsuranceFile: "https://cdn.example.com/old-ins",
		IsVerified:    true,
	}

	vehicleRepo.On("GetByID", mock.Anything, vehicleID).Return(vehicle, nil)
	blobStore.On("Upload", mock.Anything, mock.Anything).Return(&storage.UploadResponse{URL: "https://cdn.example.com/new-rc"}, nil)
	vehicleRepo.On("Update", mock.Anything, vehicleID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, touchedInsurance := updates["insurance_file"]
		_, touchedVerification := updates["is_verified"]
		return updates["rc_file"] == "https://cdn.example.com/new-rc" && !touchedInsurance && !touchedVerification
	})).Return(nil)

	updated, err := svc.Update(context.Background(), vehicleID, ownerID, &validators.VehicleUpdateRequest{
		Title:    "Honda Activa 6G",
		Type:     "scooter",
		Location: "Bengaluru",
	}, &services.VehicleDocumentSet{
		RC: &services.FileUpload{Name: "rc-new.pdf", ContentType: "application/pdf", Data: []byte("rc")},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new-rc", updated.RCFile)
	assert.Equal(t, "https://cdn.example.com/old-ins", updated.InsuranceFile)
	vehicleRepo.AssertExpectations(t)
}

func TestVehicleDelete_OnlyTheOwner(t *testing.T) {
	vehicleRepo, _, svc := newVehicleFixture()

	vehicleID := primitive.NewObjectID()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: primitive.NewObjectID()}

	vehicleRepo.On("GetByID", mock.Anything, vehicleID).Return(vehicle, nil)

	err := svc.Delete(context.Background(), vehicleID, primitive.NewObjectID())

	assert.ErrorIs(t, err, services.ErrNotAuthorized)
	vehicleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVehicleDelete_Owner(t *testing.T) {
	vehicleRepo, _, svc := newVehicleFixture()

	vehicleID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	vehicle := &models.Vehicle{ID: vehicleID, OwnerID: ownerID}

	vehicleRepo.On("GetByID", mock.Anything, vehicleID).Return(vehicle, nil)
	vehicleRepo.On("Delete", mock.Anything, vehicleID).Return(nil)

	err := svc.Delete(context.Background(), vehicleID, ownerID)

	require.NoError(t, err)
	vehicleRepo.AssertExpectations(t)
}

func TestVehicleListPublic_TrimsLocationFilter(t *testing.T) {
	vehicleRepo, _, svc := newVehicleFixture()

	vehicleRepo.On("GetVerified", mock.Anything, "bengaluru").Return([]*models.Vehicle{}, nil)

	_, err := svc.ListPublic(context.Background(), "  bengaluru  ")

	require.NoError(t, err)
	vehicleRepo.AssertExpectations(t)
}
