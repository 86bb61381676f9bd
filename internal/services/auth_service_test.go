package services_test

import (
	"context"
	"testing"

	"gorent/internal/models"
	"gorent/internal/repositories/interfaces"
	"gorent/internal/services"
	"gorent/internal/validators"
	"gorent/pkg/logger"
	"gorent/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func newAuthFixture() (*MockUserRepo, *MockStorage, services.AuthService) {
	userRepo := new(MockUserRepo)
	blobStore := new(MockStorage)
	svc := services.NewAuthService(userRepo, blobStore, testJWTSecret, bcrypt.MinCost, logger.NewNop())
	return userRepo, blobStore, svc
}

func TestRegister_DefaultsToRenter(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, interfaces.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(context.Background(), &validators.RegisterRequest{
		Name:     "New User",
		Email:    "New@Example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, models.UserRoleRenter, user.Role)
	assert.Equal(t, "new@example.com", user.Email)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "secret1", user.Password)
}

func TestRegister_KeepsRequestedRole(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, interfaces.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(context.Background(), &validators.RegisterRequest{
		Name:     "Fleet Owner",
		Email:    "owner@example.com",
		Password: "secret1",
		Role:     "Owner",
	})

	require.NoError(t, err)
	assert.Equal(t, models.UserRoleOwner, user.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	existing := &models.User{ID: primitive.NewObjectID(), Email: "taken@example.com"}
	userRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	_, err := svc.Register(context.Background(), &validators.RegisterRequest{
		Name:     "Someone",
		Email:    "taken@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, services.ErrEmailRegistered)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_ShortPassword(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	_, err := svc.Register(context.Background(), &validators.RegisterRequest{
		Name:     "Someone",
		Email:    "short@example.com",
		Password: "abc",
	})

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_ReturnsTokenPair(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "login@example.com",
		Password: string(hashed),
		Role:     models.UserRoleRenter,
	}
	userRepo.On("GetByEmail", mock.Anything, "login@example.com").Return(user, nil)

	response, err := svc.Login(context.Background(), &validators.LoginRequest{
		Email:    "Login@Example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, response.Tokens.AccessToken)
	assert.NotEmpty(t, response.Tokens.RefreshToken)
	assert.Equal(t, user.ID, response.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{ID: primitive.NewObjectID(), Email: "login@example.com", Password: string(hashed)}
	userRepo.On("GetByEmail", mock.Anything, "login@example.com").Return(user, nil)

	_, err = svc.Login(context.Background(), &validators.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo, _, svc := newAuthFixture()

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, interfaces.ErrNotFound)

	_, err := svc.Login(context.Background(), &validators.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestUploadDocuments_PartialKeepsOtherCategory(t *testing.T) {
	userRepo, blobStore, svc := newAuthFixture()

	userID := primitive.NewObjectID()
	user := &models.User{ID: userID, DrivingLicenseFile: "https://cdn.example.com/old-dl"}

	userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
	blobStore.On("Upload", mock.Anything, mock.Anything).Return(&storage.UploadResponse{URL: "https://cdn.example.com/new-gov-id"}, nil)
	userRepo.On("Update", mock.Anything, userID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, touchedDL := updates["driving_license_file"]
		return updates["gov_id_file"] == "https://cdn.example.com/new-gov-id" && !touchedDL
	})).Return(nil)

	updated, err := svc.UploadDocuments(context.Background(), userID, &services.UserDocumentSet{
		GovID: &services.FileUpload{Name: "id.png", ContentType: "image/png", Data: []byte("id")},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new-gov-id", updated.GovIDFile)
	assert.Equal(t, "https://cdn.example.com/old-dl", updated.DrivingLicenseFile)
	userRepo.AssertExpectations(t)
}

func TestUploadDocuments_RequiresAtLeastOneFile(t *testing.T) {
	userRepo, blobStore, svc := newAuthFixture()

	userID := primitive.NewObjectID()
	userRepo.On("GetByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil)

	_, err := svc.UploadDocuments(context.Background(), userID, &services.UserDocumentSet{})

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	blobStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}
