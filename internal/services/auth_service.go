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
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, request *validators.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, request *validators.LoginRequest) (*AuthResponse, error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UploadDocuments(ctx context.Context, userID primitive.ObjectID, documents *UserDocumentSet) (*models.User, error)
}

type AuthResponse struct {
	User   *models.User     `json:"user"`
	Tokens *utils.TokenPair `json:"tokens"`
}

type authService struct {
	userRepo   interfaces.UserRepository
	storage    storage.Provider
	jwtSecret  string
	bcryptCost int
	logger     *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, storageProvider storage.Provider, jwtSecret string, bcryptCost int, log *logger.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		storage:    storageProvider,
		jwtSecret:  jwtSecret,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

func (s *authService) Register(ctx context.Context, request *validators.RegisterRequest) (*models.User, error) {
	if errs := validators.ValidateRegister(request); len(errs) > 0 {
		return nil, NewValidationError(errs.Error(), errs.ToMap())
	}

	email := strings.ToLower(request.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.NormalizeRole(request.Role)
	if role == "" {
		role = models.UserRoleRenter
	}

	user := &models.User{
		Name:       request.Name,
		Email:      email,
		Password:   string(hashed),
		Role:       role,
		IsVerified: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.WithUserID(user.ID).WithField("role", string(user.Role)).Info("user registered")

	return user, nil
}

func (s *authService) Login(ctx context.Context, request *validators.LoginRequest) (*AuthResponse, error) {
	if errs := validators.ValidateLogin(request); len(errs) > 0 {
		return nil, NewValidationError(errs.Error(), errs.ToMap())
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(request.Email))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.WithUserID(user.ID).Info("user logged in")

	return &AuthResponse{
		User:   user,
		Tokens: tokens,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// UploadDocuments stores the supplied identity documents and records
// their URLs. Categories not supplied keep their existing URLs.
func (s *authService) UploadDocuments(ctx context.Context, userID primitive.ObjectID, documents *UserDocumentSet) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if documents == nil || (documents.GovID == nil && documents.DrivingLicense == nil) {
		return nil, NewValidationError("no documents supplied", nil)
	}

	updates := make(map[string]interface{})

	if documents.GovID != nil {
		url, err := uploadFile(ctx, s.storage, utils.UserGovIDFolder, documents.GovID)
		if err != nil {
			return nil, err
		}
		updates["gov_id_file"] = url
		user.GovIDFile = url
	}

	if documents.DrivingLicense != nil {
		url, err := uploadFile(ctx, s.storage, utils.UserDLFolder, documents.DrivingLicense)
		if err != nil {
			return nil, err
		}
		updates["driving_license_file"] = url
		user.DrivingLicenseFile = url
	}

	if err := s.userRepo.Update(ctx, userID, updates); err != nil {
		return nil, fmt.Errorf("failed to update user documents: %w", err)
	}

	s.logger.WithUserID(userID).Info("user documents uploaded")

	return user, nil
}
