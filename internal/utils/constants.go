package utils

import "time"

// Application Constants
const (
	AppName    = "GoRent"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour
	PasswordMinLength  = 6
	PasswordMaxLength  = 128

	// Ratings
	MinRating = 1
	MaxRating = 5

	// Dashboard
	RecentBookingsLimit = 20
	HomeFeedLimit       = 12

	// File Upload
	MaxImageSize     = 5 * 1024 * 1024  // 5MB
	MaxDocumentSize  = 10 * 1024 * 1024 // 10MB
	MaxVehicleImages = 6

	// Blob storage folders
	VehicleImageFolder = "rentals/vehicles"
	VehicleDocFolder   = "rentals/documents"
	UserGovIDFolder    = "users/gov-id"
	UserDLFolder       = "users/driving-license"

	// Cache
	VerifiedVehiclesCacheKey = "vehicles:verified"
	VehicleCacheTTL          = 5 * time.Minute
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid email or password"
	ErrEmailRegistered    = "email already registered"
	ErrInvalidToken       = "invalid token"
	ErrInvalidInput       = "invalid input"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrValidationFailed   = "validation failed"
	ErrFileUploadFailed   = "file upload failed"
)

// Redirect targets carried on error responses. The front end follows
// these so a failed attempt lands the user somewhere it can be fixed.
const (
	RedirectHome           = "/"
	RedirectLogin          = "/users/login"
	RedirectRegister       = "/users/register"
	RedirectProfile        = "/users/profile"
	RedirectVehicles       = "/vehicles"
	RedirectAddVehicle     = "/vehicles/add"
	RedirectOwnerDashboard = "/vehicles/owner/dashboard"
	RedirectMyBookings     = "/bookings/my"
	RedirectAdminDashboard = "/admin/dashboard"
)
