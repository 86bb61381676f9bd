package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID reads the authenticated user's ID set by the auth
// middleware. exists is false when the route was not behind it.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return primitive.NilObjectID, false
	}
	userID, ok := value.(primitive.ObjectID)
	return userID, ok
}

// objectIDParam parses the named path parameter as an ObjectID.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

// handleServiceError maps a service error onto the HTTP response,
// carrying the redirect target the front end should follow. Errors
// outside the service taxonomy are logged and reported as internal.
func handleServiceError(c *gin.Context, log *logger.Logger, err error, redirect string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		utils.ValidationErrorResponse(c, validationErr.Message, redirect, validationErr.Fields)
		return
	}

	var uploadErr *services.UploadError
	if errors.As(err, &uploadErr) {
		log.WithError(err).Error("file upload failed")
		utils.ErrorResponseWithRedirect(c, http.StatusBadGateway, "UPLOAD_FAILED", utils.ErrFileUploadFailed, redirect)
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		utils.NotFoundResponse(c, "user", redirect)
	case errors.Is(err, services.ErrVehicleNotFound):
		utils.NotFoundResponse(c, "vehicle", redirect)
	case errors.Is(err, services.ErrBookingNotFound):
		utils.NotFoundResponse(c, "booking", redirect)
	case errors.Is(err, services.ErrNotAuthorized):
		utils.ForbiddenResponse(c, "", redirect)
	case errors.Is(err, services.ErrEmailRegistered):
		utils.ConflictResponse(c, utils.ErrEmailRegistered, redirect)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, utils.ErrInvalidCredentials)
	case errors.Is(err, services.ErrInvalidTransition):
		utils.ConflictResponse(c, err.Error(), redirect)
	default:
		log.WithError(err).Error("request failed")
		utils.InternalServerErrorResponse(c)
	}
}

// readFormFile loads one optional multipart file into memory. A
// missing file is not an error.
func readFormFile(form *multipart.Form, field string) (*services.FileUpload, error) {
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	return readFileHeader(files[0])
}

func readFileHeader(header *multipart.FileHeader) (*services.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &services.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
