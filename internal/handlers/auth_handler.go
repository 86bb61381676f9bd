package handlers

import (
	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      log,
	}
}

// Register creates a new account. The role defaults to renter when
// omitted.
func (h *AuthHandler) Register(c *gin.Context) {
	var request validators.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectRegister)
		return
	}

	utils.CreatedResponse(c, "account created", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request validators.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectLogin)
		return
	}

	utils.SuccessResponse(c, "logged in", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectHome)
		return
	}

	utils.SuccessResponse(c, "profile retrieved", user)
}

// UploadDocuments accepts gov_id_file and driving_license_file as
// multipart fields. At least one must be present.
func (h *AuthHandler) UploadDocuments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "invalid multipart form: "+err.Error())
		return
	}

	govID, err := readFormFile(form, "gov_id_file")
	if err != nil {
		utils.BadRequestResponse(c, "failed to read gov_id_file")
		return
	}
	drivingLicense, err := readFormFile(form, "driving_license_file")
	if err != nil {
		utils.BadRequestResponse(c, "failed to read driving_license_file")
		return
	}

	user, err := h.authService.UploadDocuments(c.Request.Context(), userID, &services.UserDocumentSet{
		GovID:          govID,
		DrivingLicense: drivingLicense,
	})
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectProfile)
		return
	}

	utils.SuccessResponse(c, "documents uploaded, awaiting verification", user)
}
