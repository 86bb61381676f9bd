package handlers

import (
	"mime/multipart"

	"gorent/internal/services"
	"gorent/internal/utils"
	"gorent/internal/validators"
	"gorent/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
	logger         *logger.Logger
}

func NewVehicleHandler(vehicleService services.VehicleService, log *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         log,
	}
}

// ListVehicles returns the verified catalog. ?location= filters by
// case-insensitive substring, ?page= and ?page_size= page the result.
// The catalog is cached as a whole, so paging happens over the cached
// slice.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	vehicles, err := h.vehicleService.ListPublic(c.Request.Context(), c.Query("location"))
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectHome)
		return
	}

	total := int64(len(vehicles))
	start := params.GetSkip()
	if start > len(vehicles) {
		start = len(vehicles)
	}
	end := start + params.GetLimit()
	if end > len(vehicles) {
		end = len(vehicles)
	}
	page := vehicles[start:end]

	utils.PaginatedResponse(c, "vehicles retrieved", page, params, total, len(page))
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), vehicleID)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectVehicles)
		return
	}

	utils.SuccessResponse(c, "vehicle retrieved", vehicle)
}

// OwnerDashboard lists every vehicle the caller has listed, verified
// or not.
func (h *VehicleHandler) OwnerDashboard(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	vehicles, err := h.vehicleService.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectHome)
		return
	}

	utils.SuccessResponse(c, "owner vehicles retrieved", vehicles)
}

// CreateVehicle lists a new vehicle. The multipart form carries the
// listing fields plus images, rc_file, insurance_file and
// pollution_file.
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var request validators.VehicleCreateRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "invalid multipart form: "+err.Error())
		return
	}

	documents, err := readVehicleDocuments(form)
	if err != nil {
		utils.BadRequestResponse(c, "failed to read uploaded files")
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), ownerID, &request, documents)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectAddVehicle)
		return
	}

	utils.CreatedResponse(c, "vehicle listed, awaiting verification", vehicle)
}

// UpdateVehicle edits a listing. Files are optional; categories left
// out keep their current documents.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	vehicleID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var request validators.VehicleUpdateRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	documents := &services.VehicleDocumentSet{}
	if form, err := c.MultipartForm(); err == nil {
		documents, err = readVehicleDocuments(form)
		if err != nil {
			utils.BadRequestResponse(c, "failed to read uploaded files")
			return
		}
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), vehicleID, ownerID, &request, documents)
	if err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectOwnerDashboard)
		return
	}

	utils.SuccessResponse(c, "vehicle updated", vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	vehicleID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), vehicleID, ownerID); err != nil {
		handleServiceError(c, h.logger, err, utils.RedirectOwnerDashboard)
		return
	}

	utils.SuccessResponse(c, "vehicle deleted", nil)
}

func readVehicleDocuments(form *multipart.Form) (*services.VehicleDocumentSet, error) {
	documents := &services.VehicleDocumentSet{}

	for _, header := range form.File["images"] {
		image, err := readFileHeader(header)
		if err != nil {
			return nil, err
		}
		documents.Images = append(documents.Images, image)
	}

	var err error
	if documents.RC, err = readFormFile(form, "rc_file"); err != nil {
		return nil, err
	}
	if documents.Insurance, err = readFormFile(form, "insurance_file"); err != nil {
		return nil, err
	}
	if documents.Pollution, err = readFormFile(form, "pollution_file"); err != nil {
		return nil, err
	}

	return documents, nil
}
