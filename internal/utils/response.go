package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`

	// Redirect is the business-meaningful place to send the user
	// after this failure (back to the form they came from, their
	// dashboard, or the login page for admin-gated surfaces).
	Redirect string `json:"redirect,omitempty"`
}

type Meta struct {
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Total      int64           `json:"total,omitempty"`
	Count      int             `json:"count,omitempty"`
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func PaginatedResponse(c *gin.Context, message string, data interface{}, params *PaginationParams, total int64, count int) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
		Meta: &Meta{
			Pagination: NewPaginationMeta(params, total),
			Total:      total,
			Count:      count,
		},
		Timestamp: time.Now(),
	})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, APIResponse{
		Status: StatusError,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now(),
	})
}

func ErrorResponseWithRedirect(c *gin.Context, statusCode int, code, message, redirect string) {
	c.JSON(statusCode, APIResponse{
		Status: StatusError,
		Error: &APIError{
			Code:     code,
			Message:  message,
			Redirect: redirect,
		},
		Timestamp: time.Now(),
	})
}

func ValidationErrorResponse(c *gin.Context, message, redirect string, details map[string]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status: StatusError,
		Error: &APIError{
			Code:     "VALIDATION_ERROR",
			Message:  message,
			Details:  details,
			Redirect: redirect,
		},
		Timestamp: time.Now(),
	})
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", ErrInternalServer)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = ErrUnauthorized
	}
	ErrorResponseWithRedirect(c, http.StatusUnauthorized, "UNAUTHORIZED", message, RedirectLogin)
}

func ForbiddenResponse(c *gin.Context, message, redirect string) {
	if message == "" {
		message = ErrForbidden
	}
	ErrorResponseWithRedirect(c, http.StatusForbidden, "FORBIDDEN", message, redirect)
}

func NotFoundResponse(c *gin.Context, resource, redirect string) {
	ErrorResponseWithRedirect(c, http.StatusNotFound, "NOT_FOUND", resource+" not found", redirect)
}

func ConflictResponse(c *gin.Context, message, redirect string) {
	ErrorResponseWithRedirect(c, http.StatusConflict, "CONFLICT", message, redirect)
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}
