package handlers

import (
	"errors"
	"net/http"

	"github.com/arbipangestu/Jubeli/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Pagination is the meta block attached to list responses.
type Pagination struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	LastPage int   `json:"last_page"`
}

// APIResponse is the unified response envelope.
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Pagination `json:"meta,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse returns a successful response.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// SuccessListResponse returns a successful paginated response.
func SuccessListResponse(c *gin.Context, message string, data interface{}, meta Pagination) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
		Meta:    &meta,
	})
}

// ErrorResponse returns a failed response.
func ErrorResponse(c *gin.Context, statusCode int, message string, err string) {
	c.JSON(statusCode, APIResponse{
		Status:  false,
		Message: message,
		Error:   err,
	})
}

// ServiceErrorResponse maps a service error onto the HTTP taxonomy.
// Unexpected store errors are logged server-side and surfaced as a
// generic message so no internal detail leaks to the caller.
func ServiceErrorResponse(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, message, err.Error())
	case errors.Is(err, services.ErrValidation):
		ErrorResponse(c, http.StatusBadRequest, message, err.Error())
	case errors.Is(err, services.ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, message, err.Error())
	case errors.Is(err, services.ErrDuplicate):
		ErrorResponse(c, http.StatusConflict, message, err.Error())
	default:
		logrus.Errorf("%s: %v", message, err)
		ErrorResponse(c, http.StatusInternalServerError, message, "internal server error")
	}
}
