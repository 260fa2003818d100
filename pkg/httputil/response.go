package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aorbo/booking-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Kind    errors.Kind `json:"kind"`
	Message string      `json:"message"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithCreated sends a success response for a newly created resource
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error response with a status derived from the
// error kind. Storage faults deliberately surface as 500s, never as an
// empty result.
func RespondWithError(c *gin.Context, err error) {
	kind := errors.KindInternal
	message := "internal server error"

	if appErr, ok := err.(*errors.AppError); ok {
		kind = appErr.Kind
		message = appErr.Message
	}

	c.JSON(statusForKind(kind), Response{
		Success: false,
		Error: &Error{
			Kind:    kind,
			Message: message,
		},
	})
}

func statusForKind(kind errors.Kind) int {
	switch kind {
	case errors.KindMissingField,
		errors.KindNotAvailableDay,
		errors.KindInvalidWindow,
		errors.KindSlotNotOffered,
		errors.KindBadRequest:
		return http.StatusBadRequest
	case errors.KindUnknownProvider, errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindSlotConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
