package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every non-2xx response. Successful responses
// return the entity (or sequence) directly.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type errorBody struct {
	Status string    `json:"status"`
	Error  *APIError `json:"error"`
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, errorBody{
		Status: StatusError,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

func ValidationErrorResponse(c *gin.Context, details interface{}) {
	c.JSON(http.StatusUnprocessableEntity, errorBody{
		Status: StatusError,
		Error: &APIError{
			Code:    "VALIDATION_ERROR",
			Message: ErrValidationFailed,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", resource+" not found")
}

func NotFoundByIDResponse(c *gin.Context, resource string, id int64) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("%s with ID %d not found", resource, id))
}

func InternalServerErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

func BadGatewayResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", message)
}
