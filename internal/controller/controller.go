// Package controller holds the mapping from the lifecycle error taxonomy to
// transport responses, shared by every handler subpackage.
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/lifecycle"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/utilities"
)

// RespondError translates a typed lifecycle outcome into an HTTP response.
// The full error is logged; the body carries a generic per-kind message,
// except for insufficient credits whose specifics are safe and useful to
// show the caller.
func RespondError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)

	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid request"})
	case errors.Is(err, lifecycle.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, lifecycle.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "An application with this email already exists for this job"})
	case errors.Is(err, lifecycle.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Request was already processed"})
	case errors.Is(err, lifecycle.ErrPreconditionFailed):
		c.JSON(http.StatusPreconditionFailed, utilities.ErrorResponse{Error: "Operation not allowed in the current state"})
	case errors.Is(err, lifecycle.ErrInsufficientCredits):
		c.JSON(http.StatusPaymentRequired, utilities.ErrorResponse{Error: err.Error()})
	case errors.Is(err, lifecycle.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, utilities.ErrorResponse{Error: "Service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
	}
}
