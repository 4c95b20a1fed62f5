package handler

import (
	"context"
	"errors"
	"net/http"

	sharedError "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req SignupRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		// Check if it's a validation error
		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// RespondError sends an error response with logging
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	c.JSON(errResp.Status, errResp)
}

// RespondServiceError resolves registered domain errors. A passed request deadline
// becomes 503 (ERROR-004); anything else, persistence failures included, becomes 500 (ERROR-003).
//
// Usage:
//
//	if err := service.DoSomething(ctx); err != nil {
//	    handler.RespondServiceError(c, err)
//	    return
//	}
func RespondServiceError(c *gin.Context, err error) {
	if _, ok := sharedError.ResolveDomainError(err); !ok && errors.Is(err, context.DeadlineExceeded) {
		RespondError(c, err, sharedError.RequestTimeout)
		return
	}

	RespondError(c, err, sharedError.ResponseFor(err))
}
