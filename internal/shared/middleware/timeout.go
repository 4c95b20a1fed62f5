package middleware

import (
	"context"
	"errors"
	"time"

	sharedError "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout replaces the request context with one that expires after timeout.
// GORM queries started with db.WithContext(ctx) are cancelled at the deadline.
// If the handler has not written a response by then, a 503 (ERROR-004) is sent.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logger.FromContext(c.Request.Context()).Warn("Request deadline exceeded",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"timeout", timeout.String(),
			"status", c.Writer.Status(),
		)

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(sharedError.RequestTimeout.Status, sharedError.RequestTimeout)
		}
	}
}

// IsTimeout reports whether the request deadline has passed
func IsTimeout(c *gin.Context) bool {
	return errors.Is(c.Request.Context().Err(), context.DeadlineExceeded)
}
