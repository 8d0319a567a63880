package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error in the API's
// error envelope, unless a response has already been written. Errors that
// are not AppErrors, and AppErrors carrying an internal cause, are logged
// against the request and user before a generic body is returned.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if appErr.Internal != nil {
			logger.For(c.GetString("userID")).Errorw("request failed",
				"request_id", c.GetString(requestIDKey),
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}

		c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

// RouteNotFound reports an unknown route through ErrorHandler so clients
// get the same envelope as for every other error.
func RouteNotFound(c *gin.Context) {
	_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "No route for "+c.Request.Method+" "+c.Request.URL.Path))
}
