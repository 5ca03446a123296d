package middleware

import (
	"errors"
	"net/http"

	"kamenpro-backend/internal/delivery/http/response"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/apperror"
	"kamenpro-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// MsgUnexpected is returned for errors that carry no client message
const MsgUnexpected = "Dogodila se greška prilikom slanja upita. Molimo pokušajte ponovo kasnije ili nas kontaktirajte telefonom."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", reqID,
					"path", c.Request.URL.Path,
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal Server Error",
			"request_id", reqID,
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, MsgUnexpected)
	}
}
