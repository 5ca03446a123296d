package v1

import (
	"errors"
	"net/http"

	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/apperror"
	"kamenpro-backend/pkg/logger"
)

// toAppError maps a form submission failure to the client response.
// Configuration and dispatch details stay in the server log.
func toAppError(err error, dispatchMsg string) *apperror.AppError {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return apperror.BadRequest(vErr.Message)
	}

	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		logger.Log.Error("Mail transport is not configured",
			"transport", cfgErr.Transport,
			"missing", cfgErr.Missing,
		)
	}
	return apperror.New(http.StatusInternalServerError, dispatchMsg, err)
}
