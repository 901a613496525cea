package rest

import (
	"errors"
	"net/http"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/pkg/logger"
	"github.com/flickstack/rental-api/internal/transport/rest/response"
)

// statusRetryWith is the legacy 449 the API has always used for missing or
// unusable request fields. Clients key off it, so it stays.
const statusRetryWith = 449

// handleErr maps domain outcomes to their fixed status and message. Anything
// unrecognized is a store failure and surfaces as a generic database error.
func handleErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNoTokenProvided):
		response.Fail(w, statusRetryWith, "No token provided")
	case errors.Is(err, domain.ErrSecurityQuestionNotSet):
		response.Fail(w, statusRetryWith, "Security question not set")
	case errors.Is(err, domain.ErrIncorrectAnswer):
		response.Fail(w, statusRetryWith, "Incorrect answer")
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Fail(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrSessionTimeout):
		response.Fail(w, http.StatusRequestTimeout, "Session timeout")
	case errors.Is(err, domain.ErrUserNotFound):
		response.Fail(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrCustomerNotFound):
		response.Fail(w, http.StatusNotFound, "Customer not found")
	case errors.Is(err, domain.ErrMovieNotFound):
		response.Fail(w, http.StatusNotFound, "Movie not found")
	case errors.Is(err, domain.ErrIDExists):
		response.Fail(w, http.StatusBadRequest, "ID already exists")
	case errors.Is(err, domain.ErrUPCExists):
		response.Fail(w, http.StatusBadRequest, "UPC already exists")
	case errors.Is(err, domain.ErrCopyIDExists):
		response.Fail(w, statusRetryWith, "Copy ID already exists")
	default:
		logger.WithCtx(r.Context()).Error().Err(err).Msg("store failure")
		response.Fail(w, http.StatusInternalServerError, "Database error")
	}
}
