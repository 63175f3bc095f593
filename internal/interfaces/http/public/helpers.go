package public

import (
	"errors"
	"net/http"

	"github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// writeDomainError maps service errors onto HTTP statuses. Anything
// unrecognized is an internal error and gets logged by the caller.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error, fallback string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		common.WriteError(h.logger, w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, domain.ErrInvalidCredentials):
		common.WriteError(h.logger, w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrNotFound):
		common.WriteError(h.logger, w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		common.WriteError(h.logger, w, http.StatusConflict, "already exists")
	default:
		common.WriteError(h.logger, w, http.StatusInternalServerError, fallback)
	}
}

// isInternal reports whether err falls through to the 500 branch above.
func isInternal(err error) bool {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return false
	}
	return !errors.Is(err, domain.ErrInvalidCredentials) &&
		!errors.Is(err, domain.ErrNotFound) &&
		!errors.Is(err, domain.ErrAlreadyExists)
}
