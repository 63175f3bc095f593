package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// stepGuardHandler answers "may this step render". The SPA calls it on every
// navigation into a wizard step and follows the redirect when refused.
func (h *Handler) stepGuardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		step := domain.Step("/" + strings.TrimSpace(chi.URLParam(r, "step")))
		if !domain.KnownStep(string(step)) {
			common.WriteError(h.logger, w, http.StatusNotFound, "unknown step")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := h.guard.Check(ctx, user.ID, step)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("step guard failed", zap.String("account", user.ID), zap.String("step", string(step)), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to evaluate step")
			return
		}

		resp := stepGuardResponse{Allowed: result.Allowed}
		if !result.Allowed {
			resp.Redirect = string(result.Redirect)
		}
		common.WriteJSON(h.logger, w, http.StatusOK, resp)
	}
}
