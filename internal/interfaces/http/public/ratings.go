package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

func (h *Handler) ratingOverviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		overview, err := h.ratings.Overview(ctx, user.ID)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("rating overview failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to load ratings")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildRatingOverviewResponse(overview))
	}
}

// ratingAdvanceHandler is the sequential flow's next button. It refuses to
// move past an incompletely rated restaurant.
func (h *Handler) ratingAdvanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req advanceRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "each rating must be between 1 and 5")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rating := domain.Rating{Food: req.Rating.Food, Service: req.Rating.Service, Ambience: req.Rating.Ambience}
		cursor, err := h.ratings.Advance(ctx, user.ID, req.RestaurantID, rating)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("rating advance failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to save rating")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]int{"cursor": cursor})
	}
}

// ratingUpdateHandler is the edit dialog on the final overview: one complete
// rating, saved immediately.
func (h *Handler) ratingUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		restaurantID := strings.TrimSpace(chi.URLParam(r, "id"))
		if restaurantID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "restaurant id is required")
			return
		}

		var req ratingPayload
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "each rating must be between 1 and 5")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rating := domain.Rating{Food: req.Food, Service: req.Service, Ambience: req.Ambience}
		if err := h.ratings.Update(ctx, user.ID, restaurantID, rating); err != nil {
			if isInternal(err) {
				h.logger.Error("rating update failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to save rating")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"saved": true})
	}
}

func (h *Handler) ratingSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := h.ratings.Submit(ctx, user.ID); err != nil {
			if isInternal(err) {
				h.logger.Error("rating submit failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to submit ratings")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"next": string(domain.StepThankYou)})
	}
}
