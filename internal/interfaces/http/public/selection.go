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

func (h *Handler) selectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		selection, err := h.selections.Get(ctx, user.ID)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("selection fetch failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to load selection")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildSelectionResponse(selection))
	}
}

// selectionToggleHandler adds or removes a pick. Appends beyond capacity or
// across lists are refused with a 400.
func (h *Handler) selectionToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		kind := domain.ListKind(strings.TrimSpace(chi.URLParam(r, "list")))

		var req toggleRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "id, name and city are required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		pick := domain.RestaurantPick{ID: req.ID, Name: req.Name, City: req.City}
		selection, err := h.selections.Toggle(ctx, user.ID, kind, pick)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("toggle failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to update selection")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildSelectionResponse(selection))
	}
}

func (h *Handler) selectionRemoveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		kind := domain.ListKind(strings.TrimSpace(chi.URLParam(r, "list")))
		restaurantID := strings.TrimSpace(chi.URLParam(r, "id"))
		if restaurantID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "restaurant id is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		selection, err := h.selections.Remove(ctx, user.ID, kind, restaurantID)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("remove failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to update selection")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildSelectionResponse(selection))
	}
}
