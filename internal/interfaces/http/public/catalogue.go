package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// restaurantListHandler serves the candidate list for one selection phase.
// scope=regional|national; the filter never returns anything without a
// search term.
func (h *Handler) restaurantListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		queryValues := r.URL.Query()
		kind := domain.ListKind(strings.TrimSpace(queryValues.Get("scope")))
		filter := domain.CatalogueFilter{
			City:   strings.TrimSpace(queryValues.Get("city")),
			Search: queryValues.Get("search"),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := h.catalogue.List(ctx, user.ID, kind, filter)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("catalogue fetch failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to load restaurants")
			return
		}

		items := make([]restaurantResponse, 0, len(entries))
		for _, entry := range entries {
			items = append(items, restaurantResponse{ID: entry.ID, Name: entry.Name, City: entry.City})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

// restaurantNominateHandler adds a voter-typed restaurant to the catalogue
// and to the current list in one step.
func (h *Handler) restaurantNominateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req nominateRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "name and city are required")
			return
		}

		kind := domain.ListKind(strings.TrimSpace(r.URL.Query().Get("scope")))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		restaurant, selection, err := h.selections.Nominate(ctx, user.ID, kind, req.Name, req.City)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("nominate failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to nominate restaurant")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, map[string]any{
			"restaurant": restaurantResponse{ID: restaurant.ID, Name: restaurant.Name, City: restaurant.City},
			"selection":  buildSelectionResponse(selection),
		})
	}
}
