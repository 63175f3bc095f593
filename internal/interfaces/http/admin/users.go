package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
	"github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
)

func (h *Handler) userListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		voters, err := h.voters.List(ctx, r.URL.Query().Get("search"))
		if err != nil {
			h.logger.Error("admin user list failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load users")
			return
		}

		items := make([]voterResponse, 0, len(voters))
		for _, voter := range voters {
			items = append(items, buildVoterResponse(voter))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

// resetRequestHandler is the first half of the destructive reset: it only
// hands out a short-lived token the admin UI echoes back to confirm.
func (h *Handler) resetRequestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := strings.TrimSpace(chi.URLParam(r, "id"))

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		token, err := h.resets.Request(ctx, accountID)
		if err != nil {
			if errors.Is(err, admindomain.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "user not found")
				return
			}
			h.logger.Error("reset request failed", zap.String("account", accountID), zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to start reset")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"confirmToken": token})
	}
}

func (h *Handler) resetConfirmHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := strings.TrimSpace(chi.URLParam(r, "id"))

		var req resetConfirmRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}
		if strings.TrimSpace(req.ConfirmToken) == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "confirmToken is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := h.resets.Confirm(ctx, accountID, req.ConfirmToken); err != nil {
			if errors.Is(err, admindomain.ErrInvalidConfirmToken) {
				common.WriteError(h.logger, w, http.StatusConflict, "invalid or expired confirm token")
				return
			}
			h.logger.Error("reset confirm failed", zap.String("account", accountID), zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to reset user")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"reset": true})
	}
}
