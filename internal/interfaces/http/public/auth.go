package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
)

func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "email and password are required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		account, route, err := h.sessions.Login(ctx, req.Email, req.Password)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("login failed", zap.Error(err))
			}
			h.writeDomainError(w, err, "login failed")
			return
		}

		token, err := h.tokens.Issue(account.ID, account.Email)
		if err != nil {
			h.logger.Error("issue token", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "login failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, loginResponse{
			Token:        token,
			Account:      buildAccountResponse(*account),
			InitialRoute: string(route),
		})
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"user": user})
	}
}

func (h *Handler) sessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		view, err := h.sessions.Describe(ctx, user.ID)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("describe session failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to load session")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, sessionResponse{
			Account: buildAccountResponse(view.Account),
			Region:  buildRegionResponse(view.Region),
		})
	}
}

func (h *Handler) routeTrackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req routeTrackRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "malformed request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "path is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		tracked, err := h.sessions.TrackRoute(ctx, user.ID, req.Path)
		if err != nil {
			if isInternal(err) {
				h.logger.Error("track route failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to track route")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"tracked": tracked})
	}
}

func (h *Handler) termsAgreeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.sessions.AgreeTerms(ctx, user.ID); err != nil {
			if isInternal(err) {
				h.logger.Error("agree terms failed", zap.String("account", user.ID), zap.Error(err))
			}
			h.writeDomainError(w, err, "failed to record agreement")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"agreed": true})
	}
}
