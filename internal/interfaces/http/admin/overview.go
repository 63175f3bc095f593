package admin

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
)

func (h *Handler) dashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		counts, err := h.overview.Dashboard(ctx)
		if err != nil {
			h.logger.Error("admin dashboard failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load dashboard")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, dashboardResponse{
			TotalUsers:   counts.TotalUsers,
			TotalRatings: counts.TotalRatings,
		})
	}
}

func (h *Handler) insightListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		insights, err := h.overview.Insights(ctx)
		if err != nil {
			h.logger.Error("admin insight list failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load insights")
			return
		}

		items := make([]insightResponse, 0, len(insights))
		for _, insight := range insights {
			items = append(items, buildInsightResponse(insight))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}

func (h *Handler) ratingListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		rows, err := h.overview.Ratings(ctx)
		if err != nil {
			h.logger.Error("admin rating list failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load ratings")
			return
		}

		items := make([]submittedRowResponse, 0, len(rows))
		for _, row := range rows {
			items = append(items, buildSubmittedRowResponse(row))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"items": items})
	}
}
