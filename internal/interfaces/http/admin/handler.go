package admin

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminapp "github.com/3cctech/restaurant-awards-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger   *zap.Logger
	overview adminapp.OverviewService
	voters   adminapp.VoterService
	resets   adminapp.ResetService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger   *zap.Logger
	Overview adminapp.OverviewService
	Voters   adminapp.VoterService
	Resets   adminapp.ResetService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:   cfg.Logger,
		overview: cfg.Overview,
		voters:   cfg.Voters,
		resets:   cfg.Resets,
	}
}

// Register mounts admin routes onto router. The caller guards the whole
// subtree with the isAdmin middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/dashboard", h.dashboardHandler())
	r.Get("/users", h.userListHandler())
	r.Post("/users/{id}/reset", h.resetRequestHandler())
	r.Post("/users/{id}/reset/confirm", h.resetConfirmHandler())
	r.Get("/ratings", h.ratingListHandler())
	r.Get("/insights", h.insightListHandler())
}
