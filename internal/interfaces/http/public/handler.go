package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/3cctech/restaurant-awards-services/api/internal/auth"
	votingapp "github.com/3cctech/restaurant-awards-services/api/internal/voting/application"
)

// Handler wires voter-facing HTTP endpoints to application services.
type Handler struct {
	logger     *zap.Logger
	tokens     *auth.Issuer
	sessions   votingapp.SessionService
	guard      votingapp.StepGuardService
	selections votingapp.SelectionService
	ratings    votingapp.RatingService
	catalogue  votingapp.CatalogueService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger     *zap.Logger
	Tokens     *auth.Issuer
	Sessions   votingapp.SessionService
	Guard      votingapp.StepGuardService
	Selections votingapp.SelectionService
	Ratings    votingapp.RatingService
	Catalogue  votingapp.CatalogueService
}

// NewHandler constructs the voter-facing HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:     cfg.Logger,
		tokens:     cfg.Tokens,
		sessions:   cfg.Sessions,
		guard:      cfg.Guard,
		selections: cfg.Selections,
		ratings:    cfg.Ratings,
		catalogue:  cfg.Catalogue,
	}
}

// Register mounts all voter routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/auth/login", h.loginHandler())

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/auth/verify", h.authVerifyHandler())
		r.Get("/session", h.sessionHandler())
		r.Post("/session/route", h.routeTrackHandler())
		r.Get("/steps/{step}", h.stepGuardHandler())
		r.Post("/terms/agree", h.termsAgreeHandler())
		r.Get("/restaurants", h.restaurantListHandler())
		r.Post("/restaurants", h.restaurantNominateHandler())
		r.Get("/selection", h.selectionHandler())
		r.Post("/selection/{list}/toggle", h.selectionToggleHandler())
		r.Delete("/selection/{list}/{id}", h.selectionRemoveHandler())
		r.Get("/ratings", h.ratingOverviewHandler())
		r.Post("/ratings/advance", h.ratingAdvanceHandler())
		r.Put("/ratings/{id}", h.ratingUpdateHandler())
		r.Post("/ratings/submit", h.ratingSubmitHandler())
	})
}
