package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	adminapp "github.com/3cctech/restaurant-awards-services/api/internal/admin/application"
	"github.com/3cctech/restaurant-awards-services/api/internal/auth"
	"github.com/3cctech/restaurant-awards-services/api/internal/config"
	mongodoc "github.com/3cctech/restaurant-awards-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
	publichttp "github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/public"
	votingapp "github.com/3cctech/restaurant-awards-services/api/internal/voting/application"
)

// Server is the composition root: it assembles repositories, application
// services and HTTP handlers, and manages the server lifecycle.
type Server struct {
	logger   *zap.Logger
	client   *mongo.Client
	database *mongo.Database
	tokens   *auth.Issuer

	accounts *mongodoc.AccountRepository

	sessions   votingapp.SessionService
	guard      votingapp.StepGuardService
	selections votingapp.SelectionService
	ratings    votingapp.RatingService
	catalogue  votingapp.CatalogueService

	adminOverview adminapp.OverviewService
	adminVoters   adminapp.VoterService
	adminResets   adminapp.ResetService

	addr           string
	allowedOrigins []string
}

// New assembles the full dependency graph from config and a connected Mongo
// client.
func New(cfg config.Config, client *mongo.Client, logger *zap.Logger) *Server {
	database := client.Database(cfg.MongoDatabase)

	accountRepo := mongodoc.NewAccountRepository(database, cfg.AccountCollection)
	regionRepo := mongodoc.NewRegionRepository(database, cfg.RegionCollection)
	restaurantRepo := mongodoc.NewRestaurantRepository(database, cfg.RestaurantCollection)
	selectionRepo := mongodoc.NewSelectionRepository(database, cfg.SelectionCollection)
	submissionRepo := mongodoc.NewSubmissionRepository(database, cfg.SubmittedRatingCollection)

	voterRepo := mongodoc.NewAdminVoterRepository(database, cfg.AccountCollection)
	ratingLogRepo := mongodoc.NewAdminRatingRepository(database, cfg.SubmittedRatingCollection, cfg.AccountCollection)
	resetRepo := mongodoc.NewAdminResetRepository(database, cfg.AccountCollection, cfg.SubmittedRatingCollection, cfg.SelectionCollection)

	return &Server{
		logger:   logger,
		client:   client,
		database: database,
		tokens: auth.NewIssuer(auth.Config{
			Secret:   cfg.JWTSecret,
			Issuer:   cfg.JWTIssuer,
			Audience: cfg.JWTAudience,
			TTL:      cfg.TokenTTL,
		}),
		accounts:       accountRepo,
		sessions:       votingapp.NewSessionService(accountRepo, regionRepo, selectionRepo),
		guard:          votingapp.NewStepGuardService(accountRepo, selectionRepo),
		selections:     votingapp.NewSelectionService(accountRepo, regionRepo, restaurantRepo, selectionRepo),
		ratings:        votingapp.NewRatingService(accountRepo, selectionRepo, submissionRepo),
		catalogue:      votingapp.NewCatalogueService(accountRepo, restaurantRepo, selectionRepo),
		adminOverview:  adminapp.NewOverviewService(voterRepo, ratingLogRepo),
		adminVoters:    adminapp.NewVoterService(voterRepo),
		adminResets:    adminapp.NewResetService(voterRepo, resetRepo, cfg.ResetConfirmTTL),
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}
}

// Run starts the HTTP server and blocks until the process is signalled or
// the listener fails.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:     s.logger,
		Tokens:     s.tokens,
		Sessions:   s.sessions,
		Guard:      s.guard,
		Selections: s.selections,
		Ratings:    s.ratings,
		Catalogue:  s.catalogue,
	})
	publicHandler.Register(router, s.authMiddleware)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:   s.logger,
		Overview: s.adminOverview,
		Voters:   s.adminVoters,
		Resets:   s.adminResets,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.adminOnly)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	return s.waitForShutdown(httpServer, errChan)
}

// authMiddleware validates the bearer token and stores the principal into
// the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "bearer token required")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "access token is empty")
			return
		}

		claims, err := s.tokens.Parse(tokenString)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "invalid access token")
			return
		}

		user := commonhttp.AuthenticatedUser{ID: claims.Subject, Email: claims.Email}
		next.ServeHTTP(w, r.WithContext(commonhttp.ContextWithUser(r.Context(), user)))
	})
}

// adminOnly re-checks the isAdmin flag against the store on every request so
// a revoked admin loses access without waiting for token expiry.
func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := commonhttp.UserFromContext(r.Context())
		if !ok {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		account, err := s.accounts.FindByID(ctx, user.ID)
		if err != nil || !account.IsAdmin {
			commonhttp.WriteError(s.logger, w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withCORS grants the configured origins access; "*" allows everything.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler reports infrastructure reachability only.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// waitForShutdown watches the listener and OS signals and drains in-flight
// requests before disconnecting from Mongo.
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.disconnect()
			return err
		}
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("server shutdown", zap.Error(err))
		}
	}

	s.disconnect()
	return nil
}

func (s *Server) disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		s.logger.Error("mongo disconnect", zap.Error(err))
	}
}
