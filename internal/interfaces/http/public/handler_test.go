package public

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/3cctech/restaurant-awards-services/api/internal/auth"
	"github.com/3cctech/restaurant-awards-services/api/internal/interfaces/http/common"
	"github.com/3cctech/restaurant-awards-services/api/internal/voting/application"
	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

type stubSessions struct {
	loginAccount *domain.Account
	loginRoute   domain.Step
	loginErr     error
	view         *application.SessionView
	tracked      bool
	agreeErr     error
}

func (s *stubSessions) Login(_ context.Context, _, _ string) (*domain.Account, domain.Step, error) {
	return s.loginAccount, s.loginRoute, s.loginErr
}

func (s *stubSessions) Describe(_ context.Context, _ string) (*application.SessionView, error) {
	return s.view, nil
}

func (s *stubSessions) TrackRoute(_ context.Context, _, _ string) (bool, error) {
	return s.tracked, nil
}

func (s *stubSessions) AgreeTerms(_ context.Context, _ string) error {
	return s.agreeErr
}

type stubGuard struct {
	result application.GuardResult
}

func (s *stubGuard) Check(_ context.Context, _ string, _ domain.Step) (application.GuardResult, error) {
	return s.result, nil
}

type stubSelections struct {
	selection *domain.Selection
	toggleErr error
	nominated *domain.Restaurant
}

func (s *stubSelections) Get(_ context.Context, _ string) (*domain.Selection, error) {
	return s.selection, nil
}

func (s *stubSelections) Toggle(_ context.Context, _ string, _ domain.ListKind, _ domain.RestaurantPick) (*domain.Selection, error) {
	if s.toggleErr != nil {
		return nil, s.toggleErr
	}
	return s.selection, nil
}

func (s *stubSelections) Remove(_ context.Context, _ string, _ domain.ListKind, _ string) (*domain.Selection, error) {
	return s.selection, nil
}

func (s *stubSelections) Nominate(_ context.Context, _ string, _ domain.ListKind, _, _ string) (*domain.Restaurant, *domain.Selection, error) {
	return s.nominated, s.selection, nil
}

type stubRatings struct {
	overview  *application.RatingOverview
	cursor    int
	advErr    error
	submitErr error
}

func (s *stubRatings) Overview(_ context.Context, _ string) (*application.RatingOverview, error) {
	return s.overview, nil
}

func (s *stubRatings) Advance(_ context.Context, _, _ string, _ domain.Rating) (int, error) {
	return s.cursor, s.advErr
}

func (s *stubRatings) Update(_ context.Context, _, _ string, _ domain.Rating) error {
	return nil
}

func (s *stubRatings) Submit(_ context.Context, _ string) error {
	return s.submitErr
}

type stubCatalogue struct {
	entries []domain.Restaurant
	err     error
}

func (s *stubCatalogue) List(_ context.Context, _ string, _ domain.ListKind, _ domain.CatalogueFilter) ([]domain.Restaurant, error) {
	return s.entries, s.err
}

func testIssuer() *auth.Issuer {
	return auth.NewIssuer(auth.Config{
		Secret:   []byte("test-secret"),
		Issuer:   "test",
		Audience: "test",
		TTL:      time.Hour,
	})
}

// fakeAuth injects a fixed principal, standing in for the JWT middleware.
func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := common.ContextWithUser(r.Context(), common.AuthenticatedUser{ID: "a1", Email: "voter@example.com"})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newTestRouter(cfg Config) chi.Router {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Tokens == nil {
		cfg.Tokens = testIssuer()
	}
	router := chi.NewRouter()
	NewHandler(cfg).Register(router, fakeAuth)
	return router
}

func TestLoginReturnsTokenAndRoute(t *testing.T) {
	sessions := &stubSessions{
		loginAccount: &domain.Account{ID: "a1", Email: "voter@example.com", AgreedTerms: true},
		loginRoute:   domain.StepProcess,
	}
	router := newTestRouter(Config{Sessions: sessions})

	body := `{"email":"voter@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"initialRoute":"/process"`)
	assert.Contains(t, rec.Body.String(), `"token":`)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	sessions := &stubSessions{loginErr: domain.ErrInvalidCredentials}
	router := newTestRouter(Config{Sessions: sessions})

	body := `{"email":"voter@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginValidatesBody(t *testing.T) {
	router := newTestRouter(Config{Sessions: &stubSessions{}})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionEmbedsRegion(t *testing.T) {
	sessions := &stubSessions{view: &application.SessionView{
		Account: domain.Account{ID: "a1", Email: "voter@example.com", AgreedTerms: true, AssignedRegion: "west"},
		Region: &domain.Region{ID: "west", Name: "West", Cities: []domain.City{
			{ID: "c1", Name: "Mumbai"},
			{ID: "c2", Name: "Pune"},
		}},
	}}
	router := newTestRouter(Config{Sessions: sessions})

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cities":["Mumbai","Pune"]`)
}

func TestStepGuardRedirects(t *testing.T) {
	guard := &stubGuard{result: application.GuardResult{Allowed: false, Redirect: domain.StepRegionalSelection}}
	router := newTestRouter(Config{Guard: guard})

	req := httptest.NewRequest(http.MethodGet, "/steps/rating", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"allowed":false`)
	assert.Contains(t, rec.Body.String(), `"redirect":"/regional-selection"`)
}

func TestStepGuardUnknownStep(t *testing.T) {
	router := newTestRouter(Config{Guard: &stubGuard{}})

	req := httptest.NewRequest(http.MethodGet, "/steps/backstage", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleMapsValidationErrors(t *testing.T) {
	selections := &stubSelections{toggleErr: domain.NewValidationError("unknown selection list")}
	router := newTestRouter(Config{Selections: selections})

	body := `{"id":"r1","name":"Trishna","city":"Mumbai"}`
	req := httptest.NewRequest(http.MethodPost, "/selection/regional/toggle", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown selection list")
}

func TestSelectionRoundTrip(t *testing.T) {
	selection := domain.NewSelection("a1")
	selection.Toggle(domain.RegionalList, domain.RestaurantPick{ID: "r1", Name: "Trishna", City: "Mumbai"})
	router := newTestRouter(Config{Selections: &stubSelections{selection: selection}})

	req := httptest.NewRequest(http.MethodGet, "/selection", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"regional":[{"id":"r1","name":"Trishna","city":"Mumbai"}]`)
	assert.Contains(t, rec.Body.String(), `"national":[]`)
}

func TestCatalogueListPassesFilter(t *testing.T) {
	catalogue := &stubCatalogue{entries: []domain.Restaurant{{ID: "r1", Name: "Trishna", City: "Mumbai"}}}
	router := newTestRouter(Config{Catalogue: catalogue})

	req := httptest.NewRequest(http.MethodGet, "/restaurants?scope=regional&city=Mumbai&search=tri", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Trishna"`)
}

func TestAdvanceRefusalSurfacesMessage(t *testing.T) {
	ratings := &stubRatings{advErr: domain.NewValidationError("rate all three categories before moving on")}
	router := newTestRouter(Config{Ratings: ratings})

	body := `{"restaurantId":"r1","rating":{"food":4,"service":4,"ambience":5}}`
	req := httptest.NewRequest(http.MethodPost, "/ratings/advance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate all three categories")
}

func TestAdvanceValidatesScores(t *testing.T) {
	router := newTestRouter(Config{Ratings: &stubRatings{}})

	body := `{"restaurantId":"r1","rating":{"food":6,"service":4,"ambience":5}}`
	req := httptest.NewRequest(http.MethodPost, "/ratings/advance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitPointsAtThankYou(t *testing.T) {
	router := newTestRouter(Config{Ratings: &stubRatings{}})

	req := httptest.NewRequest(http.MethodPost, "/ratings/submit", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"next":"/thank-you"`)
}

func TestRatingOverviewPayload(t *testing.T) {
	ratings := &stubRatings{overview: &application.RatingOverview{
		Items: []application.RatedItem{
			{
				Pick:   domain.RestaurantPick{ID: "r1", Name: "Trishna", City: "Mumbai"},
				Rating: domain.Rating{Food: 4, Service: 3, Ambience: 5},
			},
		},
		Cursor: 1,
	}}
	router := newTestRouter(Config{Ratings: ratings})

	req := httptest.NewRequest(http.MethodGet, "/ratings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cursor":1`)
	assert.Contains(t, rec.Body.String(), `"food":4`)
}
