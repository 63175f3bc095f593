package application

import (
	"context"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// AccountRepository is the voting context's port onto the account rows.
// Accounts are pre-provisioned; the service only flips their progress flags.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	SetAgreedTerms(ctx context.Context, id string, agreed bool) error
	SetLastVisitedPage(ctx context.Context, id, path string) error
	SetCompleted(ctx context.Context, id string, completed bool) error
}

// RegionRepository reads the read-only region/city catalogue.
type RegionRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Region, error)
	CityExists(ctx context.Context, name string) (bool, error)
}

// CatalogueQuery narrows a catalogue fetch. An empty RegionID fetches the
// national catalogue.
type CatalogueQuery struct {
	RegionID string
}

// RestaurantRepository reads and extends the restaurant catalogue.
type RestaurantRepository interface {
	Find(ctx context.Context, query CatalogueQuery) ([]domain.Restaurant, error)
	Exists(ctx context.Context, name, city, regionID string) (bool, error)
	Insert(ctx context.Context, restaurant *domain.Restaurant) error
}

// SelectionRepository persists the per-account selection record. Save
// upserts the whole record so every mutation is durable immediately.
type SelectionRepository interface {
	FindByAccount(ctx context.Context, accountID string) (*domain.Selection, error)
	Save(ctx context.Context, selection *domain.Selection) error
}

// SubmissionRepository appends the write-once submitted rating rows.
type SubmissionRepository interface {
	InsertAll(ctx context.Context, rows []domain.SubmittedRating) error
}

// SessionView is the authenticated account together with its assigned
// region, which is nil for administrators and unassigned accounts.
type SessionView struct {
	Account domain.Account
	Region  *domain.Region
}

// SessionService covers login routing, session description, terms acceptance
// and the last-visited-page side channel.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*domain.Account, domain.Step, error)
	Describe(ctx context.Context, accountID string) (*SessionView, error)
	TrackRoute(ctx context.Context, accountID, path string) (bool, error)
	AgreeTerms(ctx context.Context, accountID string) error
}

// GuardResult tells the caller whether a step may render and where to go
// instead when it may not.
type GuardResult struct {
	Allowed  bool
	Redirect domain.Step
}

// StepGuardService re-evaluates step prerequisites from fresh state on every
// navigation into a guarded step.
type StepGuardService interface {
	Check(ctx context.Context, accountID string, target domain.Step) (GuardResult, error)
}

// SelectionService maintains the two capacity-bounded pick lists.
type SelectionService interface {
	Get(ctx context.Context, accountID string) (*domain.Selection, error)
	Toggle(ctx context.Context, accountID string, kind domain.ListKind, pick domain.RestaurantPick) (*domain.Selection, error)
	Remove(ctx context.Context, accountID string, kind domain.ListKind, restaurantID string) (*domain.Selection, error)
	Nominate(ctx context.Context, accountID string, kind domain.ListKind, name, city string) (*domain.Restaurant, *domain.Selection, error)
}

// RatedItem pairs a pick with whatever rating it has so far.
type RatedItem struct {
	Pick   domain.RestaurantPick
	Rating domain.Rating
}

// RatingOverview is the merged working set with the derived edit cursor.
type RatingOverview struct {
	Items  []RatedItem
	Cursor int
}

// RatingService drives the sequential rating flow, the post-hoc edit dialog
// and the terminal submission.
type RatingService interface {
	Overview(ctx context.Context, accountID string) (*RatingOverview, error)
	Advance(ctx context.Context, accountID, restaurantID string, rating domain.Rating) (int, error)
	Update(ctx context.Context, accountID, restaurantID string, rating domain.Rating) error
	Submit(ctx context.Context, accountID string) error
}

// CatalogueService lists filtered candidates for a selection phase.
type CatalogueService interface {
	List(ctx context.Context, accountID string, kind domain.ListKind, filter domain.CatalogueFilter) ([]domain.Restaurant, error)
}
