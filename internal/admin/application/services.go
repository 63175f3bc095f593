package application

import (
	"context"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
)

// VoterRepository exposes admin operations on voter accounts.
type VoterRepository interface {
	// List returns non-admin accounts whose email contains search
	// (case-insensitive); an empty search returns every voter.
	List(ctx context.Context, search string) ([]admindomain.Voter, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// RatingLogRepository allows listing, counting, and aggregating submitted
// ratings.
type RatingLogRepository interface {
	ListSubmitted(ctx context.Context) ([]admindomain.SubmittedRow, error)
	CountSubmitted(ctx context.Context) (int64, error)
	// AverageByRestaurant groups submitted rows per restaurant with the
	// per-axis averages and the number of submissions.
	AverageByRestaurant(ctx context.Context) ([]admindomain.RestaurantInsight, error)
}

// ResetRepository performs the destructive half of a voter reset.
type ResetRepository interface {
	// ResetAccount rewinds the account to a fresh state: terms not agreed,
	// not completed, last visited page back to the terms step.
	ResetAccount(ctx context.Context, accountID string) error
	DeleteSubmittedRatings(ctx context.Context, accountID string) error
	ClearSelection(ctx context.Context, accountID string) error
}

// OverviewService describes the dashboard and ratings-table use-cases.
type OverviewService interface {
	Dashboard(ctx context.Context) (admindomain.DashboardCounts, error)
	Ratings(ctx context.Context) ([]admindomain.SubmittedRow, error)
	Insights(ctx context.Context) ([]admindomain.RestaurantInsight, error)
}

// VoterService describes the user-table use-case.
type VoterService interface {
	List(ctx context.Context, search string) ([]admindomain.Voter, error)
}

// ResetService describes the two-phase voter reset. Request hands out a
// short-lived confirm token; Confirm spends it and performs the reset.
type ResetService interface {
	Request(ctx context.Context, accountID string) (string, error)
	Confirm(ctx context.Context, accountID, confirmToken string) error
}
