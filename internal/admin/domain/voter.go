package domain

import "time"

// Voter is the admin-side projection of a voting account. Admin accounts
// never appear in this projection.
type Voter struct {
	ID              string
	Email           string
	AgreedTerms     bool
	IsCompleted     bool
	LastVisitedPage string
	CreatedAt       time.Time
}

// DashboardCounts backs the admin landing page.
type DashboardCounts struct {
	TotalUsers   int64
	TotalRatings int64
}

// RestaurantInsight is the per-restaurant aggregate over submitted ratings:
// one row per rated restaurant with the per-axis averages and the number of
// submissions behind them.
type RestaurantInsight struct {
	RestaurantID   string
	RestaurantName string
	FoodAvg        float64
	ServiceAvg     float64
	AmbienceAvg    float64
	Submissions    int64
}

// SubmittedRow is one immutable submitted rating joined with the voter's
// email for the admin table.
type SubmittedRow struct {
	AccountID      string
	VoterEmail     string
	RestaurantID   string
	RestaurantName string
	Food           int
	Service        int
	Ambience       int
	SubmittedAt    time.Time
}
