package domain

import "time"

// Rating holds the three scoring axes for one restaurant. Each axis is an
// integer 1-5; zero means the axis has not been set yet.
type Rating struct {
	Food     int
	Service  int
	Ambience int
}

// FullyRated reports whether all three axes have been scored.
func (r Rating) FullyRated() bool {
	return r.Food >= 1 && r.Service >= 1 && r.Ambience >= 1
}

// ValidScores reports whether every axis is inside the 1-5 scale.
func (r Rating) ValidScores() bool {
	for _, v := range []int{r.Food, r.Service, r.Ambience} {
		if v < 1 || v > 5 {
			return false
		}
	}
	return true
}

// RatingCursor returns the index of the first pick whose rating is
// incomplete. When every pick is fully rated the cursor rests at 0.
func RatingCursor(picks []RestaurantPick, ratings map[string]Rating) int {
	for i, p := range picks {
		if !ratings[p.ID].FullyRated() {
			return i
		}
	}
	return 0
}

// SubmittedRating is the immutable per-(account, restaurant) row written at
// submission time for reporting.
type SubmittedRating struct {
	AccountID      string
	RestaurantID   string
	RestaurantName string
	Food           int
	Service        int
	Ambience       int
	SubmittedAt    time.Time
}
