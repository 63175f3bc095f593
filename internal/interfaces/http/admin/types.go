package admin

import (
	"time"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
)

type dashboardResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalRatings int64 `json:"totalRatings"`
}

type voterResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	AgreedTerms     bool      `json:"agreedTerms"`
	IsCompleted     bool      `json:"isCompleted"`
	LastVisitedPage string    `json:"lastVisitedPage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type resetConfirmRequest struct {
	ConfirmToken string `json:"confirmToken"`
}

type submittedRowResponse struct {
	AccountID      string    `json:"accountId"`
	VoterEmail     string    `json:"voterEmail,omitempty"`
	RestaurantID   string    `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	Food           int       `json:"food"`
	Service        int       `json:"service"`
	Ambience       int       `json:"ambience"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

type insightResponse struct {
	RestaurantID   string  `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	FoodAvg        float64 `json:"foodAvg"`
	ServiceAvg     float64 `json:"serviceAvg"`
	AmbienceAvg    float64 `json:"ambienceAvg"`
	Submissions    int64   `json:"submissions"`
}

func buildVoterResponse(voter admindomain.Voter) voterResponse {
	return voterResponse{
		ID:              voter.ID,
		Email:           voter.Email,
		AgreedTerms:     voter.AgreedTerms,
		IsCompleted:     voter.IsCompleted,
		LastVisitedPage: voter.LastVisitedPage,
		CreatedAt:       voter.CreatedAt,
	}
}

func buildInsightResponse(insight admindomain.RestaurantInsight) insightResponse {
	return insightResponse{
		RestaurantID:   insight.RestaurantID,
		RestaurantName: insight.RestaurantName,
		FoodAvg:        insight.FoodAvg,
		ServiceAvg:     insight.ServiceAvg,
		AmbienceAvg:    insight.AmbienceAvg,
		Submissions:    insight.Submissions,
	}
}

func buildSubmittedRowResponse(row admindomain.SubmittedRow) submittedRowResponse {
	return submittedRowResponse{
		AccountID:      row.AccountID,
		VoterEmail:     row.VoterEmail,
		RestaurantID:   row.RestaurantID,
		RestaurantName: row.RestaurantName,
		Food:           row.Food,
		Service:        row.Service,
		Ambience:       row.Ambience,
		SubmittedAt:    row.SubmittedAt,
	}
}
