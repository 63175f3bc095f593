package application

import (
	"context"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
)

type overviewService struct {
	voters  VoterRepository
	ratings RatingLogRepository
}

func NewOverviewService(voters VoterRepository, ratings RatingLogRepository) OverviewService {
	return &overviewService{voters: voters, ratings: ratings}
}

func (s *overviewService) Dashboard(ctx context.Context) (admindomain.DashboardCounts, error) {
	users, err := s.voters.Count(ctx)
	if err != nil {
		return admindomain.DashboardCounts{}, err
	}
	ratings, err := s.ratings.CountSubmitted(ctx)
	if err != nil {
		return admindomain.DashboardCounts{}, err
	}
	return admindomain.DashboardCounts{TotalUsers: users, TotalRatings: ratings}, nil
}

func (s *overviewService) Ratings(ctx context.Context) ([]admindomain.SubmittedRow, error) {
	return s.ratings.ListSubmitted(ctx)
}

func (s *overviewService) Insights(ctx context.Context) ([]admindomain.RestaurantInsight, error) {
	return s.ratings.AverageByRestaurant(ctx)
}
