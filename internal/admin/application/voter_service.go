package application

import (
	"context"
	"strings"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
)

type voterService struct {
	voters VoterRepository
}

func NewVoterService(voters VoterRepository) VoterService {
	return &voterService{voters: voters}
}

func (s *voterService) List(ctx context.Context, search string) ([]admindomain.Voter, error) {
	return s.voters.List(ctx, strings.TrimSpace(search))
}
