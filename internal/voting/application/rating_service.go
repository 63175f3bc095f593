package application

import (
	"context"
	"fmt"
	"time"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

type ratingService struct {
	accounts    AccountRepository
	selections  SelectionRepository
	submissions SubmissionRepository
}

// NewRatingService creates the rating store.
func NewRatingService(accounts AccountRepository, selections SelectionRepository, submissions SubmissionRepository) RatingService {
	return &ratingService{accounts: accounts, selections: selections, submissions: submissions}
}

// Overview merges the two lists into the rating working set and derives the
// cursor from the persisted ratings.
func (s *ratingService) Overview(ctx context.Context, accountID string) (*RatingOverview, error) {
	selection, err := s.selections.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	picks := selection.Combined()
	items := make([]RatedItem, 0, len(picks))
	for _, pick := range picks {
		items = append(items, RatedItem{Pick: pick, Rating: selection.Ratings[pick.ID]})
	}
	return &RatingOverview{
		Items:  items,
		Cursor: domain.RatingCursor(picks, selection.Ratings),
	}, nil
}

// Advance is the sequential flow's next(): it refuses to move on until the
// item at the current cursor is fully rated, and persists the merged map
// only on success. A refused advance persists nothing.
//
// The cursor is always the first incomplete item, so an item the voter has
// stepped back to is behind the cursor and a re-post for it is refused.
// Clients revise already-rated items through Update; Advance is only for
// rating the cursor item.
func (s *ratingService) Advance(ctx context.Context, accountID, restaurantID string, rating domain.Rating) (int, error) {
	if !rating.ValidScores() {
		return 0, domain.NewValidationError("each rating axis must be between 1 and 5")
	}

	selection, err := s.selections.FindByAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}

	picks := selection.Combined()
	if len(picks) == 0 {
		return 0, domain.NewValidationError("nothing to rate yet")
	}

	cursor := domain.RatingCursor(picks, selection.Ratings)
	if !selection.SetRating(restaurantID, rating) {
		return 0, domain.NewValidationError("restaurant is not in your selection")
	}
	if !selection.Ratings[picks[cursor].ID].FullyRated() {
		return 0, domain.NewValidationError("rate all three categories before moving on")
	}

	if err := s.selections.Save(ctx, selection); err != nil {
		return 0, fmt.Errorf("save ratings: %w", err)
	}
	return domain.RatingCursor(picks, selection.Ratings), nil
}

// Update is the edit-dialog flow: a complete rating for one restaurant,
// persisted immediately, no cursor interaction.
func (s *ratingService) Update(ctx context.Context, accountID, restaurantID string, rating domain.Rating) error {
	if !rating.ValidScores() {
		return domain.NewValidationError("each rating axis must be between 1 and 5")
	}

	selection, err := s.selections.FindByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if !selection.SetRating(restaurantID, rating) {
		return domain.NewValidationError("restaurant is not in your selection")
	}
	if err := s.selections.Save(ctx, selection); err != nil {
		return fmt.Errorf("save ratings: %w", err)
	}
	return nil
}

// Submit finalizes the vote. The selection is refetched so the rows are
// built from the freshest persisted ratings, one immutable row per
// restaurant, and the account is marked complete afterwards. Any failure
// aborts the transition.
func (s *ratingService) Submit(ctx context.Context, accountID string) error {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.IsCompleted {
		return domain.NewValidationError("ratings were already submitted")
	}

	selection, err := s.selections.FindByAccount(ctx, accountID)
	if err != nil {
		return err
	}

	picks := selection.Combined()
	want := domain.RegionalCapacity + domain.NationalCapacity
	if len(picks) != want {
		return domain.NewValidationError(fmt.Sprintf("your selection must contain %d restaurants", want))
	}

	now := time.Now().UTC()
	rows := make([]domain.SubmittedRating, 0, len(picks))
	for _, pick := range picks {
		rating := selection.Ratings[pick.ID]
		if !rating.FullyRated() {
			return domain.NewValidationError(fmt.Sprintf("%s is not fully rated", pick.Name))
		}
		rows = append(rows, domain.SubmittedRating{
			AccountID:      accountID,
			RestaurantID:   pick.ID,
			RestaurantName: pick.Name,
			Food:           rating.Food,
			Service:        rating.Service,
			Ambience:       rating.Ambience,
			SubmittedAt:    now,
		})
	}

	if err := s.submissions.InsertAll(ctx, rows); err != nil {
		return fmt.Errorf("insert submitted ratings: %w", err)
	}
	if err := s.accounts.SetCompleted(ctx, accountID, true); err != nil {
		return fmt.Errorf("mark account completed: %w", err)
	}
	return nil
}
