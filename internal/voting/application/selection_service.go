package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

type selectionService struct {
	accounts    AccountRepository
	regions     RegionRepository
	restaurants RestaurantRepository
	selections  SelectionRepository
}

// NewSelectionService creates the selection store.
func NewSelectionService(
	accounts AccountRepository,
	regions RegionRepository,
	restaurants RestaurantRepository,
	selections SelectionRepository,
) SelectionService {
	return &selectionService{
		accounts:    accounts,
		regions:     regions,
		restaurants: restaurants,
		selections:  selections,
	}
}

func (s *selectionService) Get(ctx context.Context, accountID string) (*domain.Selection, error) {
	return s.selections.FindByAccount(ctx, accountID)
}

// Toggle flips membership of the pick in the given list and persists the
// whole record when membership actually changed. Over-capacity appends and
// cross-listed ids stay no-ops and persist nothing.
func (s *selectionService) Toggle(ctx context.Context, accountID string, kind domain.ListKind, pick domain.RestaurantPick) (*domain.Selection, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("unknown selection list")
	}
	if !domain.ValidRestaurantID(pick.ID) {
		return nil, domain.NewValidationError("invalid restaurant id")
	}

	selection, err := s.selections.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !selection.Toggle(kind, pick) {
		return selection, nil
	}
	if err := s.selections.Save(ctx, selection); err != nil {
		return nil, fmt.Errorf("save selection: %w", err)
	}
	return selection, nil
}

// Remove drops the pick unconditionally and persists immediately.
func (s *selectionService) Remove(ctx context.Context, accountID string, kind domain.ListKind, restaurantID string) (*domain.Selection, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("unknown selection list")
	}

	selection, err := s.selections.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if !selection.Remove(kind, restaurantID) {
		return selection, nil
	}
	if err := s.selections.Save(ctx, selection); err != nil {
		return nil, fmt.Errorf("save selection: %w", err)
	}
	return selection, nil
}

// Nominate inserts a jury-created catalogue entry and appends it to the
// list. Validation or persistence failures leave both the catalogue and the
// selection unchanged.
func (s *selectionService) Nominate(ctx context.Context, accountID string, kind domain.ListKind, name, city string) (*domain.Restaurant, *domain.Selection, error) {
	if !kind.Valid() {
		return nil, nil, domain.NewValidationError("unknown selection list")
	}
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)
	if name == "" || city == "" {
		return nil, nil, domain.NewValidationError("restaurant name and city are both required")
	}

	selection, err := s.selections.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if len(selection.List(kind)) >= kind.Capacity() {
		return nil, nil, domain.NewValidationError("selection list is already at capacity")
	}

	regionScope, err := s.resolveScope(ctx, accountID, kind, city)
	if err != nil {
		return nil, nil, err
	}

	exists, err := s.restaurants.Exists(ctx, name, city, regionScope)
	if err != nil {
		return nil, nil, fmt.Errorf("check existing restaurant: %w", err)
	}
	if exists {
		return nil, nil, domain.ErrAlreadyExists
	}

	restaurant := &domain.Restaurant{
		Name:        name,
		City:        city,
		RegionID:    regionScope,
		JuryCreated: true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.restaurants.Insert(ctx, restaurant); err != nil {
		return nil, nil, fmt.Errorf("insert restaurant: %w", err)
	}

	selection.Toggle(kind, restaurant.Pick())
	if err := s.selections.Save(ctx, selection); err != nil {
		return nil, nil, fmt.Errorf("save selection: %w", err)
	}
	return restaurant, selection, nil
}

// resolveScope validates the city and returns the region the nomination is
// catalogued under; national nominations are region-less.
func (s *selectionService) resolveScope(ctx context.Context, accountID string, kind domain.ListKind, city string) (string, error) {
	if kind == domain.NationalList {
		known, err := s.regions.CityExists(ctx, city)
		if err != nil {
			return "", fmt.Errorf("check city: %w", err)
		}
		if !known {
			return "", domain.NewValidationError(fmt.Sprintf("city %q is not in the catalogue", city))
		}
		return "", nil
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return "", err
	}
	if account.AssignedRegion == "" {
		return "", domain.NewValidationError("no region assigned to this account")
	}
	region, err := s.regions.FindByID(ctx, account.AssignedRegion)
	if err != nil {
		return "", fmt.Errorf("fetch region: %w", err)
	}
	if !region.HasCity(city) {
		return "", domain.NewValidationError(fmt.Sprintf("city %q is not part of your region", city))
	}
	return region.ID, nil
}
