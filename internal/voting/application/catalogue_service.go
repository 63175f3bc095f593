package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

type catalogueService struct {
	accounts    AccountRepository
	restaurants RestaurantRepository
	selections  SelectionRepository
}

// NewCatalogueService creates the candidate list lookup.
func NewCatalogueService(accounts AccountRepository, restaurants RestaurantRepository, selections SelectionRepository) CatalogueService {
	return &catalogueService{accounts: accounts, restaurants: restaurants, selections: selections}
}

// List fetches the candidates for the phase and applies the display filter.
// Regional candidates are scoped to the caller's assigned region. National
// candidates span the whole catalogue minus whatever the caller already
// picked regionally; the exclusion is computed from the current selection at
// fetch time.
func (s *catalogueService) List(ctx context.Context, accountID string, kind domain.ListKind, filter domain.CatalogueFilter) ([]domain.Restaurant, error) {
	if !kind.Valid() {
		return nil, domain.NewValidationError("unknown selection list")
	}

	query := CatalogueQuery{}
	if kind == domain.RegionalList {
		account, err := s.accounts.FindByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if account.AssignedRegion == "" {
			return nil, domain.NewValidationError("no region assigned to this account")
		}
		query.RegionID = account.AssignedRegion
	}

	entries, err := s.restaurants.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch catalogue: %w", err)
	}

	if kind == domain.NationalList {
		entries, err = s.excludeRegionalPicks(ctx, accountID, entries)
		if err != nil {
			return nil, err
		}
	}

	return domain.FilterCatalogue(entries, filter), nil
}

func (s *catalogueService) excludeRegionalPicks(ctx context.Context, accountID string, entries []domain.Restaurant) ([]domain.Restaurant, error) {
	selection, err := s.selections.FindByAccount(ctx, accountID)
	if errors.Is(err, domain.ErrNotFound) {
		return entries, nil
	}
	if err != nil {
		return nil, err
	}

	excluded := selection.RegionalIDs()
	if len(excluded) == 0 {
		return entries, nil
	}

	kept := make([]domain.Restaurant, 0, len(entries))
	for _, entry := range entries {
		if _, cross := excluded[entry.ID]; cross {
			continue
		}
		kept = append(kept, entry)
	}
	return kept, nil
}
