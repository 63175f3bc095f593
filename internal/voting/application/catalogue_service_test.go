package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

func newCatalogueFixture(t *testing.T) (*fakeSelections, CatalogueService) {
	t.Helper()
	accounts := newFakeAccounts(
		&domain.Account{ID: "a1", Email: "voter@example.com", AgreedTerms: true, AssignedRegion: "west"},
		&domain.Account{ID: "a2", Email: "unassigned@example.com", AgreedTerms: true},
	)
	restaurants := &fakeRestaurants{entries: []domain.Restaurant{
		{ID: "r1", Name: "Trishna", City: "Mumbai", RegionID: "west"},
		{ID: "r2", Name: "Britannia & Co", City: "Mumbai", RegionID: "west"},
		{ID: "r3", Name: "Malaka Spice", City: "Pune", RegionID: "west"},
		{ID: "r4", Name: "Karavalli", City: "Bengaluru", RegionID: "south"},
		{ID: "r5", Name: "Indian Accent", City: "Delhi", RegionID: "north"},
	}}
	selections := newFakeSelections(domain.NewSelection("a1"))
	return selections, NewCatalogueService(accounts, restaurants, selections)
}

func TestListRegionalScopedToAssignedRegion(t *testing.T) {
	_, svc := newCatalogueFixture(t)

	entries, err := svc.List(context.Background(), "a1", domain.RegionalList, domain.CatalogueFilter{Search: "a"})
	require.NoError(t, err)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"r1", "r2", "r3"}, ids)
}

func TestListRegionalRequiresAssignedRegion(t *testing.T) {
	_, svc := newCatalogueFixture(t)

	_, err := svc.List(context.Background(), "a2", domain.RegionalList, domain.CatalogueFilter{Search: "a"})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestListNationalExcludesRegionalPicks(t *testing.T) {
	selections, svc := newCatalogueFixture(t)
	sel := selections.byAccount["a1"]
	sel.Toggle(domain.RegionalList, domain.RestaurantPick{ID: "r1", Name: "Trishna", City: "Mumbai"})
	sel.Toggle(domain.RegionalList, domain.RestaurantPick{ID: "r3", Name: "Malaka Spice", City: "Pune"})

	entries, err := svc.List(context.Background(), "a1", domain.NationalList, domain.CatalogueFilter{Search: "a"})
	require.NoError(t, err)

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"r2", "r4", "r5"}, ids)
}

func TestListNationalWithoutSelectionRecord(t *testing.T) {
	selections, svc := newCatalogueFixture(t)
	delete(selections.byAccount, "a1")

	entries, err := svc.List(context.Background(), "a1", domain.NationalList, domain.CatalogueFilter{Search: "a"})
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestListAppliesDisplayFilter(t *testing.T) {
	_, svc := newCatalogueFixture(t)
	ctx := context.Background()

	t.Run("no search term yields nothing", func(t *testing.T) {
		entries, err := svc.List(ctx, "a1", domain.RegionalList, domain.CatalogueFilter{City: "Mumbai"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("city narrows the matches", func(t *testing.T) {
		entries, err := svc.List(ctx, "a1", domain.RegionalList, domain.CatalogueFilter{City: "Pune", Search: "a"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "r3", entries[0].ID)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		entries, err := svc.List(ctx, "a1", domain.NationalList, domain.CatalogueFilter{Search: "TRISH"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "r1", entries[0].ID)
	})
}

func TestListRejectsUnknownKind(t *testing.T) {
	_, svc := newCatalogueFixture(t)

	_, err := svc.List(context.Background(), "a1", domain.ListKind("favourites"), domain.CatalogueFilter{Search: "a"})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
