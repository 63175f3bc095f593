package application

import (
	"context"
	"fmt"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

// In-memory ports used across the service tests. Error fields inject
// failures for the rollback/abort paths.

type fakeAccounts struct {
	byID        map[string]*domain.Account
	setAgreeErr error
	setPageErr  error
	setDoneErr  error
}

func newFakeAccounts(accounts ...*domain.Account) *fakeAccounts {
	f := &fakeAccounts{byID: map[string]*domain.Account{}}
	for _, a := range accounts {
		copied := *a
		f.byID[a.ID] = &copied
	}
	return f
}

func (f *fakeAccounts) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range f.byID {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAccounts) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAccounts) SetAgreedTerms(_ context.Context, id string, agreed bool) error {
	if f.setAgreeErr != nil {
		return f.setAgreeErr
	}
	a, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.AgreedTerms = agreed
	return nil
}

func (f *fakeAccounts) SetLastVisitedPage(_ context.Context, id, path string) error {
	if f.setPageErr != nil {
		return f.setPageErr
	}
	a, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.LastVisitedPage = path
	return nil
}

func (f *fakeAccounts) SetCompleted(_ context.Context, id string, completed bool) error {
	if f.setDoneErr != nil {
		return f.setDoneErr
	}
	a, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.IsCompleted = completed
	return nil
}

type fakeRegions struct {
	byID map[string]*domain.Region
}

func newFakeRegions(regions ...*domain.Region) *fakeRegions {
	f := &fakeRegions{byID: map[string]*domain.Region{}}
	for _, r := range regions {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeRegions) FindByID(_ context.Context, id string) (*domain.Region, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRegions) CityExists(_ context.Context, name string) (bool, error) {
	for _, r := range f.byID {
		if r.HasCity(name) {
			return true, nil
		}
	}
	return false, nil
}

type fakeRestaurants struct {
	entries   []domain.Restaurant
	insertErr error
	nextID    int
}

func (f *fakeRestaurants) Find(_ context.Context, query CatalogueQuery) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, 0, len(f.entries))
	for _, e := range f.entries {
		if query.RegionID != "" && e.RegionID != query.RegionID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeRestaurants) Exists(_ context.Context, name, city, regionID string) (bool, error) {
	for _, e := range f.entries {
		if e.Name == name && e.City == city && (regionID == "" || e.RegionID == regionID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRestaurants) Insert(_ context.Context, restaurant *domain.Restaurant) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	restaurant.ID = fmt.Sprintf("new%02d", f.nextID)
	f.entries = append(f.entries, *restaurant)
	return nil
}

type fakeSelections struct {
	byAccount map[string]*domain.Selection
	saveErr   error
	saves     int
}

func newFakeSelections(selections ...*domain.Selection) *fakeSelections {
	f := &fakeSelections{byAccount: map[string]*domain.Selection{}}
	for _, s := range selections {
		f.byAccount[s.AccountID] = cloneSelection(s)
	}
	return f
}

func cloneSelection(s *domain.Selection) *domain.Selection {
	copied := &domain.Selection{
		AccountID: s.AccountID,
		Regional:  append([]domain.RestaurantPick{}, s.Regional...),
		National:  append([]domain.RestaurantPick{}, s.National...),
		Ratings:   map[string]domain.Rating{},
		UpdatedAt: s.UpdatedAt,
	}
	for id, r := range s.Ratings {
		copied.Ratings[id] = r
	}
	return copied
}

func (f *fakeSelections) FindByAccount(_ context.Context, accountID string) (*domain.Selection, error) {
	s, ok := f.byAccount[accountID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneSelection(s), nil
}

func (f *fakeSelections) Save(_ context.Context, selection *domain.Selection) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.byAccount[selection.AccountID] = cloneSelection(selection)
	return nil
}

type fakeSubmissions struct {
	rows      []domain.SubmittedRating
	insertErr error
}

func (f *fakeSubmissions) InsertAll(_ context.Context, rows []domain.SubmittedRating) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.rows = append(f.rows, rows...)
	return nil
}

// fullSelection builds a selection with both lists at capacity; ids are
// reg00..reg09 and nat00..nat04.
func fullSelection(accountID string) *domain.Selection {
	sel := domain.NewSelection(accountID)
	for i := 0; i < domain.RegionalCapacity; i++ {
		sel.Toggle(domain.RegionalList, domain.RestaurantPick{
			ID:   fmt.Sprintf("reg%02d", i),
			Name: fmt.Sprintf("Regional %d", i),
			City: "Mumbai",
		})
	}
	for i := 0; i < domain.NationalCapacity; i++ {
		sel.Toggle(domain.NationalList, domain.RestaurantPick{
			ID:   fmt.Sprintf("nat%02d", i),
			Name: fmt.Sprintf("National %d", i),
			City: "Delhi",
		})
	}
	return sel
}

func rateAll(sel *domain.Selection, rating domain.Rating) {
	for _, p := range sel.Combined() {
		sel.SetRating(p.ID, rating)
	}
}
