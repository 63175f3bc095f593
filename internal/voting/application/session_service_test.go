package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginResolvesRoute(t *testing.T) {
	hash := hashPassword(t, "secret")

	tests := []struct {
		name    string
		account domain.Account
		want    domain.Step
	}{
		{"admin goes to admin home", domain.Account{ID: "a1", Email: "admin@example.com", PasswordHash: hash, IsAdmin: true}, domain.StepAdmin},
		{"completed voter goes to thank-you", domain.Account{ID: "a2", Email: "done@example.com", PasswordHash: hash, IsCompleted: true, AgreedTerms: true}, domain.StepThankYou},
		{"returning voter resumes", domain.Account{ID: "a3", Email: "back@example.com", PasswordHash: hash, AgreedTerms: true, LastVisitedPage: "/rating"}, domain.StepRating},
		{"fresh voter starts at terms", domain.Account{ID: "a4", Email: "new@example.com", PasswordHash: hash}, domain.StepTerms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := newFakeAccounts(&tt.account)
			svc := NewSessionService(accounts, newFakeRegions(), newFakeSelections())

			account, route, err := svc.Login(context.Background(), tt.account.Email, "secret")
			require.NoError(t, err)
			assert.Equal(t, tt.want, route)
			assert.Equal(t, tt.account.ID, account.ID)
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	account := &domain.Account{ID: "a1", Email: "voter@example.com", PasswordHash: hashPassword(t, "secret")}
	svc := NewSessionService(newFakeAccounts(account), newFakeRegions(), newFakeSelections())

	_, _, err := svc.Login(context.Background(), "voter@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ghost@example.com", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "unknown account must not leak as not-found")

	_, _, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestDescribeIncludesRegion(t *testing.T) {
	region := &domain.Region{ID: "west", Name: "West", Cities: []domain.City{{ID: "c1", Name: "Mumbai"}, {ID: "c2", Name: "Pune"}}}
	account := &domain.Account{ID: "a1", Email: "voter@example.com", AssignedRegion: "west"}
	svc := NewSessionService(newFakeAccounts(account), newFakeRegions(region), newFakeSelections())

	view, err := svc.Describe(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, view.Region)
	assert.Equal(t, []string{"Mumbai", "Pune"}, view.Region.CityNames())
}

func TestDescribeAdminHasNoRegion(t *testing.T) {
	account := &domain.Account{ID: "a1", Email: "admin@example.com", IsAdmin: true}
	svc := NewSessionService(newFakeAccounts(account), newFakeRegions(), newFakeSelections())

	view, err := svc.Describe(context.Background(), "a1")
	require.NoError(t, err)
	assert.Nil(t, view.Region)
}

func TestTrackRouteAllowList(t *testing.T) {
	account := &domain.Account{ID: "a1", Email: "voter@example.com"}
	accounts := newFakeAccounts(account)
	svc := NewSessionService(accounts, newFakeRegions(), newFakeSelections())

	tracked, err := svc.TrackRoute(context.Background(), "a1", "/national-selection")
	require.NoError(t, err)
	assert.True(t, tracked)
	assert.Equal(t, "/national-selection", accounts.byID["a1"].LastVisitedPage)

	tracked, err = svc.TrackRoute(context.Background(), "a1", "/admin")
	require.NoError(t, err)
	assert.False(t, tracked, "non-step paths must not be tracked")
	assert.Equal(t, "/national-selection", accounts.byID["a1"].LastVisitedPage)
}

func TestAgreeTermsCreatesEmptySelection(t *testing.T) {
	account := &domain.Account{ID: "a1", Email: "voter@example.com"}
	accounts := newFakeAccounts(account)
	selections := newFakeSelections()
	svc := NewSessionService(accounts, newFakeRegions(), selections)

	require.NoError(t, svc.AgreeTerms(context.Background(), "a1"))

	assert.True(t, accounts.byID["a1"].AgreedTerms)
	created, err := selections.FindByAccount(context.Background(), "a1")
	require.NoError(t, err)
	assert.Empty(t, created.Regional)
	assert.Empty(t, created.National)
}

func TestAgreeTermsKeepsExistingSelection(t *testing.T) {
	account := &domain.Account{ID: "a1", Email: "voter@example.com", AgreedTerms: true}
	existing := domain.NewSelection("a1")
	existing.Toggle(domain.RegionalList, domain.RestaurantPick{ID: "r1", Name: "A", City: "Mumbai"})
	selections := newFakeSelections(existing)
	svc := NewSessionService(newFakeAccounts(account), newFakeRegions(), selections)

	require.NoError(t, svc.AgreeTerms(context.Background(), "a1"))

	kept, err := selections.FindByAccount(context.Background(), "a1")
	require.NoError(t, err)
	assert.Len(t, kept.Regional, 1)
}
