package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

func partialSelection(accountID string, regional, national int) *domain.Selection {
	sel := fullSelection(accountID)
	sel.Regional = sel.Regional[:regional]
	sel.National = sel.National[:national]
	return sel
}

func TestStepGuardRedirectsToEarliestUnmetStep(t *testing.T) {
	tests := []struct {
		name      string
		account   domain.Account
		selection *domain.Selection
		target    domain.Step
		allowed   bool
		redirect  domain.Step
	}{
		{
			name:      "rating with four regional picks goes back to regional selection",
			account:   domain.Account{ID: "a1", AgreedTerms: true},
			selection: partialSelection("a1", 4, 0),
			target:    domain.StepRating,
			redirect:  domain.StepRegionalSelection,
		},
		{
			name:      "rating with full regional and short national goes to national selection",
			account:   domain.Account{ID: "a1", AgreedTerms: true},
			selection: partialSelection("a1", 10, 2),
			target:    domain.StepRating,
			redirect:  domain.StepNationalSelection,
		},
		{
			name:     "no selection record counts as zero picks",
			account:  domain.Account{ID: "a1", AgreedTerms: true},
			target:   domain.StepNationalSelection,
			redirect: domain.StepRegionalSelection,
		},
		{
			name:      "review allowed with both lists full",
			account:   domain.Account{ID: "a1", AgreedTerms: true},
			selection: partialSelection("a1", 10, 5),
			target:    domain.StepRestaurantReview,
			allowed:   true,
		},
		{
			name:     "terms violation dominates list counts",
			account:  domain.Account{ID: "a1"},
			target:   domain.StepRating,
			redirect: domain.StepTerms,
		},
		{
			name:     "completed voter is sent to thank-you from any step",
			account:  domain.Account{ID: "a1", AgreedTerms: true, IsCompleted: true},
			target:   domain.StepRegionalSelection,
			redirect: domain.StepThankYou,
		},
		{
			name:    "completed voter may open thank-you",
			account: domain.Account{ID: "a1", AgreedTerms: true, IsCompleted: true},
			target:  domain.StepThankYou,
			allowed: true,
		},
		{
			name:     "terms already agreed skips ahead to process",
			account:  domain.Account{ID: "a1", AgreedTerms: true},
			target:   domain.StepTerms,
			redirect: domain.StepProcess,
		},
		{
			name:    "admin bypasses voter-flow guards",
			account: domain.Account{ID: "a1", IsAdmin: true},
			target:  domain.StepRating,
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selections := newFakeSelections()
			if tt.selection != nil {
				selections = newFakeSelections(tt.selection)
			}
			guard := NewStepGuardService(newFakeAccounts(&tt.account), selections)

			result, err := guard.Check(context.Background(), tt.account.ID, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, result.Allowed)
			if !tt.allowed {
				assert.Equal(t, tt.redirect, result.Redirect)
			}
		})
	}
}

func TestStepGuardUnknownAccount(t *testing.T) {
	guard := NewStepGuardService(newFakeAccounts(), newFakeSelections())
	_, err := guard.Check(context.Background(), "ghost", domain.StepTerms)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
