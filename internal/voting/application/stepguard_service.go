package application

import (
	"context"
	"errors"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

type stepGuardService struct {
	accounts   AccountRepository
	selections SelectionRepository
}

// NewStepGuardService creates the step guard. It holds no cached state; the
// account and selection are refetched on every check because another tab or
// device may have moved the voter since.
func NewStepGuardService(accounts AccountRepository, selections SelectionRepository) StepGuardService {
	return &stepGuardService{accounts: accounts, selections: selections}
}

// Check evaluates the prerequisite table for the target step and returns the
// earliest unmet step as redirect when a prerequisite is violated. Admins
// bypass the voter-flow guards; completed voters always land on the terminal
// page.
func (s *stepGuardService) Check(ctx context.Context, accountID string, target domain.Step) (GuardResult, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return GuardResult{}, err
	}

	if account.IsAdmin {
		return GuardResult{Allowed: true}, nil
	}
	if account.IsCompleted && target != domain.StepThankYou {
		return GuardResult{Redirect: domain.StepThankYou}, nil
	}
	if target == domain.StepTerms && account.AgreedTerms {
		// already agreed; skip straight to the next step
		return GuardResult{Redirect: domain.StepProcess}, nil
	}

	progress := domain.Progress{AgreedTerms: account.AgreedTerms}
	selection, err := s.selections.FindByAccount(ctx, accountID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return GuardResult{}, err
	}
	if selection != nil {
		progress.RegionalCount = len(selection.Regional)
		progress.NationalCount = len(selection.National)
	}

	redirect, ok := domain.RequiredRedirect(target, progress)
	if !ok {
		return GuardResult{Redirect: redirect}, nil
	}
	return GuardResult{Allowed: true}, nil
}
