package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/3cctech/restaurant-awards-services/api/internal/voting/domain"
)

type sessionService struct {
	accounts   AccountRepository
	regions    RegionRepository
	selections SelectionRepository
}

// NewSessionService creates the session/role resolver.
func NewSessionService(accounts AccountRepository, regions RegionRepository, selections SelectionRepository) SessionService {
	return &sessionService{accounts: accounts, regions: regions, selections: selections}
}

// Login verifies the credentials and resolves the initial route. A missing
// account or a bad password both surface as invalid credentials.
func (s *sessionService) Login(ctx context.Context, email, password string) (*domain.Account, domain.Step, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("fetch account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	return account, account.InitialRoute(), nil
}

// Describe returns the account with its assigned region and cities.
func (s *sessionService) Describe(ctx context.Context, accountID string) (*SessionView, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	view := &SessionView{Account: *account}
	if account.AssignedRegion != "" {
		region, err := s.regions.FindByID(ctx, account.AssignedRegion)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("fetch region: %w", err)
		}
		view.Region = region
	}
	return view, nil
}

// TrackRoute records the last visited page for resume-on-login. Only the
// fixed step allow-list is tracked; anything else reports false and writes
// nothing.
func (s *sessionService) TrackRoute(ctx context.Context, accountID, path string) (bool, error) {
	if !domain.KnownStep(path) {
		return false, nil
	}
	if err := s.accounts.SetLastVisitedPage(ctx, accountID, path); err != nil {
		return false, err
	}
	return true, nil
}

// AgreeTerms flips the agreement flag and creates the empty selection record
// the rest of the wizard mutates. Re-agreeing keeps an existing record.
func (s *sessionService) AgreeTerms(ctx context.Context, accountID string) error {
	if err := s.accounts.SetAgreedTerms(ctx, accountID, true); err != nil {
		return err
	}

	_, err := s.selections.FindByAccount(ctx, accountID)
	if errors.Is(err, domain.ErrNotFound) {
		return s.selections.Save(ctx, domain.NewSelection(accountID))
	}
	return err
}
