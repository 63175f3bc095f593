package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	admindomain "github.com/3cctech/restaurant-awards-services/api/internal/admin/domain"
)

type resetIntent struct {
	accountID string
	expiresAt time.Time
}

// resetService implements the two-phase reset. Intents live in memory only;
// an unconfirmed intent simply expires and a restart discards all of them,
// which is acceptable because Request is cheap to repeat.
type resetService struct {
	voters VoterRepository
	resets ResetRepository
	ttl    time.Duration

	mu      sync.Mutex
	intents map[string]resetIntent
	now     func() time.Time
}

func NewResetService(voters VoterRepository, resets ResetRepository, ttl time.Duration) ResetService {
	return &resetService{
		voters:  voters,
		resets:  resets,
		ttl:     ttl,
		intents: make(map[string]resetIntent),
		now:     time.Now,
	}
}

func (s *resetService) Request(ctx context.Context, accountID string) (string, error) {
	ok, err := s.voters.Exists(ctx, accountID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", admindomain.ErrNotFound
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.pruneLocked()
	s.intents[token] = resetIntent{accountID: accountID, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

// Confirm spends the token and performs the reset. The account rewind runs
// first; if it fails nothing is deleted, so the voter's data stays intact.
func (s *resetService) Confirm(ctx context.Context, accountID, confirmToken string) error {
	s.mu.Lock()
	intent, ok := s.intents[confirmToken]
	if ok {
		delete(s.intents, confirmToken)
	}
	s.mu.Unlock()

	if !ok || intent.accountID != accountID || s.now().After(intent.expiresAt) {
		return admindomain.ErrInvalidConfirmToken
	}

	if err := s.resets.ResetAccount(ctx, accountID); err != nil {
		return fmt.Errorf("reset account: %w", err)
	}
	if err := s.resets.DeleteSubmittedRatings(ctx, accountID); err != nil {
		return fmt.Errorf("delete submitted ratings: %w", err)
	}
	if err := s.resets.ClearSelection(ctx, accountID); err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	return nil
}

func (s *resetService) pruneLocked() {
	now := s.now()
	for token, intent := range s.intents {
		if now.After(intent.expiresAt) {
			delete(s.intents, token)
		}
	}
}
