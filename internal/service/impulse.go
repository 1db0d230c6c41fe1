package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository"
)

var ErrImpulseExists = repository.ErrImpulseExists

type ImpulseRepository interface {
	Create(ctx context.Context, impulse domain.Impulse) (domain.Impulse, error)
	FindByOpportunityID(ctx context.Context, opportunityID uint) ([]domain.Impulse, error)
}

// PaymentProvider creates a checkout session for a paid promotion and
// returns its opaque identifier.
type PaymentProvider interface {
	CreateCheckoutSession(amount decimal.Decimal, currency, description, customerEmail string) (string, error)
}

type ImpulseService struct {
	repo     ImpulseRepository
	oppRepo  OpportunityRepository
	userRepo UserRepository
	payments PaymentProvider
}

func NewImpulseService(repo ImpulseRepository, oppRepo OpportunityRepository, userRepo UserRepository, payments PaymentProvider) *ImpulseService {
	return &ImpulseService{
		repo:     repo,
		oppRepo:  oppRepo,
		userRepo: userRepo,
		payments: payments,
	}
}

// PurchaseImpulse opens a checkout session for the boost and records the
// impulse, flagging the opportunity as impulsed until the expiry passes.
// It returns the created impulse and the checkout session id.
func (s *ImpulseService) PurchaseImpulse(ctx context.Context, impulse domain.Impulse) (domain.Impulse, string, error) {
	if err := impulse.Validate(); err != nil {
		return domain.Impulse{}, "", err
	}

	opportunity, err := s.oppRepo.FindByID(ctx, impulse.OpportunityID)
	if err != nil {
		return domain.Impulse{}, "", fmt.Errorf("s.oppRepo.FindByID -> %w", err)
	}

	buyer, err := s.userRepo.FindByID(ctx, impulse.UserID)
	if err != nil {
		return domain.Impulse{}, "", fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	description := fmt.Sprintf("Impulse boost for %q", opportunity.Name)
	sessionID, err := s.payments.CreateCheckoutSession(impulse.Price, "eur", description, buyer.Email)
	if err != nil {
		return domain.Impulse{}, "", fmt.Errorf("s.payments.CreateCheckoutSession -> %w", err)
	}

	created, err := s.repo.Create(ctx, impulse)
	if err != nil {
		return domain.Impulse{}, "", fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, sessionID, nil
}

func (s *ImpulseService) GetImpulsesByOpportunity(ctx context.Context, opportunityID uint) ([]domain.Impulse, error) {
	impulses, err := s.repo.FindByOpportunityID(ctx, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOpportunityID -> %w", err)
	}

	return impulses, nil
}
