package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/oportuna/oportuna-api/internal/domain"
	"github.com/oportuna/oportuna-api/internal/repository"
)

var (
	ErrOpportunityNotFound  = repository.ErrOpportunityNotFound
	ErrNoOpportunitiesFound = errors.New("no opportunities found for user")
)

type OpportunityRepository interface {
	Create(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error)
	FindByID(ctx context.Context, id uint) (domain.Opportunity, error)
	FindAll(ctx context.Context) ([]domain.Opportunity, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Opportunity, error)
	Update(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error)
	Delete(ctx context.Context, id uint) error
}

type OpportunityService struct {
	repo     OpportunityRepository
	userRepo UserRepository
}

func NewOpportunityService(repo OpportunityRepository, userRepo UserRepository) *OpportunityService {
	return &OpportunityService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *OpportunityService) CreateOpportunity(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error) {
	if _, err := s.userRepo.FindByID(ctx, opportunity.UserID); err != nil {
		return domain.Opportunity{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	if err := opportunity.Validate(); err != nil {
		return domain.Opportunity{}, err
	}

	opportunity.IsActive = true
	opportunity.Score = 0
	opportunity.IsImpulsed = false

	created, err := s.repo.Create(ctx, opportunity)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *OpportunityService) GetOpportunity(ctx context.Context, id uint) (domain.Opportunity, error) {
	opportunity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return opportunity, nil
}

func (s *OpportunityService) GetAllOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	opportunities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return opportunities, nil
}

func (s *OpportunityService) GetOpportunitiesByUser(ctx context.Context, userID uint) ([]domain.Opportunity, error) {
	opportunities, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}
	if len(opportunities) == 0 {
		return nil, ErrNoOpportunitiesFound
	}

	return opportunities, nil
}

// UpdateOpportunity mutates the listing fields. Score and IsImpulsed are
// owned by the review and impulse flows and stay untouched here.
func (s *OpportunityService) UpdateOpportunity(ctx context.Context, id uint, changes domain.Opportunity) (domain.Opportunity, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	existing.Name = changes.Name
	existing.Description = changes.Description
	existing.Price = changes.Price
	existing.Vacancies = changes.Vacancies
	existing.IsActive = changes.IsActive
	existing.Category = changes.Category
	existing.Location = changes.Location
	existing.Address = changes.Address

	if err = existing.Validate(); err != nil {
		return domain.Opportunity{}, err
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Opportunity{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *OpportunityService) DeleteOpportunity(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
