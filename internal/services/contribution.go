package services

import (
	"context"

	"github.com/ricgcw/chms-backend/internal/models"
	"github.com/ricgcw/chms-backend/pkg/logger"
)

type contributionStore interface {
	List(ctx context.Context, memberID string) ([]*models.Contribution, error)
	Create(ctx context.Context, memberID string, c *models.Contribution) error
}

type ContributionService struct {
	store contributionStore
}

func NewContributionService(store contributionStore) *ContributionService {
	return &ContributionService{store: store}
}

func (s *ContributionService) List(ctx context.Context, memberID string) ([]*models.Contribution, error) {
	contributions, err := s.store.List(ctx, memberID)
	if err != nil {
		logger.FromContext(ctx).Error("list contributions failed", "member_id", memberID, "error", err)
		return nil, err
	}
	return contributions, nil
}

func (s *ContributionService) Add(ctx context.Context, memberID string, c *models.Contribution) error {
	log := logger.FromContext(ctx)

	if err := s.store.Create(ctx, memberID, c); err != nil {
		log.Error("add contribution failed", "member_id", memberID, "error", err)
		return err
	}

	log.Info("contribution recorded", "member_id", memberID, "amount", c.Amount)
	return nil
}
