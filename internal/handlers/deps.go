package handlers

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/ricgcw/chms-backend/internal/auth"
	"github.com/ricgcw/chms-backend/internal/models"
	"github.com/ricgcw/chms-backend/internal/response"
)

// collectionService is the uniform contract every mounted collection
// implements. T is the value model type, e.g. models.Event.
type collectionService[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type contributionService interface {
	List(ctx context.Context, memberID string) ([]*models.Contribution, error)
	Add(ctx context.Context, memberID string, c *models.Contribution) error
}

type Deps struct {
	Log             *slog.Logger
	Env             string
	ResponseHandler response.ResponseHandler
	Validate        *validator.Validate
	Authenticator   auth.Authenticator

	MemberSvc       collectionService[models.Member]
	EventSvc        collectionService[models.Event]
	AttendanceSvc   collectionService[models.AttendanceRecord]
	TransactionSvc  collectionService[models.Transaction]
	ResourceSvc     collectionService[models.Resource]
	BibleStudySvc   collectionService[models.BibleStudy]
	TargetSvc       collectionService[models.Target]
	ContributionSvc contributionService
}
