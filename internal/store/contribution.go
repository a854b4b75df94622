package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/internal/models"
)

// ContributionStore operates on the members/{id}/contributions
// subcollection rather than a top-level collection.
type ContributionStore struct {
	client *firestore.Client
}

func NewContributionStore(client *firestore.Client) *ContributionStore {
	return &ContributionStore{client: client}
}

func (s *ContributionStore) collection(memberID string) *firestore.CollectionRef {
	return s.client.Collection("members").Doc(memberID).Collection("contributions")
}

func (s *ContributionStore) List(ctx context.Context, memberID string) ([]*models.Contribution, error) {
	docs, err := s.collection(memberID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("contributions", "list", err)
	}

	contributions := make([]*models.Contribution, 0, len(docs))
	for _, doc := range docs {
		var c models.Contribution
		if err := doc.DataTo(&c); err != nil {
			return nil, errs.NewDatabaseError("contributions", "list", err)
		}
		c.SetID(doc.Ref.ID)
		contributions = append(contributions, &c)
	}
	return contributions, nil
}

func (s *ContributionStore) Create(ctx context.Context, memberID string, c *models.Contribution) error {
	if c.CreatedTime().IsZero() {
		c.SetCreatedTime(time.Now().UTC())
	}

	ref, _, err := s.collection(memberID).Add(ctx, c)
	if err != nil {
		return errs.NewDatabaseError("contributions", "create", err)
	}
	c.SetID(ref.ID)
	return nil
}
