package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/internal/models"
)

type EventStore struct {
	*Collection[models.Event, *models.Event]
}

func NewEventStore(client *firestore.Client) *EventStore {
	return &EventStore{
		Collection: NewCollection[models.Event](client, "events"),
	}
}

// ExistsByNameAndDate reports whether an event with this exact name and
// date is already stored. The reminder job uses it as its idempotence
// check before inserting.
func (s *EventStore) ExistsByNameAndDate(ctx context.Context, name, date string) (bool, error) {
	docs, err := s.ref.
		Where("name", "==", name).
		Where("date", "==", date).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return false, errs.NewDatabaseError("events", "query", err)
	}
	return len(docs) > 0, nil
}
