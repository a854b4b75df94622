package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ricgcw/chms-backend/internal/errs"
)

// Record is the pointer side of every stored model: anything embedding
// models.Meta satisfies it.
type Record[T any] interface {
	*T
	SetID(id string)
	CreatedTime() time.Time
	SetCreatedTime(t time.Time)
}

// Collection is a typed Firestore collection. Each named collection gets
// one instance, bound at construction time.
type Collection[T any, PT Record[T]] struct {
	client *firestore.Client
	ref    *firestore.CollectionRef
}

func NewCollection[T any, PT Record[T]](client *firestore.Client, name string) *Collection[T, PT] {
	return &Collection[T, PT]{
		client: client,
		ref:    client.Collection(name),
	}
}

func (c *Collection[T, PT]) Name() string { return c.ref.ID }

// List reads every document. Order is store-defined.
func (c *Collection[T, PT]) List(ctx context.Context) ([]PT, error) {
	docs, err := c.ref.Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError(c.ref.ID, "list", err)
	}

	records := make([]PT, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := doc.DataTo(&rec); err != nil {
			return nil, errs.NewDatabaseError(c.ref.ID, "list", err)
		}
		p := PT(&rec)
		p.SetID(doc.Ref.ID)
		records = append(records, p)
	}
	return records, nil
}

// Create stamps a creation time if the caller did not supply one and
// inserts the record under a store-assigned id.
func (c *Collection[T, PT]) Create(ctx context.Context, rec PT) error {
	if rec.CreatedTime().IsZero() {
		rec.SetCreatedTime(time.Now().UTC())
	}

	ref, _, err := c.ref.Add(ctx, rec)
	if err != nil {
		return errs.NewDatabaseError(c.ref.ID, "create", err)
	}
	rec.SetID(ref.ID)
	return nil
}

// Merge overlays the supplied fields onto an existing document, leaving
// other fields untouched. Merging into an unknown id is rejected rather
// than upserted; the existence check and the write share a transaction.
func (c *Collection[T, PT]) Merge(ctx context.Context, id string, fields map[string]any) error {
	doc := c.ref.Doc(id)
	err := c.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(doc); err != nil {
			return err
		}
		return tx.Set(doc, fields, firestore.MergeAll)
	})
	if status.Code(err) == codes.NotFound {
		return errs.NewNotFoundError(fmt.Sprintf("no document %q in %s", id, c.ref.ID))
	}
	if err != nil {
		return errs.NewDatabaseError(c.ref.ID, "update", err)
	}
	return nil
}

// Delete removes the document. Deleting an id that does not exist is not
// an error, per Firestore semantics.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	if _, err := c.ref.Doc(id).Delete(ctx); err != nil {
		return errs.NewDatabaseError(c.ref.ID, "delete", err)
	}
	return nil
}
