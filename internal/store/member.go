package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ricgcw/chms-backend/internal/errs"
	"github.com/ricgcw/chms-backend/internal/models"
)

const nameIndexCollection = "member-names"

// nameIndexEntry reserves a normalized member name. Creating the index
// document and the member document in one transaction is what makes the
// uniqueness check atomic instead of check-then-act.
type nameIndexEntry struct {
	MemberID  string    `firestore:"memberId"`
	Name      string    `firestore:"name"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type MemberStore struct {
	*Collection[models.Member, *models.Member]
	client *firestore.Client
	names  *firestore.CollectionRef
}

func NewMemberStore(client *firestore.Client) *MemberStore {
	return &MemberStore{
		Collection: NewCollection[models.Member](client, "members"),
		client:     client,
		names:      client.Collection(nameIndexCollection),
	}
}

// NormalizeName folds a member name to its uniqueness key: trimmed,
// lower-cased, inner whitespace collapsed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func (s *MemberStore) Create(ctx context.Context, m *models.Member) error {
	if m.CreatedTime().IsZero() {
		m.SetCreatedTime(time.Now().UTC())
	}

	doc := s.ref.NewDoc()
	nameDoc := s.names.Doc(NormalizeName(m.Name))

	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(nameDoc)
		switch {
		case err == nil:
			return duplicateNameError(m.Name)
		case status.Code(err) != codes.NotFound:
			return err
		}

		if err := tx.Create(doc, m); err != nil {
			return err
		}
		return tx.Create(nameDoc, nameIndexEntry{
			MemberID:  doc.ID,
			Name:      strings.TrimSpace(m.Name),
			CreatedAt: time.Now().UTC(),
		})
	})
	var dup *errs.AlreadyExistsError
	if errors.As(err, &dup) {
		return dup
	}
	if err != nil {
		return errs.NewDatabaseError("members", "create", err)
	}

	m.SetID(doc.ID)
	return nil
}

// Merge keeps the name index in step with the document: renaming a member
// reserves the new key and releases the old one in the same transaction.
func (s *MemberStore) Merge(ctx context.Context, id string, fields map[string]any) error {
	newName, renaming := fields["name"].(string)
	doc := s.ref.Doc(id)

	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(doc)
		if err != nil {
			return err
		}

		if renaming {
			var current models.Member
			if err := snap.DataTo(&current); err != nil {
				return err
			}
			oldKey := NormalizeName(current.Name)
			newKey := NormalizeName(newName)
			if oldKey != newKey {
				newDoc := s.names.Doc(newKey)
				if _, err := tx.Get(newDoc); err == nil {
					return duplicateNameError(newName)
				} else if status.Code(err) != codes.NotFound {
					return err
				}
				if err := tx.Delete(s.names.Doc(oldKey)); err != nil {
					return err
				}
				if err := tx.Create(newDoc, nameIndexEntry{
					MemberID:  id,
					Name:      strings.TrimSpace(newName),
					CreatedAt: time.Now().UTC(),
				}); err != nil {
					return err
				}
			}
		}

		return tx.Set(doc, fields, firestore.MergeAll)
	})

	var dup *errs.AlreadyExistsError
	if errors.As(err, &dup) {
		return dup
	}
	if status.Code(err) == codes.NotFound {
		return errs.NewNotFoundError(fmt.Sprintf("no document %q in members", id))
	}
	if err != nil {
		return errs.NewDatabaseError("members", "update", err)
	}
	return nil
}

func (s *MemberStore) Delete(ctx context.Context, id string) error {
	doc := s.ref.Doc(id)

	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(doc)
		if status.Code(err) == codes.NotFound {
			// deleting a missing document is not an error
			return nil
		}
		if err != nil {
			return err
		}

		var m models.Member
		if err := snap.DataTo(&m); err != nil {
			return err
		}
		if err := tx.Delete(s.names.Doc(NormalizeName(m.Name))); err != nil {
			return err
		}
		return tx.Delete(doc)
	})
	if err != nil {
		return errs.NewDatabaseError("members", "delete", err)
	}
	return nil
}

func duplicateNameError(name string) *errs.AlreadyExistsError {
	return errs.NewAlreadyExistsError(fmt.Sprintf("a member named %q already exists", strings.TrimSpace(name)))
}
