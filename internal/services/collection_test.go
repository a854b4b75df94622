package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ricgcw/chms-backend/internal/models"
	"github.com/ricgcw/chms-backend/pkg/helpers"
)

type stubCollectionStore struct {
	records []*models.Target

	createCalls int
	mergeID     string
	mergeFields map[string]any
	deleteID    string
	err         error
}

func (s *stubCollectionStore) Name() string { return "targets" }

func (s *stubCollectionStore) List(_ context.Context) ([]*models.Target, error) {
	return s.records, s.err
}

func (s *stubCollectionStore) Create(_ context.Context, rec *models.Target) error {
	s.createCalls++
	s.records = append(s.records, rec)
	return s.err
}

func (s *stubCollectionStore) Merge(_ context.Context, id string, fields map[string]any) error {
	s.mergeID = id
	s.mergeFields = fields
	return s.err
}

func (s *stubCollectionStore) Delete(_ context.Context, id string) error {
	s.deleteID = id
	return s.err
}

func TestCollectionServiceUpdateScrubsServerFields(t *testing.T) {
	store := &stubCollectionStore{}
	svc := NewCollectionService[*models.Target](store)

	err := svc.Update(helpers.TestCtx(), "t1", map[string]any{
		"id":        "spoofed",
		"createdAt": "2020-01-01T00:00:00.000Z",
		"name":      "Building Fund",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if store.mergeID != "t1" {
		t.Fatalf("merged id %q, want t1", store.mergeID)
	}
	if _, ok := store.mergeFields["id"]; ok {
		t.Fatalf("id must not be merged into the document")
	}
	if _, ok := store.mergeFields["createdAt"]; ok {
		t.Fatalf("createdAt must not be merged into the document")
	}
	if store.mergeFields["name"] != "Building Fund" {
		t.Fatalf("name field missing from merge: %v", store.mergeFields)
	}
}

func TestCollectionServicePassesThroughStoreErrors(t *testing.T) {
	store := &stubCollectionStore{err: errors.New("store failure")}
	svc := NewCollectionService[*models.Target](store)
	ctx := helpers.TestCtx()

	if _, err := svc.List(ctx); err == nil {
		t.Fatalf("List should surface the store error")
	}
	if err := svc.Create(ctx, &models.Target{Name: "x"}); err == nil {
		t.Fatalf("Create should surface the store error")
	}
	if err := svc.Update(ctx, "id", map[string]any{}); err == nil {
		t.Fatalf("Update should surface the store error")
	}
	if err := svc.Delete(ctx, "id"); err == nil {
		t.Fatalf("Delete should surface the store error")
	}
}

func TestCollectionServiceDelete(t *testing.T) {
	store := &stubCollectionStore{}
	svc := NewCollectionService[*models.Target](store)

	if err := svc.Delete(helpers.TestCtx(), "t9"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if store.deleteID != "t9" {
		t.Fatalf("deleted id %q, want t9", store.deleteID)
	}
}
